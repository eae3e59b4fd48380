package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/cache"
	"github.com/kaupunki/events-backend/internal/db"
	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/utils"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	rdb      *goredis.Client
}

func New() (*App, error) {
	logMode := utils.GetEnv("LOG_MODE", "development", nil)
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	rdb, err := cache.NewRedisClient(log)
	if err != nil {
		// The cache is optional; run without it.
		log.Warn("Redis unavailable, continuing without cache", "error", err)
		rdb = nil
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, rdb)
	handlerset := wireHandlers(log, serviceset)
	mw := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, handlerset, mw)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		rdb:      rdb,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
