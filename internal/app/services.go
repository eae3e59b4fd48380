package app

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Keywords services.KeywordService
	Events   services.EventService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, rdb *goredis.Client) Services {
	return Services{
		Auth:     services.NewAuthService(db, log, reposet.Users, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Keywords: services.NewKeywordService(db, log, reposet.Keywords, rdb, cfg.KeywordCacheTTL),
		Events:   services.NewEventService(db, log, reposet.Events, reposet.Keywords),
	}
}
