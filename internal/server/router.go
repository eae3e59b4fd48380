package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/kaupunki/events-backend/internal/handlers"
	"github.com/kaupunki/events-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	KeywordHandler *handlers.KeywordHandler
	EventHandler   *handlers.EventHandler
	AuthMiddleware *middleware.AuthMiddleware
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("events-backend"))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	v1 := router.Group("/v1")
	v1.Use(cfg.AuthMiddleware.OptionalAuth())
	{
		v1.GET("/keyword/:id", cfg.KeywordHandler.GetKeyword)
		v1.GET("/keyword", cfg.KeywordHandler.SearchKeywords)
		v1.GET("/event/:id", cfg.EventHandler.GetEvent)
		v1.GET("/event", cfg.EventHandler.ListEvents)
	}

	protected := router.Group("/v1")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/event", cfg.EventHandler.CreateEvent)
	}

	return router
}
