package app

import (
	"github.com/gin-gonic/gin"

	"github.com/kaupunki/events-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:    handlerset.Auth,
		KeywordHandler: handlerset.Keywords,
		EventHandler:   handlerset.Events,
		AuthMiddleware: mw.Auth,
		AllowOrigins:   cfg.AllowOrigins,
	})
}
