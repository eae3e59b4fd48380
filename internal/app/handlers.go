package app

import (
	"github.com/kaupunki/events-backend/internal/handlers"
	"github.com/kaupunki/events-backend/internal/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Keywords *handlers.KeywordHandler
	Events   *handlers.EventHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Auth:     handlers.NewAuthHandler(log, serviceset.Auth),
		Keywords: handlers.NewKeywordHandler(log, serviceset.Keywords),
		Events:   handlers.NewEventHandler(log, serviceset.Events),
	}
}
