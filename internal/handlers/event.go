package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/middleware"
	"github.com/kaupunki/events-backend/internal/services"
)

type EventHandler struct {
	log          *logger.Logger
	eventService services.EventService
}

func NewEventHandler(log *logger.Logger, eventService services.EventService) *EventHandler {
	return &EventHandler{log: log.With("handler", "EventHandler"), eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	if middleware.UserID(c) == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("authentication required"))
		return
	}
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	event, err := h.eventService.Create(c.Request.Context(), input, "yso:1200")
	if err != nil {
		if fe, ok := services.AsFieldError(err); ok {
			RespondFieldError(c, fe.Field, fe.Message)
			return
		}
		h.log.Error("CreateEvent failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "create_event_failed", err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id := c.Param("id")
	includeDrafts := middleware.UserID(c) != uuid.Nil
	event, err := h.eventService.GetByID(c.Request.Context(), id, includeDrafts)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "event_not_found", errors.New("event not found"))
			return
		}
		h.log.Error("GetEvent failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_event_failed", err)
		return
	}
	RespondOK(c, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	includeDrafts := middleware.UserID(c) != uuid.Nil
	events, err := h.eventService.List(c.Request.Context(), includeDrafts, 100)
	if err != nil {
		h.log.Error("ListEvents failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "list_events_failed", err)
		return
	}
	RespondOK(c, gin.H{"data": events})
}
