package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaupunki/events-backend/internal/logger"
	"github.com/kaupunki/events-backend/internal/services"
)

type KeywordHandler struct {
	log            *logger.Logger
	keywordService services.KeywordService
}

func NewKeywordHandler(log *logger.Logger, keywordService services.KeywordService) *KeywordHandler {
	return &KeywordHandler{log: log.With("handler", "KeywordHandler"), keywordService: keywordService}
}

func (h *KeywordHandler) GetKeyword(c *gin.Context) {
	id := c.Param("id")
	kw, err := h.keywordService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "keyword_not_found", errors.New("keyword not found"))
			return
		}
		h.log.Error("GetKeyword failed", "id", id, "error", err)
		RespondError(c, http.StatusInternalServerError, "load_keyword_failed", err)
		return
	}
	RespondOK(c, kw)
}

func (h *KeywordHandler) SearchKeywords(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		RespondFieldError(c, "text", "a search text is required")
		return
	}
	results, err := h.keywordService.Search(c.Request.Context(), text, 50)
	if err != nil {
		h.log.Error("SearchKeywords failed", "text", text, "error", err)
		RespondError(c, http.StatusInternalServerError, "search_keywords_failed", err)
		return
	}
	RespondOK(c, gin.H{"data": results})
}
