package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaupunki/events-backend/internal/logger"
	pkgerrors "github.com/kaupunki/events-backend/internal/pkg/errors"
	"github.com/kaupunki/events-backend/internal/services"
	"github.com/kaupunki/events-backend/internal/types"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user := &types.User{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.authService.RegisterUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidArgument) {
			RespondError(c, http.StatusBadRequest, "invalid_registration", err)
			return
		}
		h.log.Error("Register failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "register_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	token, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrUnauthorized) || errors.Is(err, pkgerrors.ErrInvalidArgument) {
			RespondError(c, http.StatusUnauthorized, "invalid_credentials", errors.New("invalid credentials"))
			return
		}
		h.log.Error("Login failed", "error", err)
		RespondError(c, http.StatusInternalServerError, "login_failed", err)
		return
	}
	RespondOK(c, gin.H{"access_token": token})
}
