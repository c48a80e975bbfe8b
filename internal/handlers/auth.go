package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yukikurage/task-manager-api/internal/dto"
	"github.com/yukikurage/task-manager-api/internal/services"
)

// AuthHandler handles login and signup.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	log         *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		log:         log,
	}
}

// LoginRequest carries the credentials; username is the e-mail.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and returns the bearer token as plain text.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.String(http.StatusOK, token)
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.UserCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	h.log.Info("user signed up", zap.Uint64("user_id", user.ID))
	c.JSON(http.StatusCreated, user)
}
