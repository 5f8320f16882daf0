package handlers

import (
	"net/http"
	"time"

	"smart_canteen/internal/auth"
	"smart_canteen/internal/models"
	"smart_canteen/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthHandler(userService services.UserService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password, req.Role)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := auth.GenerateToken(h.jwtSecret, user.ID, user.Role, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(status, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"token": token,
	})
}
