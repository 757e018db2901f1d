package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AveiroDigital/studio-agenda/internal/config"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/middleware"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

type AuthHandler struct {
	store  *store.Store
	config *config.Config
}

func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{store: st, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	// A mensagem não revela se o erro foi no usuário ou na senha.
	user, ok := h.store.FindUserByUsername(req.Username)
	if !ok || user.Password != req.Password {
		httperr.Unauthorized(c, "Usuário ou senha inválidos")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
		"token":   token,
		"message": "Login realizado com sucesso",
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, ok := h.store.GetUser(userID)
	if !ok {
		httperr.Unauthorized(c, "Não autorizado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
