package handlers

import (
	"net/http"

	"github.com/Fecu3799/project-arq-web/middleware"
	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	Svc    services.AuthService
	Logger *zap.Logger
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: utils.GetLogger()}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Login: invalid request body", zap.Error(err))
		utils.WriteError(c, utils.NewInvalidInput("the request body is missing or invalid"))
		return
	}

	token, actor, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		utils.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": actor})
}

// Logout handles DELETE /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.BearerToken(c)
	if err := h.Svc.Revoke(token); err != nil {
		h.Logger.Error("Logout: failed to revoke session", zap.Error(err))
		utils.WriteError(c, utils.NewInternal("The session could not be revoked"))
		return
	}
	c.Status(http.StatusNoContent)
}
