package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgEmptyPassword)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		code, msgKey := errorResponse(err, apierrors.MsgFailLogin)
		if code >= http.StatusInternalServerError {
			zap.L().Error("failed to log in", zap.Error(err))
		}
		respondError(c, code, msgKey)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(domain.User{ID: actor.ID, Name: actor.Name, Role: actor.Role}))
}
