package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListUsers)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) UserStats(c *gin.Context) {
	userID := c.Param("id")
	user, stats, err := h.userService.UserStats(c.Request.Context(), userID)
	if err != nil {
		code, msgKey := errorResponse(err, apierrors.MsgFailUserStats)
		if code >= http.StatusInternalServerError {
			zap.L().Error("failed to compute user stats", zap.String("user_id", userID), zap.Error(err))
		}
		respondError(c, code, msgKey)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserStatsResponse(user, stats))
}
