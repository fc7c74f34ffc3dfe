package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type AuditLogHandler struct {
	auditService ports.AuditService
}

func NewAuditLogHandler(auditService ports.AuditService) *AuditLogHandler {
	return &AuditLogHandler{auditService: auditService}
}

func (h *AuditLogHandler) TaskHistory(c *gin.Context) {
	taskID := c.Param("taskId")
	entries, err := h.auditService.TaskHistory(c.Request.Context(), taskID)
	if err != nil {
		zap.L().Error("failed to load task history", zap.String("task_id", taskID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailTaskHistory)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAuditLogItems(entries))
}

// UserTimeline replays one user's activity for the day given as ?date=YYYY-MM-DD.
func (h *AuditLogHandler) UserTimeline(c *gin.Context) {
	userID := c.Param("userId")
	timeline, err := h.auditService.UserTimeline(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		code, msgKey := errorResponse(err, apierrors.MsgFailTimeline)
		if code >= http.StatusInternalServerError {
			zap.L().Error("failed to build timeline", zap.String("user_id", userID), zap.Error(err))
		}
		respondError(c, code, msgKey)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimelineResponse(timeline))
}
