package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/apierrors"
)

func respondError(c *gin.Context, code int, msgKey string) {
	c.JSON(code, apierrors.CreateError(code, msgKey, middleware.GetLang(c)))
}

// errorResponse maps a domain error to a status and message key. Unknown
// errors become a 500 with the fallback key.
func errorResponse(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, validation.ErrInvalidTaskPayload):
		return http.StatusBadRequest, apierrors.MsgInvalidTaskPayload
	case errors.Is(err, domain.ErrEmptyTitle):
		return http.StatusBadRequest, apierrors.MsgEmptyTitle
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, apierrors.MsgInvalidStatus
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, apierrors.MsgInvalidDate
	case errors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest, apierrors.MsgEmptyComment
	case errors.Is(err, domain.ErrEmptyPassword):
		return http.StatusBadRequest, apierrors.MsgEmptyPassword
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, apierrors.MsgUserNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, apierrors.MsgBadCredentials
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, apierrors.MsgUnauthorized
	case errors.Is(err, domain.ErrAuditNotRecorded):
		return http.StatusInternalServerError, apierrors.MsgAuditNotRecorded
	default:
		return http.StatusInternalServerError, fallback
	}
}

func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, apierrors.MsgUnauthorized)
	}
	return actor, ok
}
