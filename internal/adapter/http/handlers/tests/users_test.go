package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/domain"
	"taskmanager/pkg/translator"
)

func newUserRouter(serviceMock *userServiceMock) *gin.Engine {
	handler := handlers.NewUserHandler(serviceMock)

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware(), withActor(nemo))
	api.GET("/users", handler.ListUsers)
	api.GET("/users/:id/stats", handler.UserStats)
	return router
}

func TestUserHandler_ListUsers_HidesPasswordHash(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: "u-nemo", Name: "Nemo", Role: domain.RoleAdmin, PasswordHash: "$2a$10$secret"},
	}, nil).Once()

	rec := doRequest(newUserRouter(serviceMock), http.MethodGet, "/api/users", "", translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":"u-nemo","name":"Nemo","role":"Admin"}]`, rec.Body.String())
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UserStats(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UserStats", mock.Anything, "u-nur").Return(
		domain.User{ID: "u-nur", Name: "Nur", Role: domain.RoleUser},
		domain.UserStats{CompletedTasks: 2, ActiveTasks: 3, TotalTasks: 6},
		nil,
	).Once()

	rec := doRequest(newUserRouter(serviceMock), http.MethodGet, "/api/users/u-nur/stats", "", translator.LanguageEn)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, dto.UserStatsResponse{
		User:           dto.UserItem{ID: "u-nur", Name: "Nur", Role: "User"},
		CompletedTasks: 2,
		ActiveTasks:    3,
		TotalTasks:     6,
	}, got)
	serviceMock.AssertExpectations(t)
}

func TestUserHandler_UserStats_NotFound(t *testing.T) {
	serviceMock := new(userServiceMock)
	serviceMock.On("UserStats", mock.Anything, "ghost").
		Return(domain.User{}, domain.UserStats{}, domain.ErrUserNotFound).Once()

	rec := doRequest(newUserRouter(serviceMock), http.MethodGet, "/api/users/ghost/stats", "", translator.LanguageFr)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Utilisateur introuvable.", decodeError(t, rec).ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
