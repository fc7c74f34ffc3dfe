package http

import (
	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/ports"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Tasks    *handlers.TaskHandler
	AuditLog *handlers.AuditLogHandler
	Users    *handlers.UserHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/auth/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/auth/me", h.Auth.Me)

		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.GET("/tasks/counts", h.Tasks.CountTasks)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.GET("/tasks/:id", h.Tasks.GetTask)
		protected.PUT("/tasks/:id", h.Tasks.UpdateTask)
		protected.PATCH("/tasks/:id/trash", h.Tasks.ToggleTrash)
		protected.POST("/tasks/:id/comments", h.Tasks.AddComment)

		protected.GET("/audit-logs/task/:taskId", h.AuditLog.TaskHistory)
		protected.GET("/audit-logs/user/:userId/timeline", h.AuditLog.UserTimeline)

		protected.GET("/users", h.Users.ListUsers)
		protected.GET("/users/:id/stats", h.Users.UserStats)
	}
}
