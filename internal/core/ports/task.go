package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type TaskRepository interface {
	FindByID(ctx context.Context, id string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) error
	Save(ctx context.Context, task domain.Task) error
	List(ctx context.Context, query domain.TaskQuery) ([]domain.Task, error)
	CountByAssignee(ctx context.Context) ([]domain.AssigneeCount, error)
	CountTrashed(ctx context.Context) (int, error)
	CountAssigned(ctx context.Context, assigneeID string, statuses []domain.TaskStatus) (int, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	UpdateTask(ctx context.Context, actor domain.Actor, id string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTrash(ctx context.Context, actor domain.Actor, id string) (domain.Task, error)
	AddComment(ctx context.Context, actor domain.Actor, id string, text string) (domain.Task, error)
	ListTasks(ctx context.Context, actor domain.Actor, filter domain.TaskFilter) ([]domain.Task, error)
	CountTasks(ctx context.Context, actor domain.Actor) (domain.TabCounts, error)
}
