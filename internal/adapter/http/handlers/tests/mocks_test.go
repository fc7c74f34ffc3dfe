package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"taskmanager/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, actor domain.Actor, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, actor, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTrash(ctx context.Context, actor domain.Actor, id string) (domain.Task, error) {
	args := m.Called(ctx, actor, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) AddComment(ctx context.Context, actor domain.Actor, id string, text string) (domain.Task, error) {
	args := m.Called(ctx, actor, id, text)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, actor domain.Actor, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, actor, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CountTasks(ctx context.Context, actor domain.Actor) (domain.TabCounts, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.TabCounts), args.Error(1)
}

type auditServiceMock struct {
	mock.Mock
}

func (m *auditServiceMock) TaskHistory(ctx context.Context, taskID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, taskID)

	var entries []domain.AuditLogEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.AuditLogEntry)
	}
	return entries, args.Error(1)
}

func (m *auditServiceMock) UserTimeline(ctx context.Context, userID string, day string) (domain.Timeline, error) {
	args := m.Called(ctx, userID, day)
	return args.Get(0).(domain.Timeline), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) UserStats(ctx context.Context, id string) (domain.User, domain.UserStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Get(1).(domain.UserStats), args.Error(2)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, password string) (domain.User, string, error) {
	args := m.Called(ctx, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Actor), args.Error(1)
}

func (m *authServiceMock) Seed(ctx context.Context, users []domain.SeedUser) error {
	return m.Called(ctx, users).Error(0)
}
