package service

import (
	"context"
	"fmt"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
}

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository) *UserService {
	return &UserService{userRepository: userRepository, taskRepository: taskRepository}
}

var _ ports.UserService = (*UserService)(nil)

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

// UserStats counts the non-trashed tasks assigned to the user.
func (s *UserService) UserStats(ctx context.Context, id string) (domain.User, domain.UserStats, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, domain.UserStats{}, err
	}

	completed, err := s.taskRepository.CountAssigned(ctx, id, []domain.TaskStatus{domain.TaskStatusFinished})
	if err != nil {
		return domain.User{}, domain.UserStats{}, fmt.Errorf("count completed tasks: %w", err)
	}

	active, err := s.taskRepository.CountAssigned(ctx, id, domain.ActiveTaskStatuses)
	if err != nil {
		return domain.User{}, domain.UserStats{}, fmt.Errorf("count active tasks: %w", err)
	}

	total, err := s.taskRepository.CountAssigned(ctx, id, nil)
	if err != nil {
		return domain.User{}, domain.UserStats{}, fmt.Errorf("count tasks: %w", err)
	}

	return user, domain.UserStats{CompletedTasks: completed, ActiveTasks: active, TotalTasks: total}, nil
}
