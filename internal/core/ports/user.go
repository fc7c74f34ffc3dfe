package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ReplaceAll(ctx context.Context, users []domain.User) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UserStats(ctx context.Context, id string) (domain.User, domain.UserStats, error)
}
