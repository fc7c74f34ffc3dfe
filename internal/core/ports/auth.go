package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, password string) (domain.User, string, error)
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
	Seed(ctx context.Context, users []domain.SeedUser) error
}
