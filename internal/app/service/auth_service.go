package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         ports.PasswordHasher
	tokens         ports.TokenIssuer
}

func NewAuthService(userRepository ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{userRepository: userRepository, hasher: hasher, tokens: tokens}
}

var _ ports.AuthService = (*AuthService)(nil)

// Login matches the password against every user; the first match wins.
func (s *AuthService) Login(ctx context.Context, password string) (domain.User, string, error) {
	if password == "" {
		return domain.User{}, "", domain.ErrEmptyPassword
	}

	users, err := s.userRepository.List(ctx)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if !s.hasher.Compare(user.PasswordHash, password) {
			continue
		}
		token, err := s.tokens.Issue(user.ID)
		if err != nil {
			return domain.User{}, "", fmt.Errorf("issue token: %w", err)
		}
		return user, token, nil
	}

	return domain.User{}, "", domain.ErrInvalidCredentials
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("find user: %w", err)
	}

	return domain.Actor{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// Seed replaces every user with the given ones.
func (s *AuthService) Seed(ctx context.Context, seeds []domain.SeedUser) error {
	users := make([]domain.User, 0, len(seeds))
	for _, seed := range seeds {
		if seed.Password == "" {
			return fmt.Errorf("seed user %q: %w", seed.Name, domain.ErrEmptyPassword)
		}
		hash, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", seed.Name, err)
		}
		role := seed.Role
		if role == "" {
			role = domain.RoleUser
		}
		users = append(users, domain.User{
			ID:           uuid.NewString(),
			Name:         seed.Name,
			Role:         role,
			PasswordHash: hash,
		})
	}
	return s.userRepository.ReplaceAll(ctx, users)
}
