package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

// UserService exposes read access to users.
type UserService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserService(users repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetByUsername returns one user or NotFound.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.users.GetUserByUsername(ctx, username)
}
