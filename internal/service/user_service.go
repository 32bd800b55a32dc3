package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
)

// UserStore is the persistence UserService needs.
type UserStore interface {
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uint) error
}

// UserService backs the admin user management endpoints.
type UserService struct {
	users UserStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ListUsers returns every registered user with their role.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user and everything that references them.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
