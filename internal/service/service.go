package service

import (
	"context"

	"expense_tracker/internal/repository"
)

// Authorization exposes account registration and password checks.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (int, error)
	Login(ctx context.Context, email, password string) (int, error)
}

// Health exposes liveness of the storage backend.
type Health interface {
	Ping(ctx context.Context) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Health
}

// NewService wires the repository layer and the password hasher into concrete services.
func NewService(repos *repository.Repository, hasher PasswordHasher) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, hasher),
		Health:        NewHealthService(repos.Users),
	}
}
