package service

import (
	"context"
	"time"

	"expense_tracker/internal/repository"
)

const healthPingTimeout = 2 * time.Second

type HealthService struct {
	users repository.CredentialStore
}

func NewHealthService(users repository.CredentialStore) *HealthService {
	return &HealthService{users: users}
}

// Ping reports whether the credential store answers within healthPingTimeout.
func (s *HealthService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return s.users.Ping(ctx)
}
