package repository

import (
	"context"
	"fmt"
	"sync"

	"expense_tracker/internal/models"
)

// UserMemory is an in-process CredentialStore. The email check and the insert
// happen under one lock, so it enforces uniqueness like a UNIQUE column.
type UserMemory struct {
	mu      sync.RWMutex
	lastID  int
	byEmail map[string]models.User
}

func NewUserMemory() *UserMemory {
	return &UserMemory{byEmail: make(map[string]models.User)}
}

var _ CredentialStore = (*UserMemory)(nil)

func (m *UserMemory) Create(ctx context.Context, u models.User) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[u.Email]; ok {
		return 0, fmt.Errorf("insert user %q: %w", u.Email, ErrUniqueViolation)
	}
	m.lastID++
	u.ID = m.lastID
	m.byEmail[u.Email] = u
	return u.ID, nil
}

func (m *UserMemory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *UserMemory) Ping(ctx context.Context) error {
	return ctx.Err()
}
