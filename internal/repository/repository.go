package repository

import (
	"context"
	"database/sql"
	"errors"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository/db"
)

// ErrUniqueViolation is returned by CredentialStore.Create when the email is already taken.
var ErrUniqueViolation = errors.New("unique constraint violation")

// CredentialStore persists user identities keyed by email.
type CredentialStore interface {
	// GetByEmail returns (nil, nil) when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts u and returns its ID.
	Create(ctx context.Context, u models.User) (int, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	Users CredentialStore
}

// NewRepository builds SQL-backed repositories over a shared connection pool.
func NewRepository(conn *sql.DB, dialect db.Dialect) *Repository {
	return &Repository{
		Users: NewUserRepository(conn, dialect),
	}
}

// NewMemoryRepository builds process-local repositories with no persistence.
func NewMemoryRepository() *Repository {
	return &Repository{
		Users: NewUserMemory(),
	}
}
