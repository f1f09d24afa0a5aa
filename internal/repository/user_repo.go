package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository/db"
)

type UserRepository struct {
	db *sql.DB
	q  userQueries
}

type userQueries struct {
	insert      string
	selectEmail string
}

var (
	sqliteUserQueries = userQueries{
		insert:      `INSERT INTO users (email, username, password_hash) VALUES (?, ?, ?) RETURNING id`,
		selectEmail: `SELECT id, email, username, password_hash FROM users WHERE email = ?`,
	}
	postgresUserQueries = userQueries{
		insert:      `INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		selectEmail: `SELECT id, email, username, password_hash FROM users WHERE email = $1`,
	}
)

func NewUserRepository(conn *sql.DB, dialect db.Dialect) *UserRepository {
	q := sqliteUserQueries
	if dialect == db.DialectPostgres {
		q = postgresUserQueries
	}
	return &UserRepository{db: conn, q: q}
}

// Ensure implementation of CredentialStore interface at compile time.
var _ CredentialStore = (*UserRepository)(nil)

// Create inserts a new user and returns its ID.
// A duplicate email yields an error wrapping ErrUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, r.q.insert, u.Email, u.Username, u.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Email, ErrUniqueViolation)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return int(id), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, r.q.selectEmail, email).Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
