package service

import (
	"context"
	"errors"
	"fmt"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"
)

// RegisterInput is the unvalidated registration payload.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// AuthService handles registration and login against the credential store.
type AuthService struct {
	users  repository.CredentialStore
	hasher PasswordHasher
}

func NewAuthService(users repository.CredentialStore, hasher PasswordHasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register creates an account and returns its ID. The existence check and the
// insert are separate steps; the store's uniqueness constraint settles races,
// and the losing writer also gets ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (int, error) {
	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return 0, fmt.Errorf("%w: lookup user: %w", ErrInternal, err)
	}
	if existing != nil {
		return 0, ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	id, err := s.users.Create(ctx, models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return 0, ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("%w: create user: %w", ErrInternal, err)
	}
	return id, nil
}

// Login checks that password matches the account registered under email and
// returns the account ID. Nothing is issued on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (int, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("%w: lookup user: %w", ErrInternal, err)
	}
	if u == nil {
		return 0, ErrUserNotFound
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}
