package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"expense_tracker/internal/models"
	"expense_tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserStore is a lightweight in-test mock for repository.CredentialStore.
type mockUserStore struct {
	CreateFn     func(u models.User) (int, error)
	GetByEmailFn func(email string) (*models.User, error)

	createCalls []models.User
	getCalls    []string
}

func (m *mockUserStore) Create(_ context.Context, u models.User) (int, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockUserStore) Ping(context.Context) error { return nil }

func notFound(string) (*models.User, error) { return nil, nil }

func fastHasher() *BcryptHasher { return NewBcryptHasher(bcrypt.MinCost) }

var alice = RegisterInput{Email: "a@x.com", Username: "a", Password: "secret1"}

// --- Register tests ---

func TestAuthService_Register_HashesPasswordAndCreates(t *testing.T) {
	store := &mockUserStore{
		GetByEmailFn: notFound,
		CreateFn:     func(models.User) (int, error) { return 42, nil },
	}
	svc := NewAuthService(store, fastHasher())

	id, err := svc.Register(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	require.Len(t, store.createCalls, 1)
	got := store.createCalls[0]
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "a", got.Username)
	assert.NotEqual(t, "secret1", got.PasswordHash)
	assert.True(t, strings.HasPrefix(got.PasswordHash, "$2"), "stored hash should be a bcrypt string: %q", got.PasswordHash)
	assert.True(t, fastHasher().Verify("secret1", got.PasswordHash))
}

func TestAuthService_Register_ExistingEmailIsConflictWithoutWrite(t *testing.T) {
	store := &mockUserStore{
		GetByEmailFn: func(string) (*models.User, error) { return &models.User{ID: 1, Email: "a@x.com"}, nil },
		CreateFn: func(models.User) (int, error) {
			t.Fatal("Create must not be called for an existing email")
			return 0, nil
		},
	}
	svc := NewAuthService(store, fastHasher())

	_, err := svc.Register(context.Background(), alice)
	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Empty(t, store.createCalls)
}

func TestAuthService_Register_UniqueViolationOnInsertIsConflict(t *testing.T) {
	store := &mockUserStore{
		GetByEmailFn: notFound,
		CreateFn: func(models.User) (int, error) {
			return 0, errors.Join(errors.New("insert user"), repository.ErrUniqueViolation)
		},
	}
	svc := NewAuthService(store, fastHasher())

	_, err := svc.Register(context.Background(), alice)
	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestAuthService_Register_StorageErrorsAreInternal(t *testing.T) {
	cases := map[string]*mockUserStore{
		"lookup fails": {
			GetByEmailFn: func(string) (*models.User, error) { return nil, errors.New("db down") },
		},
		"insert fails": {
			GetByEmailFn: notFound,
			CreateFn:     func(models.User) (int, error) { return 0, errors.New("disk full") },
		},
	}
	for name, store := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewAuthService(store, fastHasher())
			_, err := svc.Register(context.Background(), alice)
			require.ErrorIs(t, err, ErrInternal)
			assert.NotErrorIs(t, err, ErrUserAlreadyExists)
		})
	}
}

func TestAuthService_Register_PasswordTooLongIsInvalidInput(t *testing.T) {
	store := &mockUserStore{GetByEmailFn: notFound}
	svc := NewAuthService(store, fastHasher())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Username: "a", Password: strings.Repeat("p", 73)})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Empty(t, store.createCalls)
}

// --- Login tests ---

func TestAuthService_Login(t *testing.T) {
	hash, err := fastHasher().Hash("secret1")
	require.NoError(t, err)
	stored := &models.User{ID: 7, Email: "a@x.com", Username: "a", PasswordHash: hash}

	tests := []struct {
		name     string
		lookup   func(string) (*models.User, error)
		email    string
		password string
		wantID   int
		wantErr  error
	}{
		{
			name:     "correct password",
			lookup:   func(string) (*models.User, error) { return stored, nil },
			email:    "a@x.com",
			password: "secret1",
			wantID:   7,
		},
		{
			name:     "wrong password",
			lookup:   func(string) (*models.User, error) { return stored, nil },
			email:    "a@x.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			lookup:   notFound,
			email:    "ghost@x.com",
			password: "secret1",
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "storage failure",
			lookup:   func(string) (*models.User, error) { return nil, errors.New("query failed") },
			email:    "a@x.com",
			password: "secret1",
			wantErr:  ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockUserStore{GetByEmailFn: tt.lookup}
			svc := NewAuthService(store, fastHasher())

			id, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, []string{tt.email}, store.getCalls)
		})
	}
}

// --- End-to-end over the in-memory store ---

func TestAuthService_RegisterThenLogin_MemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewUserMemory(), fastHasher())

	_, err := svc.Register(ctx, alice)
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Email: "b@x.com", Username: "b", Password: "secret2"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, alice)
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "b@x.com", "secret2")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "c@x.com", "secret1")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_Login_LongerPasswordSharingPrefixIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(repository.NewUserMemory(), fastHasher())
	pw := strings.Repeat("p", 72)

	_, err := svc.Register(ctx, RegisterInput{Email: "long@x.com", Username: "long", Password: pw})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "long@x.com", pw+"EXTRA-DIFFERENT")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "long@x.com", pw)
	require.NoError(t, err)
}

func TestAuthService_ConcurrentRegisterSameEmail(t *testing.T) {
	svc := NewAuthService(repository.NewUserMemory(), fastHasher())
	const callers = 8

	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), alice)
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	}
	assert.Equal(t, 1, ok)
}
