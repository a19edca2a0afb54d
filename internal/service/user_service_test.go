package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory store.UserStore for service tests.
type fakeUserStore struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int64]*domain.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return f }

func mustAddUser(t *testing.T, fake *fakeUserStore, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "password123")
	require.NoError(t, err)
	user.HashedPassword = "$2a$04$fakehashfakehashfakehash"
	user.Password = ""
	require.NoError(t, fake.Create(context.Background(), user))
	return user
}

// newTestUserService wires a UserService against the fake store. The *sql.DB
// stays nil, so only paths that fail before reaching a transaction are
// exercised here; transactional paths are covered by integration tests.
func newTestUserService(t *testing.T) (*UserServiceImpl, *fakeUserStore) {
	t.Helper()
	fake := newFakeUserStore()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewUserService(fake, nil, auth.NewBcryptHasher(4), log), fake
}

func TestUserServiceCreateUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "empty username",
			username: "",
			email:    "user@example.com",
			password: "password123",
			wantErr:  domain.ErrEmptyUsername,
		},
		{
			name:     "empty email",
			username: "user",
			email:    "",
			password: "password123",
			wantErr:  domain.ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			username: "user",
			email:    "not-an-email",
			password: "password123",
			wantErr:  domain.ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "user",
			email:    "user@example.com",
			password: "12345",
			wantErr:  domain.ErrPasswordTooShort,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, fake := newTestUserService(t)

			_, err := svc.CreateUser(context.Background(), tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, fake.users)
		})
	}
}

func TestUserServiceGetUser(t *testing.T) {
	t.Parallel()

	svc, fake := newTestUserService(t)
	seeded := mustAddUser(t, fake, "alice", "alice@example.com")

	user, err := svc.GetUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserServiceGetUserByEmail(t *testing.T) {
	t.Parallel()

	svc, fake := newTestUserService(t)
	mustAddUser(t, fake, "bob", "bob@example.com")

	user, err := svc.GetUserByEmail(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	_, err = svc.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
