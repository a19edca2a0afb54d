package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("alice", "alice@example.com", "sup3rsecret")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "sup3rsecret", user.Password)
		assert.Zero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

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
			email:    "alice@example.com",
			password: "sup3rsecret",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "empty email",
			username: "alice",
			email:    "",
			password: "sup3rsecret",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email without at sign",
			username: "alice",
			email:    "alice.example.com",
			password: "sup3rsecret",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "email without domain dot",
			username: "alice",
			email:    "alice@examplecom",
			password: "sup3rsecret",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "password too short",
			username: "alice",
			email:    "alice@example.com",
			password: "tiny",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			username: "alice",
			email:    "alice@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the database has no plaintext password, only a hash.
	user := &User{
		ID:             42,
		Username:       "bob",
		Email:          "bob@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	require.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
