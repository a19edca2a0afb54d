package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, expected: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "wrong token type", err: auth.ErrWrongTokenType, expected: http.StatusUnauthorized},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "unauthorized", err: domain.ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "task not found", err: store.ErrTaskNotFound, expected: http.StatusNotFound},
		{name: "duplicate email", err: store.ErrEmailExists, expected: http.StatusBadRequest},
		{name: "duplicate username", err: store.ErrUsernameExists, expected: http.StatusBadRequest},
		{name: "bad due date", err: domain.ErrInvalidDueDate, expected: http.StatusBadRequest},
		{name: "empty title", err: domain.ErrEmptyTitle, expected: http.StatusBadRequest},
		{name: "short password", err: domain.ErrPasswordTooShort, expected: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
		{
			name:     "wrapped task not found",
			err:      fmt.Errorf("loading: %w", store.ErrTaskNotFound),
			expected: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: "An unexpected error occurred"},
		{name: "invalid token", err: auth.ErrInvalidToken, expected: "Invalid token"},
		{name: "wrong token type", err: auth.ErrWrongTokenType, expected: "Invalid refresh token"},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: "Invalid credentials"},
		{name: "task not found", err: store.ErrTaskNotFound, expected: "Task not found"},
		{name: "duplicate email", err: store.ErrEmailExists, expected: "Email already exists"},
		{name: "bad due date", err: domain.ErrInvalidDueDate, expected: "bad due_date format"},
		{
			name:     "wrapped bad due date keeps exact message",
			err:      domain.NewValidationError("due_date", "bad value", domain.ErrInvalidDueDate),
			expected: "bad due_date format",
		},
		{name: "unknown error is masked", err: errors.New("pq: secret host"), expected: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}
