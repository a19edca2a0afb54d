package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskm-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and fills in the generated ID.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists or ErrUsernameExists on unique violations.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's username and email.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists or ErrUsernameExists when updating to a value
	// already taken by another user.
	Update(ctx context.Context, user *domain.User) error

	// WithTx returns a UserStore bound to the provided transaction so
	// multiple operations can execute atomically.
	WithTx(tx *sql.Tx) UserStore
}
