package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
)

// ProfilePatch describes a partial profile update. Nil pointers leave the
// field untouched.
type ProfilePatch struct {
	Username *string
	Email    *string
}

// UserService provides user account operations.
type UserService interface {
	// CreateUser registers a new user with the given credentials, hashing
	// the password before anything is stored.
	// Returns store.ErrEmailExists or store.ErrUsernameExists when the
	// email or username is already taken.
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// GetUser retrieves a user by their ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile applies only the fields present in the patch. Username
	// and email uniqueness are enforced the same way as on signup.
	UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	db *sql.DB,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		db:        db,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

// Ensure UserServiceImpl implements UserService.
var _ UserService = (*UserServiceImpl)(nil)

// CreateUser registers a new user. The plaintext password is validated,
// hashed, and discarded; only the hash is stored. The insert runs inside a
// transaction so a half-created account can never be observed.
func (s *UserServiceImpl) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, email, password)
	if err != nil {
		s.logger.Debug("rejected invalid signup",
			"error", err,
			"username", username)
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)
		return txStore.Create(ctx, user)
	})

	if err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to create user with existing credentials",
				"username", username)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by email")
		} else {
			s.logger.Error("failed to retrieve user by email", "error", err)
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile loads the user, applies the present fields, and persists the
// result in a transaction. Uniqueness of username and email is enforced by
// the store on write, matching signup behavior.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*domain.User, error) {
	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if err := user.Validate(); err != nil {
			return err
		}
		user.UpdatedAt = time.Now().UTC()

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			s.logger.Debug("user not found for profile update", "user_id", userID)
		case store.IsDuplicateError(err):
			s.logger.Debug("profile update hit duplicate value", "user_id", userID)
		default:
			s.logger.Error("failed to update profile",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("profile updated successfully", "user_id", userID)
	return updated, nil
}
