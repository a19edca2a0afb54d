package mocks

import (
	"context"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// CreateUserFn allows test cases to mock the CreateUser behavior
	CreateUserFn func(ctx context.Context, username, email, password string) (*domain.User, error)

	// GetUserFn allows test cases to mock the GetUser behavior
	GetUserFn func(ctx context.Context, userID int64) (*domain.User, error)

	// GetUserByEmailFn allows test cases to mock the GetUserByEmail behavior
	GetUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfileFn allows test cases to mock the UpdateProfile behavior
	UpdateProfileFn func(ctx context.Context, userID int64, patch service.ProfilePatch) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

// CreateUser implements the service.UserService interface
func (m *MockUserService) CreateUser(
	ctx context.Context,
	username, email, password string,
) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, username, email, password)
	}
	return m.User, m.Err
}

// GetUser implements the service.UserService interface
func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return m.User, m.Err
}

// GetUserByEmail implements the service.UserService interface
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return m.User, m.Err
}

// UpdateProfile implements the service.UserService interface
func (m *MockUserService) UpdateProfile(
	ctx context.Context,
	userID int64,
	patch service.ProfilePatch,
) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, userID, patch)
	}
	return m.User, m.Err
}
