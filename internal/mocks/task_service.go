package mocks

import (
	"context"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/service"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	// ListFn allows test cases to mock the List behavior
	ListFn func(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, ownerID int64, input service.TaskInput) (*domain.Task, error)

	// UpdateFn allows test cases to mock the Update behavior
	UpdateFn func(ctx context.Context, ownerID, taskID int64, patch service.TaskPatch) (*domain.Task, error)

	// DeleteFn allows test cases to mock the Delete behavior
	DeleteFn func(ctx context.Context, ownerID, taskID int64) error

	// Default values used when functions aren't explicitly defined
	Tasks []*domain.Task
	Task  *domain.Task
	Err   error
}

// List implements the service.TaskService interface
func (m *MockTaskService) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}
	return m.Tasks, m.Err
}

// Create implements the service.TaskService interface
func (m *MockTaskService) Create(
	ctx context.Context,
	ownerID int64,
	input service.TaskInput,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, input)
	}
	return m.Task, m.Err
}

// Update implements the service.TaskService interface
func (m *MockTaskService) Update(
	ctx context.Context,
	ownerID, taskID int64,
	patch service.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, taskID, patch)
	}
	return m.Task, m.Err
}

// Delete implements the service.TaskService interface
func (m *MockTaskService) Delete(ctx context.Context, ownerID, taskID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, taskID)
	}
	return m.Err
}
