// Package service implements the application's business operations on top
// of the store interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/store"
)

// TaskInput carries the fields for creating a task. DueDate uses the wire
// format YYYY-MM-DD; an empty string means no due date.
type TaskInput struct {
	Title     string
	DueDate   string
	Priority  string
	Completed bool
}

// TaskPatch describes a partial update. Nil pointers leave the field
// untouched. DueDateSet distinguishes "clear the due date" (set, nil value)
// from "leave it alone" (unset).
type TaskPatch struct {
	Title      *string
	Completed  *bool
	Priority   *string
	DueDate    *string
	DueDateSet bool
}

// TaskService provides owner-scoped task operations with validation.
type TaskService interface {
	// List returns all tasks owned by ownerID in stable order.
	List(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// Create validates the input and persists a new task. The title is
	// required, the priority defaults to "Medium", and a present due date
	// must parse as YYYY-MM-DD.
	Create(ctx context.Context, ownerID int64, input TaskInput) (*domain.Task, error)

	// Update applies a partial update to an owned task. Omitted fields keep
	// their previous values. Returns store.ErrTaskNotFound if the task is
	// absent or owned by someone else.
	Update(ctx context.Context, ownerID, taskID int64, patch TaskPatch) (*domain.Task, error)

	// Delete removes an owned task. Returns store.ErrTaskNotFound if the
	// task is absent or owned by someone else; repeated deletes keep
	// failing the same way.
	Delete(ctx context.Context, ownerID, taskID int64) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// Ensure TaskServiceImpl implements TaskService.
var _ TaskService = (*TaskServiceImpl)(nil)

// List returns the caller's tasks.
func (s *TaskServiceImpl) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	tasks, err := s.taskStore.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", ownerID)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create validates and persists a new task for ownerID.
// No store mutation happens when validation fails.
func (s *TaskServiceImpl) Create(ctx context.Context, ownerID int64, input TaskInput) (*domain.Task, error) {
	var dueDate *time.Time
	if input.DueDate != "" {
		parsed, err := domain.ParseDueDate(input.DueDate)
		if err != nil {
			s.logger.Debug("rejected task create with bad due date",
				"user_id", ownerID,
				"due_date", input.DueDate)
			return nil, err
		}
		dueDate = &parsed
	}

	task, err := domain.NewTask(ownerID, input.Title, dueDate, input.Priority, input.Completed)
	if err != nil {
		return nil, domain.NewValidationError("title", "is required", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task",
			"error", err,
			"user_id", ownerID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update loads the owned task, applies the patch, and persists the result.
// The patch is validated before the store is touched.
func (s *TaskServiceImpl) Update(ctx context.Context, ownerID, taskID int64, patch TaskPatch) (*domain.Task, error) {
	var newDueDate *time.Time
	if patch.DueDateSet && patch.DueDate != nil {
		parsed, err := domain.ParseDueDate(*patch.DueDate)
		if err != nil {
			return nil, err
		}
		newDueDate = &parsed
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.NewValidationError("title", "cannot be empty", domain.ErrEmptyTitle)
	}

	task, err := s.taskStore.GetByID(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for update",
				"task_id", taskID,
				"user_id", ownerID)
		} else {
			s.logger.Error("failed to load task for update",
				"error", err,
				"task_id", taskID,
				"user_id", ownerID)
		}
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDateSet {
		task.DueDate = newDueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task",
			"error", err,
			"task_id", taskID,
			"user_id", ownerID)
		return nil, err
	}

	return task, nil
}

// Delete removes an owned task.
func (s *TaskServiceImpl) Delete(ctx context.Context, ownerID, taskID int64) error {
	if err := s.taskStore.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found for delete",
				"task_id", taskID,
				"user_id", ownerID)
		} else {
			s.logger.Error("failed to delete task",
				"error", err,
				"task_id", taskID,
				"user_id", ownerID)
		}
		return err
	}

	return nil
}
