package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskm-api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Every read and
// write is scoped by the owning user; a task belonging to another user is
// reported as ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task and fills in the generated ID.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID, scoped to the owner.
	// Returns ErrTaskNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, ownerID, taskID int64) (*domain.Task, error)

	// ListByOwner returns all tasks owned by ownerID in stable (ID) order.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// Update persists the full task record, scoped to the owner.
	// Returns ErrTaskNotFound if absent or owned by someone else.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID, scoped to the owner. Deleting an absent
	// or foreign task returns ErrTaskNotFound, so repeated deletes fail.
	Delete(ctx context.Context, ownerID, taskID int64) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
