package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/platform/logger"
	"github.com/phrazzld/taskm-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Every query is scoped by user_id, so a task owned by another user is
// indistinguishable from a missing one.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It inserts the task and fills in the database-generated ID.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (user_id, title, completed, due_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Completed,
		dueDateValue(task.DueDate),
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task is absent or owned by a
// different user.
func (s *PostgresTaskStore) GetByID(ctx context.Context, ownerID, taskID int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, completed, due_date, priority, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, taskID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.Int64("task_id", taskID),
				slog.Int64("user_id", ownerID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return nil, MapError(err)
	}

	return task, nil
}

// ListByOwner implements store.TaskStore.ListByOwner
// Results are ordered by ID so repeated listings are stable.
func (s *PostgresTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, completed, due_date, priority, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", ownerID))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()),
				slog.Int64("user_id", ownerID))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("row iteration failed",
			slog.String("error", err.Error()),
			slog.Int64("user_id", ownerID))
		return nil, err
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
// It persists the full task record, scoped to the owner.
// Returns store.ErrTaskNotFound if absent or owned by a different user.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, completed = $2, due_date = $3, priority = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Completed,
		dueDateValue(task.DueDate),
		task.Priority,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if absent or owned by a different user, so
// repeated deletes of the same ID keep failing.
func (s *PostgresTaskStore) Delete(ctx context.Context, ownerID, taskID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to read rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return err
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully",
		slog.Int64("task_id", taskID),
		slog.Int64("user_id", ownerID))
	return nil
}

// WithTx implements store.TaskStore.WithTx
// It returns a TaskStore bound to the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, converting the nullable due_date column into
// a *time.Time.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var dueDate sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Completed,
		&dueDate,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	return &task, nil
}

// dueDateValue converts an optional due date into a driver-friendly value.
func dueDateValue(due *time.Time) any {
	if due == nil {
		return nil
	}
	return *due
}
