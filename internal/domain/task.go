package domain

import (
	"errors"
	"time"
)

// DueDateLayout is the wire format for task due dates.
const DueDateLayout = "2006-01-02"

// DefaultPriority is assigned when a task is created without a priority.
const DefaultPriority = "Medium"

// Task validation errors.
var (
	ErrEmptyTitle = errors.New("title cannot be empty")
	ErrEmptyOwner = errors.New("task must have an owner")
)

// Task represents a single to-do item owned by exactly one user. A task is
// visible and mutable only through requests authenticated as its owner.
type Task struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"-"` // Owner; never part of the wire shape
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"-"` // Serialized as YYYY-MM-DD or null, see api package
	Priority  string     `json:"priority"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// NewTask creates a Task owned by userID, applying defaults: completed is
// false unless set and priority falls back to "Medium" when empty.
// Returns an error if validation fails.
func NewTask(userID int64, title string, dueDate *time.Time, priority string, completed bool) (*Task, error) {
	if priority == "" {
		priority = DefaultPriority
	}

	now := time.Now().UTC()
	task := &Task{
		UserID:    userID,
		Title:     title,
		Completed: completed,
		DueDate:   dueDate,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.UserID == 0 {
		return ErrEmptyOwner
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	return nil
}

// ParseDueDate parses a wire-format due date string. It returns
// ErrInvalidDueDate (wrapped in a ValidationError) when the value is not a
// calendar date in YYYY-MM-DD form.
func ParseDueDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError("due_date", "bad due_date format", ErrInvalidDueDate)
	}
	return parsed, nil
}

// FormatDueDate renders a due date in wire format. A nil date renders as
// the empty string; callers deciding between "" and JSON null live in the
// api package.
func FormatDueDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(DueDateLayout)
}
