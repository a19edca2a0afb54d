package api

import (
	"bytes"
	"encoding/json"

	"github.com/phrazzld/taskm-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user registration endpoint.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// AccessToken is the short-lived JWT used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived JWT used to obtain new access tokens
	RefreshToken string `json:"refresh_token"`

	// UserID is the unique identifier for the authenticated user
	UserID int64 `json:"user_id"`
}

// RefreshResponse defines the successful response for the token refresh
// endpoint.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title     string `json:"title"     validate:"required"`
	DueDate   string `json:"due_date"  validate:"omitempty"`
	Priority  string `json:"priority"  validate:"omitempty"`
	Completed bool   `json:"completed"`
}

// OptionalDate is a tri-state JSON field: absent, explicit null, or a date
// string. It distinguishes "leave the due date alone" from "clear it".
type OptionalDate struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the field is present in the payload, so
// Set records presence and Value records null vs a string.
func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Set = true
	if bytes.Equal(data, []byte("null")) {
		d.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	d.Value = &s
	return nil
}

// UpdateTaskRequest defines the payload for a partial task update. Nil
// pointer fields were absent from the payload.
type UpdateTaskRequest struct {
	Title     *string      `json:"title"`
	Completed *bool        `json:"completed"`
	Priority  *string      `json:"priority"`
	DueDate   OptionalDate `json:"due_date"`
}

// UpdateProfileRequest defines the payload for a partial profile update.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// TaskResponse represents the wire shape of a task. The due date is either a
// YYYY-MM-DD string or null.
type TaskResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	DueDate   *string `json:"due_date"`
	Priority  string  `json:"priority"`
}

// UserResponse represents the wire shape of a user profile.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// taskToResponse converts a domain.Task to its wire shape.
func taskToResponse(task *domain.Task) TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		formatted := domain.FormatDueDate(task.DueDate)
		dueDate = &formatted
	}

	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		DueDate:   dueDate,
		Priority:  task.Priority,
	}
}

// tasksToResponse converts a task list, never returning a nil slice so the
// empty list serializes as [].
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// userToResponse converts a domain.User to its wire shape.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
