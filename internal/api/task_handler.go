// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskm-api/internal/api/shared"
	"github.com/phrazzld/taskm-api/internal/platform/logger"
	"github.com/phrazzld/taskm-api/internal/redact"
	"github.com/phrazzld/taskm-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests
// It returns every task owned by the authenticated user.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tasks, err := h.taskService.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	log.Debug("listed tasks",
		slog.Int64("user_id", userID),
		slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /tasks requests
// Validation failures abort before anything is stored.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", userID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.TaskInput{
		Title:     req.Title,
		DueDate:   req.DueDate,
		Priority:  req.Priority,
		Completed: req.Completed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created",
		slog.Int64("user_id", userID),
		slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
// Fields absent from the payload keep their previous values. A task that is
// missing or owned by another user produces the same not-found response.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := requireUserAndTaskID(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("user_id", userID),
			slog.Int64("task_id", taskID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.TaskPatch{
		Title:      req.Title,
		Completed:  req.Completed,
		Priority:   req.Priority,
		DueDate:    req.DueDate.Value,
		DueDateSet: req.DueDate.Set,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	log.Debug("task updated",
		slog.Int64("user_id", userID),
		slog.Int64("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := requireUserAndTaskID(w, r, log)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	log.Debug("task deleted",
		slog.Int64("user_id", userID),
		slog.Int64("task_id", taskID))
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Task deleted"})
}
