package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskm-api/internal/api/shared"
	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/phrazzld/taskm-api/internal/platform/logger"
	"github.com/phrazzld/taskm-api/internal/store"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The user ID is placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

// getPathTaskID extracts the task ID from the URL path. A non-numeric ID maps
// to store.ErrTaskNotFound so a garbled path is indistinguishable from a
// missing task.
func getPathTaskID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "id")
	if pathParam == "" {
		return 0, domain.NewValidationError("id", "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, store.ErrTaskNotFound
	}

	return id, nil
}

// requireUserAndTaskID extracts both the user ID from context and the task ID
// from the path, writing an error response if either is missing.
func requireUserAndTaskID(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (int64, int64, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return 0, 0, false
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		log.Warn("invalid task ID in path",
			slog.String("value", chi.URLParam(r, "id")))
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	return userID, taskID, true
}
