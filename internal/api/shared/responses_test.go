package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	recorder := httptest.NewRecorder()

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("message field carries the error text", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		recorder := httptest.NewRecorder()

		RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Task not found", body["message"])
	})

	t.Run("trace ID is included when present in context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		recorder := httptest.NewRecorder()

		RespondWithError(recorder, req, http.StatusBadRequest, "Validation error")

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/tasks", nil)
	recorder := httptest.NewRecorder()

	internalErr := errors.New("pq: connection refused to host db.internal:5432")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to create task", internalErr)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	// The raw error never reaches the client.
	assert.NotContains(t, recorder.Body.String(), "db.internal")

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Failed to create task", body["message"])
}
