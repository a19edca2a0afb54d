package api

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/taskm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDateUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantSet   bool
		wantValue *string
	}{
		{
			name:    "absent field",
			payload: `{"title":"x"}`,
			wantSet: false,
		},
		{
			name:      "explicit null",
			payload:   `{"due_date":null}`,
			wantSet:   true,
			wantValue: nil,
		},
		{
			name:      "date string",
			payload:   `{"due_date":"2025-01-15"}`,
			wantSet:   true,
			wantValue: func() *string { s := "2025-01-15"; return &s }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req UpdateTaskRequest
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &req))
			assert.Equal(t, tt.wantSet, req.DueDate.Set)
			if tt.wantValue == nil {
				assert.Nil(t, req.DueDate.Value)
			} else {
				require.NotNil(t, req.DueDate.Value)
				assert.Equal(t, *tt.wantValue, *req.DueDate.Value)
			}
		})
	}

	t.Run("non-string value is an error", func(t *testing.T) {
		t.Parallel()

		var req UpdateTaskRequest
		assert.Error(t, json.Unmarshal([]byte(`{"due_date":12345}`), &req))
	})
}

func TestTaskToResponse(t *testing.T) {
	t.Parallel()

	t.Run("unset due date serializes as null", func(t *testing.T) {
		t.Parallel()

		resp := taskToResponse(&domain.Task{ID: 1, Title: "no date", Priority: "Medium"})
		data, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"due_date":null`)
	})

	t.Run("due date round-trips in wire format", func(t *testing.T) {
		t.Parallel()

		parsed, err := domain.ParseDueDate("2025-01-15")
		require.NoError(t, err)

		resp := taskToResponse(&domain.Task{ID: 1, Title: "dated", Priority: "Low", DueDate: &parsed})
		require.NotNil(t, resp.DueDate)
		assert.Equal(t, "2025-01-15", *resp.DueDate)
	})
}
