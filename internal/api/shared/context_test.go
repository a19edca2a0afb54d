package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.NotEmpty(t, traceID)
	})

	t.Run("distinct per context", func(t *testing.T) {
		t.Parallel()

		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})

	t.Run("missing trace ID yields empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GetTraceID(context.Background()))
	})
}
