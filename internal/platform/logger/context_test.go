package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerContextRoundTrip(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewJSONHandler(io.Discard, nil)).With("component", "test")
	ctx := WithLogger(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
	assert.Same(t, log, FromContextOrDefault(ctx, nil))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Same(t, slog.Default(), FromContext(ctx))

	def := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
