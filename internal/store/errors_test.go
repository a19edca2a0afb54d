package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)

	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrUserNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))
}

func TestDuplicateErrors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.ErrorIs(t, ErrUsernameExists, ErrDuplicate)

	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrTaskNotFound))
}
