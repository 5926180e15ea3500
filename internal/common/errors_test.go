package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorFormatting(t *testing.T) {
	e := NewAppError("SETTINGS_INVALID", "company settings rejected", ErrInvalidInput)
	assert.Equal(t, "SETTINGS_INVALID: company settings rejected: invalid input", e.Error())
	assert.True(t, errors.Is(e, ErrInvalidInput))

	bare := NewAppError("DB_PING", "database unreachable", nil)
	assert.Equal(t, "DB_PING: database unreachable", bare.Error())
}

func TestStageErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("%w: %w", ErrDatabase, errors.New("connection refused"))
	e := &StageError{Stage: "MATCHING", Cause: cause}

	assert.Contains(t, e.Error(), "MATCHING")
	assert.True(t, errors.Is(e, ErrDatabase))

	var se *StageError
	require.True(t, errors.As(fmt.Errorf("run: %w", e), &se))
	assert.Equal(t, "MATCHING", se.Stage)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	wrapped := WrapError(ErrRecognition, "provider plaintext")
	assert.True(t, errors.Is(wrapped, ErrRecognition))
	assert.Equal(t, "provider plaintext: recognition failed", wrapped.Error())
}
