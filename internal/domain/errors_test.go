package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundUnwraps(t *testing.T) {
	err := NewUserNotFound("abc")
	require.True(t, errors.Is(err, ErrUserNotFound))
	require.False(t, errors.Is(err, ErrInvalidInput))

	wrapped := fmt.Errorf("soft delete: %w", err)
	require.True(t, errors.Is(wrapped, ErrUserNotFound))
	require.Equal(t, "user 'abc' not found", Message(wrapped))
	require.Contains(t, err.Error(), "NOT_FOUND")
}

func TestMessagePlainError(t *testing.T) {
	require.Equal(t, "boom", Message(errors.New("boom")))
	require.Equal(t, "first name is blank", Message(NewInvalidInput("first name is blank")))
}
