package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Len(t, id, 32)
		require.NotContains(t, id, "-")
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
