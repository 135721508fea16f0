package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()
	require.Equal(t, 1, Clamp(-5, 1, 10))
	require.Equal(t, 10, Clamp(50, 1, 10))
	require.Equal(t, 5, Clamp(5, 1, 10))
}
