package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPtr(t *testing.T) {
	t.Parallel()
	x := "foo"
	require.Equal(t, &x, ToPtr(x))
}

func TestValOrDefault(t *testing.T) {
	t.Parallel()
	require.Equal(t, 7, ValOrDefault[int](nil, 7))
	require.Equal(t, 3, ValOrDefault(ToPtr(3), 7))
}

func TestMust(t *testing.T) {
	t.Parallel()
	require.Equal(t, "ok", Must("ok", nil))
	require.Panics(t, func() {
		Must("", errors.New("boom"))
	})
}
