package pagination

import (
	"context"
	"testing"

	"github.com/rmorlok/syncstore/internal/config"
	"github.com/stretchr/testify/require"
)

type fakeCursor struct {
	Value string `json:"value"`
}

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()
	key := config.KeyDataValue{
		Value: "0123456789abcdef0123456789abcdef",
	}

	cursor, err := MakeCursor(context.Background(), &key, &fakeCursor{
		Value: "some-value",
	})
	require.NoError(t, err)
	require.NotEmpty(t, cursor)

	parsed, err := ParseCursor[fakeCursor](context.Background(), &key, cursor)
	require.NoError(t, err)
	require.Equal(t, "some-value", parsed.Value)
}

func TestCursorWrongKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cursor, err := MakeCursor(ctx, &config.KeyDataValue{Value: "0123456789abcdef"}, &fakeCursor{Value: "x"})
	require.NoError(t, err)

	_, err = ParseCursor[fakeCursor](ctx, &config.KeyDataValue{Value: "fedcba9876543210"}, cursor)
	require.Error(t, err)
}

func TestCursorNoKey(t *testing.T) {
	t.Parallel()
	_, err := MakeCursor(context.Background(), nil, &fakeCursor{})
	require.Error(t, err)

	_, err = ParseCursor[fakeCursor](context.Background(), nil, "abc")
	require.Error(t, err)
}
