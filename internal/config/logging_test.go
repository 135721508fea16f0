package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLogging(t *testing.T) {
	for _, typ := range []LoggingConfigType{LoggingConfigTypeText, LoggingConfigTypeJson, LoggingConfigTypeTint, LoggingConfigTypeNone} {
		t.Run(string(typ), func(t *testing.T) {
			var l LoggingConfig
			require.NoError(t, yaml.Unmarshal([]byte("type: "+string(typ)+"\nlevel: warn\n"), &l))
			require.Equal(t, typ, l.GetType())
			require.NotNil(t, l.GetRootLogger())
		})
	}

	t.Run("none discards", func(t *testing.T) {
		var l *LoggingConfig
		require.Equal(t, LoggingConfigTypeNone, l.GetType())
		require.False(t, l.GetRootLogger().Enabled(context.Background(), slog.LevelError))
	})

	t.Run("unknown type", func(t *testing.T) {
		var l LoggingConfig
		require.Error(t, yaml.Unmarshal([]byte("type: carrier-pigeon"), &l))
	})

	t.Run("levels", func(t *testing.T) {
		require.Equal(t, slog.LevelDebug, LevelDebug.Level())
		require.Equal(t, slog.LevelError, LevelError.Level())
		require.Equal(t, slog.LevelInfo, LoggingConfigLevel("").Level())
	})
}
