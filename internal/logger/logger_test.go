package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		level         string
		expectedLevel zapcore.Level
		expectError   bool
	}{
		{name: "debug", level: "debug", expectedLevel: zapcore.DebugLevel},
		{name: "warn", level: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "unknown level", level: "loud", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := Logger
			t.Cleanup(func() { Logger = previous })

			err := Init(tt.level)

			if tt.expectError {
				require.Error(t, err)
				assert.Same(t, previous, Logger)
				return
			}
			require.NoError(t, err)
			assert.True(t, Logger.Core().Enabled(tt.expectedLevel))
			assert.False(t, Logger.Core().Enabled(tt.expectedLevel-1))
		})
	}
}
