package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
		enabled zapcore.Level
	}{
		{"json info", "info", "json", false, zapcore.InfoLevel},
		{"console debug", "DEBUG", "console", false, zapcore.DebugLevel},
		{"invalid level", "verbose", "json", true, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
		})
	}
}

func TestInit_ReplacesGlobal(t *testing.T) {
	flush, err := Init("warn", "json")
	assert.NoError(t, err)
	defer flush()

	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))
}
