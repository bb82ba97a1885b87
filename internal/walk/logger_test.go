package sift

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  zapcore.Level
	}{
		{LogLevelError, zap.ErrorLevel},
		{LogLevelWarn, zap.WarnLevel},
		{LogLevelInfo, zap.InfoLevel},
		{LogLevelDebug, zap.DebugLevel},
		{LogLevel(42), zap.WarnLevel},
	}
	for _, tt := range tests {
		core := NewLogger(tt.level).Core()
		if !core.Enabled(tt.want) {
			t.Errorf("Level %d: expected %v enabled", tt.level, tt.want)
		}
		if tt.want > zap.DebugLevel && core.Enabled(tt.want-1) {
			t.Errorf("Level %d: expected %v disabled", tt.level, tt.want-1)
		}
	}
}
