package sift

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLevels = map[LogLevel]zapcore.Level{
	LogLevelError: zap.ErrorLevel,
	LogLevelWarn:  zap.WarnLevel,
	LogLevelInfo:  zap.InfoLevel,
	LogLevelDebug: zap.DebugLevel,
}

// NewLogger creates a zap logger writing to stderr. Debug uses the
// development encoder with coloured levels; unknown levels fall back to Warn.
func NewLogger(level LogLevel) *zap.Logger {
	zl, ok := zapLevels[level]
	if !ok {
		zl = zap.WarnLevel
	}

	config := zap.NewProductionConfig()
	if zl == zap.DebugLevel {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
