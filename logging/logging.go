// Package logging constructs the loggers used by wrangler commands.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CreateLogger builds a zap logger writing human-readable output at the
// given level. Level strings follow zap conventions ("debug", "info",
// "warn", "error"); an empty level defaults to info.
func CreateLogger(level string) (*zap.Logger, error) {
	if len(level) == 0 {
		level = "info"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(parsed)
	conf.Encoding = "console"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return conf.Build()
}
