// Package logging builds the application logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger. Development mode logs human-readable console
// output at debug level; otherwise output is JSON at info level.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
