package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger for the given environment. Production builds a
// JSON logger at info level, development and local build a console logger at
// debug level.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg.Build()
	case "development":
		return zap.NewDevelopment()
	case "local", "":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	default:
		return nil, fmt.Errorf("unknown logging environment %q", env)
	}
}
