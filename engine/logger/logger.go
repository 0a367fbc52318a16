// Package logger builds the zap loggers shared by the engine, camera and tooling packages.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration.
type Config struct {
	// Level is one of debug, info, warn, error. Unknown values fall back to info.
	Level string `yaml:"level"`
	// Format is json or console.
	Format string `yaml:"format"`
	// Development switches to zap's development preset (colored levels, DPanic panics).
	Development bool `yaml:"development"`
}

// DefaultConfig returns console logging at info level.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// New builds a zap logger from cfg.
//
// Parameters:
//   - cfg: level, format and preset selection
//
// Returns:
//   - *zap.Logger: the configured logger
//   - error: error if zap fails to build the logger
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		// per-frame debug events are bursty; keep sampling off so drag sequences stay complete
		zapConfig.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
	} else {
		zapConfig.Encoding = "console"
	}

	l, err := zapConfig.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("logger: failed to build zap logger: %w", err)
	}
	return l, nil
}

// Nop returns a logger that discards everything. Components use it when no logger is supplied.
func Nop() *zap.Logger {
	return zap.NewNop()
}
