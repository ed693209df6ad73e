package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// New builds a sugared logger for mode. Production mode writes JSON at info level,
// anything else writes console output at debug level.
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", ModeProduction:
		cfg = zap.NewProductionConfig()
	case "", "dev", ModeDevelopment:
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log mode %q", mode)
	}
	cfg.DisableStacktrace = true

	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return zapLogger.Sugar(), nil
}

// Sync flushes buffered entries; the error from syncing a terminal is ignored.
func Sync(log *zap.SugaredLogger) {
	if log == nil {
		return
	}
	_ = log.Sync()
}
