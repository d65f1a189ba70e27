package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/customer-list/internal/config"
)

// New builds the application logger from env. Development mode writes
// human-readable console output; otherwise JSON.
func New(env config.Env) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(env.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", env.LogLevel, err)
	}

	cfg := zap.NewProductionConfig()
	if env.LogDevelopment {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
