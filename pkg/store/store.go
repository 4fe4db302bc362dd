package store

import (
	"context"
	"fmt"

	"github.com/zpam/sms-filter/pkg/learning"
	"go.uber.org/zap"
)

// ModelStore persists the alpha-independent training artifacts so a
// trained model can be reused by later classify/evaluate runs without
// retraining.
type ModelStore interface {
	Save(ctx context.Context, stats *learning.TrainingStats) error
	Load(ctx context.Context) (*learning.TrainingStats, error)
	Close() error
}

// Config selects and configures a model store backend.
type Config struct {
	// Backend: "file", "sqlite" or "redis".
	Backend string

	// File backend.
	Path string

	// SQLite backend.
	SQLitePath string

	// Redis backend.
	RedisURL    string
	KeyPrefix   string
	DatabaseNum int
}

// New builds the configured backend.
func New(cfg Config, logger *zap.Logger) (ModelStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Backend {
	case "file", "":
		return NewFileStore(cfg.Path, logger), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath, logger)
	case "redis":
		return NewRedisStore(cfg.RedisURL, cfg.KeyPrefix, cfg.DatabaseNum, logger)
	default:
		return nil, fmt.Errorf("unknown model store backend: %s", cfg.Backend)
	}
}

// Compile-time interface checks.
var (
	_ ModelStore = (*FileStore)(nil)
	_ ModelStore = (*SQLiteStore)(nil)
	_ ModelStore = (*RedisStore)(nil)
)
