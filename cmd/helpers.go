package cmd

import (
	"github.com/zpam/sms-filter/pkg/config"
	"github.com/zpam/sms-filter/pkg/corpus"
	"github.com/zpam/sms-filter/pkg/logging"
	"github.com/zpam/sms-filter/pkg/store"
	"go.uber.org/zap"
)

// newLogger builds the configured zap logger.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging.Level, cfg.Logging.Format)
}

// newModelStore maps the model section of the config onto a store backend.
func newModelStore(cfg *config.Config, logger *zap.Logger) (store.ModelStore, error) {
	return store.New(store.Config{
		Backend:     cfg.Model.Backend,
		Path:        cfg.Model.Path,
		SQLitePath:  cfg.Model.SQLite.Path,
		RedisURL:    cfg.Model.Redis.RedisURL,
		KeyPrefix:   cfg.Model.Redis.KeyPrefix,
		DatabaseNum: cfg.Model.Redis.DatabaseNum,
	}, logger)
}

// splitRatios maps the split section of the config onto corpus ratios.
func splitRatios(cfg *config.Config) corpus.SplitRatios {
	return corpus.SplitRatios{
		Train:      cfg.Split.TrainRatio,
		Validation: cfg.Split.ValidationRatio,
		Test:       cfg.Split.TestRatio,
	}
}
