package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zpam/sms-filter/pkg/learning"
	"go.uber.org/zap"
)

// FileStore persists training stats as an indented JSON document.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a file-backed model store.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Save writes the stats to the configured path, creating parent
// directories as needed.
func (fs *FileStore) Save(_ context.Context, stats *learning.TrainingStats) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory: %v", err)
		}
	}

	file, err := os.Create(fs.path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats); err != nil {
		return fmt.Errorf("failed to encode model: %v", err)
	}

	fs.logger.Debug("model saved",
		zap.String("path", fs.path),
		zap.Int("vocab_size", stats.VocabSize))
	return nil
}

// Load reads stats back and rebuilds the in-memory vocabulary set.
func (fs *FileStore) Load(_ context.Context) (*learning.TrainingStats, error) {
	file, err := os.Open(fs.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %v", err)
	}
	defer file.Close()

	var stats learning.TrainingStats
	if err := json.NewDecoder(file).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode model: %v", err)
	}
	if stats.Freq == nil {
		return nil, fmt.Errorf("model file %s has no frequency table", fs.path)
	}

	stats.RebuildVocabulary()
	return &stats, nil
}

// Close is a no-op for the file backend.
func (fs *FileStore) Close() error {
	return nil
}
