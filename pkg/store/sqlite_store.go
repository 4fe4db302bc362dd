package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zpam/sms-filter/pkg/learning"
	"go.uber.org/zap"
)

// SQLiteStore persists training stats in a local SQLite database: one
// row per vocabulary word plus a key/value metadata table.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (and if needed initializes) the database.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS word_counts (
			word TEXT PRIMARY KEY,
			spam_count INTEGER NOT NULL DEFAULT 0,
			ham_count INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create word_counts table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS model_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create model_meta table: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save replaces any stored model with the given stats in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, stats *learning.TrainingStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_counts`); err != nil {
		return fmt.Errorf("failed to clear word_counts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM model_meta`); err != nil {
		return fmt.Errorf("failed to clear model_meta: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO word_counts (word, spam_count, ham_count)
		VALUES (?, ?, ?)
		ON CONFLICT(word) DO UPDATE SET
			spam_count = excluded.spam_count,
			ham_count = excluded.ham_count
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	for word := range stats.Vocabulary {
		spamCount := stats.Freq.SpamCounts[word]
		hamCount := stats.Freq.HamCounts[word]
		if _, err := insert.ExecContext(ctx, word, spamCount, hamCount); err != nil {
			return fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	meta := map[string]string{
		"vocab_size":      strconv.Itoa(stats.VocabSize),
		"spam_vocab_size": strconv.Itoa(stats.SpamVocabSize),
		"ham_vocab_size":  strconv.Itoa(stats.HamVocabSize),
		"spam_messages":   strconv.Itoa(stats.SpamMessages),
		"ham_messages":    strconv.Itoa(stats.HamMessages),
		"trained_at":      stats.TrainedAt.Format(time.RFC3339),
	}
	for key, value := range meta {
		_, err := tx.ExecContext(ctx, `INSERT INTO model_meta (key, value) VALUES (?, ?)`, key, value)
		if err != nil {
			return fmt.Errorf("failed to insert metadata %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit model: %w", err)
	}

	s.logger.Debug("model saved to sqlite", zap.Int("words", stats.VocabSize))
	return nil
}

// Load reads the stored model back into training stats.
func (s *SQLiteStore) Load(ctx context.Context) (*learning.TrainingStats, error) {
	stats := &learning.TrainingStats{
		Freq: &learning.FrequencyTable{
			SpamCounts: make(map[string]int),
			HamCounts:  make(map[string]int),
		},
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word, spam_count, ham_count FROM word_counts`)
	if err != nil {
		return nil, fmt.Errorf("failed to query word_counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word string
		var spamCount, hamCount int
		if err := rows.Scan(&word, &spamCount, &hamCount); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		if spamCount > 0 {
			stats.Freq.SpamCounts[word] = spamCount
		}
		if hamCount > 0 {
			stats.Freq.HamCounts[word] = hamCount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate word rows: %w", err)
	}

	meta, err := s.loadMeta(ctx)
	if err != nil {
		return nil, err
	}
	if len(meta) == 0 {
		return nil, fmt.Errorf("no model stored in database")
	}

	if stats.VocabSize, err = metaInt(meta, "vocab_size"); err != nil {
		return nil, err
	}
	if stats.SpamVocabSize, err = metaInt(meta, "spam_vocab_size"); err != nil {
		return nil, err
	}
	if stats.HamVocabSize, err = metaInt(meta, "ham_vocab_size"); err != nil {
		return nil, err
	}
	if stats.SpamMessages, err = metaInt(meta, "spam_messages"); err != nil {
		return nil, err
	}
	if stats.HamMessages, err = metaInt(meta, "ham_messages"); err != nil {
		return nil, err
	}
	if raw, ok := meta["trained_at"]; ok {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			stats.TrainedAt = t
		}
	}

	stats.RebuildVocabulary()
	return stats, nil
}

func (s *SQLiteStore) loadMeta(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM model_meta`)
	if err != nil {
		return nil, fmt.Errorf("failed to query model_meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		meta[key] = value
	}
	return meta, rows.Err()
}

func metaInt(meta map[string]string, key string) (int, error) {
	raw, ok := meta[key]
	if !ok {
		return 0, fmt.Errorf("stored model is missing metadata %q", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("metadata %q is not an integer: %v", key, err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
