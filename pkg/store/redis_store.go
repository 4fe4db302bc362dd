package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zpam/sms-filter/pkg/learning"
	"go.uber.org/zap"
)

// RedisStore persists training stats in Redis hashes so several
// classifier instances can share one trained model.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL, keyPrefix string, databaseNum int, logger *zap.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %v", err)
	}
	opt.DB = databaseNum

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("Redis connection failed: %v", err)
	}

	if keyPrefix == "" {
		keyPrefix = "smsfilter:model"
	}

	return &RedisStore{client: client, keyPrefix: keyPrefix, logger: logger}, nil
}

func (rs *RedisStore) spamKey() string { return rs.keyPrefix + ":spam" }
func (rs *RedisStore) hamKey() string  { return rs.keyPrefix + ":ham" }
func (rs *RedisStore) metaKey() string { return rs.keyPrefix + ":meta" }

// Save replaces the stored model under the configured key prefix.
func (rs *RedisStore) Save(ctx context.Context, stats *learning.TrainingStats) error {
	pipe := rs.client.TxPipeline()
	pipe.Del(ctx, rs.spamKey(), rs.hamKey(), rs.metaKey())

	if len(stats.Freq.SpamCounts) > 0 {
		spamFields := make(map[string]interface{}, len(stats.Freq.SpamCounts))
		for word, count := range stats.Freq.SpamCounts {
			spamFields[word] = count
		}
		pipe.HSet(ctx, rs.spamKey(), spamFields)
	}

	if len(stats.Freq.HamCounts) > 0 {
		hamFields := make(map[string]interface{}, len(stats.Freq.HamCounts))
		for word, count := range stats.Freq.HamCounts {
			hamFields[word] = count
		}
		pipe.HSet(ctx, rs.hamKey(), hamFields)
	}

	pipe.HSet(ctx, rs.metaKey(), map[string]interface{}{
		"vocab_size":      stats.VocabSize,
		"spam_vocab_size": stats.SpamVocabSize,
		"ham_vocab_size":  stats.HamVocabSize,
		"spam_messages":   stats.SpamMessages,
		"ham_messages":    stats.HamMessages,
		"trained_at":      stats.TrainedAt.Format(time.RFC3339),
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store model in Redis: %v", err)
	}

	rs.logger.Debug("model saved to redis",
		zap.String("key_prefix", rs.keyPrefix),
		zap.Int("vocab_size", stats.VocabSize))
	return nil
}

// Load reads the stored model back into training stats.
func (rs *RedisStore) Load(ctx context.Context) (*learning.TrainingStats, error) {
	meta, err := rs.client.HGetAll(ctx, rs.metaKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load model metadata: %v", err)
	}
	if len(meta) == 0 {
		return nil, fmt.Errorf("no model stored under key prefix %s", rs.keyPrefix)
	}

	stats := &learning.TrainingStats{
		Freq: &learning.FrequencyTable{
			SpamCounts: make(map[string]int),
			HamCounts:  make(map[string]int),
		},
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

	spamCounts, err := rs.client.HGetAll(ctx, rs.spamKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load spam counts: %v", err)
	}
	for word, raw := range spamCounts {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt spam count for %q: %v", word, err)
		}
		stats.Freq.SpamCounts[word] = count
	}

	hamCounts, err := rs.client.HGetAll(ctx, rs.hamKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load ham counts: %v", err)
	}
	for word, raw := range hamCounts {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt ham count for %q: %v", word, err)
		}
		stats.Freq.HamCounts[word] = count
	}

	stats.RebuildVocabulary()
	return stats, nil
}

// Close closes the Redis client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
