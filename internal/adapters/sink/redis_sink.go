package sink

import (
	"context"
	"strings"

	"github.com/clinscribe/transcript-correction/backend/internal/domain/providers"
	"github.com/clinscribe/transcript-correction/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/clinscribe/transcript-correction/backend/pkg/errors"
)

// RedisSink records unknown words in a Redis set. SADD is idempotent, so the
// same word reported by concurrent requests is stored once.
type RedisSink struct {
	client *redis.Client
	key    string
}

// NewRedisSink creates a Redis-backed unknown word sink.
func NewRedisSink(client *redis.Client, key string) providers.UnknownWordSink {
	return &RedisSink{client: client, key: key}
}

// RecordIfAbsent adds the lowercased word to the set.
func (s *RedisSink) RecordIfAbsent(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	if err := s.client.Client().SAdd(ctx, s.key, word).Err(); err != nil {
		return apperrors.NewExternalError("failed to record unknown word", err)
	}
	return nil
}
