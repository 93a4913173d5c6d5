package deadletter

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisSink stores entries as JSON in a capped Redis list, newest at the head.
type RedisSink struct {
	client *redis.Client
	key    string
	maxLen int64
}

// NewRedisSink creates a sink writing to the list at key, trimmed to maxLen entries.
func NewRedisSink(client *redis.Client, key string, maxLen int64) *RedisSink {
	return &RedisSink{client: client, key: key, maxLen: maxLen}
}

func (s *RedisSink) Put(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode dead letter: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, s.key, data)
		if s.maxLen > 0 {
			p.LTrim(ctx, s.key, 0, s.maxLen-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("push dead letter: %w", err)
	}
	return nil
}

func (s *RedisSink) List(ctx context.Context, limit int) ([]Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := s.client.LRange(ctx, s.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("list dead letters: %w", err)
	}
	out := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			return nil, fmt.Errorf("decode dead letter: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *RedisSink) Close() error { return s.client.Close() }
