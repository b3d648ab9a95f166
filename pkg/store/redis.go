package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces scene keys.
const DefaultRedisPrefix = "menulayout:scene:"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // defaults to DefaultRedisPrefix
}

// RedisStore keeps records in Redis, using key expiry for the TTL.
type RedisStore struct {
	client *redis.Client
	prefix string
	owned  bool
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	s := NewRedisFromClient(client, cfg.Prefix)
	s.owned = true
	return s, nil
}

// NewRedisFromClient wraps an existing client. Close leaves the client open.
func NewRedisFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Record, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get scene %s: %w", id, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse scene record: %w", err)
	}
	if rec.IsExpired() {
		return nil, nil
	}
	return &rec, nil
}

func (s *RedisStore) Set(ctx context.Context, rec *Record) error {
	ttl := rec.ttl()
	if ttl < 0 {
		// Already expired.
		return s.Delete(ctx, rec.ID)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal scene record: %w", err)
	}
	return s.client.Set(ctx, s.prefix+rec.ID, data, ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

// Cleanup is a no-op; Redis expires keys itself.
func (s *RedisStore) Cleanup(ctx context.Context) error { return nil }

func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
