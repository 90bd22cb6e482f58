package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps cache entries in Redis so they survive process
// restarts. Entries are stored as JSON with their insertion time inside;
// the Redis expiry is set to the stale-retention window so expired-but-
// retained entries stay readable for stale fallbacks.
type RedisStore struct {
	client *redis.Client
	ttls   TTLs
	logger *logrus.Logger
}

// NewRedisStore creates a Redis-backed cache with per-provider TTLs.
func NewRedisStore(client *redis.Client, ttls TTLs, logger *logrus.Logger) *RedisStore {
	return &RedisStore{client: client, ttls: ttls, logger: logger}
}

func (r *RedisStore) fullKey(provider, key string) string {
	return fmt.Sprintf("betscope:%s:%s", provider, key)
}

// Get returns the entry if it is within the provider's TTL.
func (r *RedisStore) Get(ctx context.Context, provider, key string) (*Entry, error) {
	entry, err := r.fetch(ctx, provider, key)
	if err != nil || entry == nil {
		return nil, err
	}
	if time.Since(entry.InsertedAt) > r.ttls.TTL(provider) {
		return nil, nil
	}
	return entry, nil
}

// GetStale returns the entry regardless of TTL, for rate-limit fallback.
func (r *RedisStore) GetStale(ctx context.Context, provider, key string) (*Entry, error) {
	return r.fetch(ctx, provider, key)
}

// Put stores the value with the current time.
func (r *RedisStore) Put(ctx context.Context, provider, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	entry := Entry{Value: data, InsertedAt: time.Now()}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	fk := r.fullKey(provider, key)
	if err := r.client.Set(ctx, fk, payload, StaleRetention).Err(); err != nil {
		r.logger.WithError(err).WithField("key", fk).Error("Failed to set cache value")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"key":      fk,
		"provider": provider,
	}).Debug("Cached value successfully")
	return nil
}

func (r *RedisStore) fetch(ctx context.Context, provider, key string) (*Entry, error) {
	fk := r.fullKey(provider, key)

	payload, err := r.client.Get(ctx, fk).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		r.logger.WithError(err).WithField("key", fk).Error("Failed to get cache value")
		return nil, err
	}

	var entry Entry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		r.logger.WithError(err).WithField("key", fk).Error("Failed to unmarshal cache entry")
		return nil, err
	}
	return &entry, nil
}
