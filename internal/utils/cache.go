package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// A nil client turns every helper into a no-op miss, so the cache stays optional.

// GetCache retrieves a value from Redis and unmarshals it into dest
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil // Cache disabled
	}
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err // Corrupt entry counts as a miss
	}
	return true, nil
}

// LoadCache returns the cached value of key, calling load on a miss and caching its result.
// The cache write runs under WATCH on guard, so a BumpCache on guard while load runs
// drops the write and a value read before a concurrent change is never cached.
// Cache failures are logged and fall back to load.
func LoadCache[T any](ctx context.Context, rdb *redis.Client, guard, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	found, err := GetCache(ctx, rdb, key, &cached) // Try the cache first
	if err == nil && found {
		return cached, nil
	} else if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
	}
	if rdb == nil {
		return load() // Cache disabled
	}

	var (
		value   T
		loadErr error
		loaded  bool
	)
	err = rdb.Watch(ctx, func(tx *redis.Tx) error {
		value, loadErr = load()
		loaded = true
		if loadErr != nil {
			return nil // Nothing to cache
		}
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		// Fails with redis.TxFailedErr when guard changed since WATCH
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, b, ttl)
			return nil
		})
		return err
	}, guard)
	if !loaded {
		logrus.WithError(err).WithField("key", key).Warn("Cache watch failed")
		return load()
	}
	if loadErr != nil {
		return value, loadErr
	}
	switch {
	case errors.Is(err, redis.TxFailedErr):
		logrus.WithField("key", key).Debug("Cache write dropped after concurrent invalidation")
	case err != nil:
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
	return value, nil
}

// BumpCache changes guard and deletes keys in one transaction, aborting any LoadCache
// write on guard that is still in flight. Call it after the underlying write commits.
func BumpCache(ctx context.Context, rdb *redis.Client, guard string, keys ...string) error {
	if rdb == nil {
		return nil // Cache disabled
	}
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, guard) // Invalidate in-flight loads
		if len(keys) > 0 {
			pipe.Del(ctx, keys...) // Drop cached values
		}
		return nil
	})
	return err
}
