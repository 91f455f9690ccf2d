// Package cache provides the catalog cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"vitashop/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const versionKeySuffix = ":catalog:version"

// redisCatalogCache stores JSON payloads under versioned keys. Bumping the version
// orphans every entry at once; orphans expire with their TTL.
type redisCatalogCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCatalogCache wraps an existing Redis client.
func NewRedisCatalogCache(client *redis.Client, prefix string) service.CatalogCache {
	return &redisCatalogCache{
		client: client,
		prefix: prefix,
	}
}

// Get decodes the cached value for key into dest and reports whether it was found.
func (c *redisCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	fullKey, err := c.versionedKey(ctx, key)
	if err != nil {
		return false, err
	}

	raw, err := c.client.Get(ctx, fullKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read cache key %s", fullKey)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.Wrapf(err, "failed to decode cache key %s", fullKey)
	}

	return true, nil
}

// Set stores value under key for ttl.
func (c *redisCatalogCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	fullKey, err := c.versionedKey(ctx, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode cache key %s", fullKey)
	}

	if err := c.client.Set(ctx, fullKey, raw, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to write cache key %s", fullKey)
	}

	return nil
}

// Invalidate drops every cached entry by moving to a new version.
func (c *redisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.prefix+versionKeySuffix).Err(); err != nil {
		return errors.Wrap(err, "failed to bump catalog cache version")
	}

	return nil
}

func (c *redisCatalogCache) versionedKey(ctx context.Context, key string) (string, error) {
	version, err := c.client.Get(ctx, c.prefix+versionKeySuffix).Int64()
	if errors.Is(err, redis.Nil) {
		version = 0
	} else if err != nil {
		return "", errors.Wrap(err, "failed to read catalog cache version")
	}

	return c.prefix + ":catalog:v" + strconv.FormatInt(version, 10) + ":" + key, nil
}

// noopCatalogCache is used when Redis is not configured. Every lookup misses.
type noopCatalogCache struct{}

func (noopCatalogCache) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (noopCatalogCache) Set(context.Context, string, any, time.Duration) error {
	return nil
}

func (noopCatalogCache) Invalidate(context.Context) error {
	return nil
}
