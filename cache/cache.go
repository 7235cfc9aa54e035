// Package cache provides a Redis-backed answer cache keyed by question
// text.
//
// Answers are deterministic for a fixed graph snapshot except for the
// model-generated prose, so caching whole answer payloads by question is
// safe and saves a model round trip on repeat questions. Entries expire by
// TTL; reloading the graph should be paired with a flush or a short TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long cached answers live.
const DefaultTTL = 1 * time.Hour

// keyPrefix namespaces answer entries in a shared Redis.
const keyPrefix = "synthkg:answer:"

// Options configures the Redis connection.
type Options struct {
	// URL is the Redis connection string (e.g., "redis://localhost:6379")
	URL string

	// TTL is the entry lifetime. Zero keeps DefaultTTL.
	TTL time.Duration

	// ConnectTimeout is the maximum time to wait for connection
	// establishment. Zero keeps a 5s default.
	ConnectTimeout time.Duration
}

// Cache stores answer payloads in Redis as JSON.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection with a ping.
func New(opts Options) (*Cache, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	redisOpts.DialTimeout = opts.ConnectTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: client, ttl: opts.TTL}, nil
}

// Get loads the cached payload for a question into out. The first return
// value reports a hit; a corrupt entry is deleted and treated as a miss.
func (c *Cache) Get(ctx context.Context, question string, out any) (bool, error) {
	key := c.key(question)
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

// Set stores the payload for a question with the configured TTL.
func (c *Cache) Set(ctx context.Context, question string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := c.client.Set(ctx, c.key(question), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Flush removes every answer entry. Call after swapping the graph snapshot
// so stale answers cannot outlive the data they came from.
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache entry: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache entries: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *Cache) Close() error {
	return c.client.Close()
}

// key hashes the question so arbitrary text cannot produce oversized or
// unsafe Redis keys.
func (c *Cache) key(question string) string {
	sum := sha256.Sum256([]byte(question))
	return keyPrefix + hex.EncodeToString(sum[:])
}
