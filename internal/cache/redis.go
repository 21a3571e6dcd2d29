package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin cache-aside wrapper around Redis. Callers must tolerate
// a nil *Client; caching is strictly optional.
type Client struct {
	rdb *redis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

// New connects to Redis. An empty Addr returns (nil, nil) so the caller can
// run without a cache.
func New(cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

const nowPlayingKey = "catalog:now_playing"

// GetNowPlayingRaw returns the cached now-playing payload as raw JSON.
func (c *Client) GetNowPlayingRaw(ctx context.Context) ([]byte, error) {
	if c == nil {
		return nil, redis.Nil
	}
	return c.rdb.Get(ctx, nowPlayingKey).Bytes()
}

// SetNowPlayingRaw stores the now-playing payload with a TTL.
func (c *Client) SetNowPlayingRaw(ctx context.Context, payload []byte, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.rdb.Set(ctx, nowPlayingKey, payload, ttl).Err()
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
