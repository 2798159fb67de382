package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const dashboardKey = "dashboard:stats"

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SetDashboardStats caches the computed dashboard snapshot.
func (c *Client) SetDashboardStats(stats interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	return c.rdb.Set(ctx, dashboardKey, jsonData, ttl).Err()
}

func (c *Client) GetDashboardStats(dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, dashboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("dashboard stats not cached")
		}
		return fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

// InvalidateDashboard drops the cached snapshot after any order mutation.
func (c *Client) InvalidateDashboard() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, dashboardKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
