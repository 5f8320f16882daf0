package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart_canteen/internal/models"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, cacheTTL time.Duration) (*Client, error) {
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

	return &Client{rdb: rdb, ttl: cacheTTL}, nil
}

func menuKey(canteenID uint) string {
	return fmt.Sprintf("menu:%d", canteenID)
}

// Menu caching

func (c *Client) GetMenu(canteenID uint) ([]models.Item, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, menuKey(canteenID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("menu not cached")
		}
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu: %w", err)
	}
	return items, nil
}

func (c *Client) SetMenu(canteenID uint, items []models.Item) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	return c.rdb.Set(ctx, menuKey(canteenID), jsonData, c.ttl).Err()
}

func (c *Client) InvalidateMenu(canteenID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, menuKey(canteenID)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
