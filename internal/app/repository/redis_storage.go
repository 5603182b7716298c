package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements CartStorage on a Redis key. The value is the
// JSON line-item array, written without a TTL: the slot is durable
// state, not a cache.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage creates a Redis-backed cart storage
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Save(ctx context.Context, key string, items []model.CartLineItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart slot failed: %w", err)
	}

	if err := s.client.Set(ctx, slotKey(key), payload, 0).Err(); err != nil {
		logger.Error("Failed to write cart slot to redis", err, map[string]interface{}{
			"key": key,
		})
		return fmt.Errorf("redis set failed: %w", err)
	}

	logger.Debug("Cart slot written to redis", map[string]interface{}{
		"key":   key,
		"count": len(items),
	})
	return nil
}

func (s *RedisStorage) Load(ctx context.Context, key string) ([]model.CartLineItem, error) {
	data, err := s.client.Get(ctx, slotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		logger.Error("Failed to read cart slot from redis", err, map[string]interface{}{
			"key": key,
		})
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal cart slot failed: %w", err)
	}

	return items, nil
}

func slotKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}
