package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/models"

	"github.com/go-redis/redis/v8"
)

// ordersKey is the fixed storage namespace for the ledger.
const ordersKey = "shop:orders"

// RedisRepository stores the ledger as one JSON array under a fixed key.
type RedisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository connects to Redis and verifies the connection.
func NewRedisRepository(addr, password string, db int) (*RedisRepository, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisRepository{rdb: rdb}, nil
}

// Close closes the Redis connection.
func (r *RedisRepository) Close() error {
	return r.rdb.Close()
}

func (r *RedisRepository) LoadOrders(ctx context.Context) ([]models.Order, error) {
	payload, err := r.rdb.Get(ctx, ordersKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ordersKey, err)
	}

	var orders []models.Order
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", ordersKey, err)
	}
	return orders, nil
}

func (r *RedisRepository) SaveOrders(ctx context.Context, orders []models.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	if err := r.rdb.Set(ctx, ordersKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", ordersKey, err)
	}
	return nil
}
