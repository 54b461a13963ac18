package deliverytypes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
)

const catalogKey = "bakery:delivery_types:v1"

// Cache кэш каталога типов доставки в Redis
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированный каталог или ErrCacheMiss
func (c *Cache) Get(ctx context.Context) ([]*domain.DeliveryType, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCache, err)
	}

	var deliveryTypes []*domain.DeliveryType
	if err := json.Unmarshal(data, &deliveryTypes); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCache, err)
	}

	return deliveryTypes, nil
}

// Set сохраняет каталог с TTL
func (c *Cache) Set(ctx context.Context, deliveryTypes []*domain.DeliveryType) error {
	data, err := json.Marshal(deliveryTypes)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCache, err)
	}

	return nil
}

// Invalidate удаляет каталог из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCache, err)
	}
	return nil
}
