package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/okaya/airticket/config"
)

// RedisCache keeps recent weather lookups so repeated bookings to the
// same city do not hit the weather API every time.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

// GetWeather returns the cached description for city, or "" on a miss.
func (c *RedisCache) GetWeather(ctx context.Context, city string) (string, error) {
	val, err := c.client.Get(ctx, weatherKey(city)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (c *RedisCache) SetWeather(ctx context.Context, city, description string) error {
	return c.client.Set(ctx, weatherKey(city), description, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func weatherKey(city string) string {
	return fmt.Sprintf("cache:weather:%s", strings.ToLower(city))
}
