package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okaya/airticket/config"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, 10*time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCache_missReturnsEmpty(t *testing.T) {
	c := newTestCache(t)

	got, err := c.GetWeather(context.Background(), "Ankara")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisCache_setThenGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetWeather(ctx, "Ankara", "clear sky, 21.0°C"))

	got, err := c.GetWeather(ctx, "Ankara")
	require.NoError(t, err)
	assert.Equal(t, "clear sky, 21.0°C", got)

	// lookup is case-insensitive on the city
	got, err = c.GetWeather(ctx, "ANKARA")
	require.NoError(t, err)
	assert.Equal(t, "clear sky, 21.0°C", got)
}
