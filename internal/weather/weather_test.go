package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/okaya/airticket/config"
	"github.com/okaya/airticket/internal/cache"
)

func TestClient_disabledReturnsPlaceholder(t *testing.T) {
	c := NewClient(config.WeatherConfig{Enabled: false}, zap.NewNop())
	assert.Equal(t, Placeholder, c.Lookup(context.Background(), "Ankara"))
}

func TestClient_missingKeyReturnsPlaceholder(t *testing.T) {
	c := NewClient(config.WeatherConfig{Enabled: true}, zap.NewNop())
	assert.Equal(t, Placeholder, c.Lookup(context.Background(), "Ankara"))
}

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Ankara", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"weather":[{"description":"clear sky"}],"main":{"temp":21.04}}`))
	}))
	defer srv.Close()

	c := NewClient(config.WeatherConfig{Enabled: true, APIKey: "key"}, zap.NewNop(), WithBaseURL(srv.URL))
	assert.Equal(t, "clear sky, 21.0°C", c.Lookup(context.Background(), "Ankara"))
}

func TestClient_apiErrorReturnsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(config.WeatherConfig{Enabled: true, APIKey: "bad"}, zap.NewNop(), WithBaseURL(srv.URL))
	assert.Equal(t, Placeholder, c.Lookup(context.Background(), "Ankara"))
}

func TestClient_timeoutReturnsPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := config.WeatherConfig{Enabled: true, APIKey: "key", TimeoutSeconds: 1}
	c := NewClient(cfg, zap.NewNop(), WithBaseURL(srv.URL))
	c.http.Timeout = 50 * time.Millisecond

	assert.Equal(t, Placeholder, c.Lookup(context.Background(), "Ankara"))
}

func TestClient_cacheShortCircuitsAPI(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"weather":[{"description":"light rain"}],"main":{"temp":14.2}}`))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	weatherCache := cache.NewRedisCache(config.RedisConfig{Addr: mr.Addr()}, 10*time.Minute)
	defer weatherCache.Close()

	c := NewClient(config.WeatherConfig{Enabled: true, APIKey: "key"}, zap.NewNop(),
		WithBaseURL(srv.URL), WithCache(weatherCache))

	ctx := context.Background()
	assert.Equal(t, "light rain, 14.2°C", c.Lookup(ctx, "Izmir"))
	assert.Equal(t, "light rain, 14.2°C", c.Lookup(ctx, "Izmir"))
	assert.Equal(t, 1, calls)
}
