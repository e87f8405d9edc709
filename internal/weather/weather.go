// Package weather looks up current conditions for a destination city.
// The lookup is strictly best-effort: any failure, timeout or
// misconfiguration yields a placeholder string, never an error.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/okaya/airticket/config"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Placeholder is returned whenever a real description is unavailable.
const Placeholder = "weather unavailable"

type Cache interface {
	GetWeather(ctx context.Context, city string) (string, error)
	SetWeather(ctx context.Context, city, description string) error
}

type Client struct {
	enabled bool
	apiKey  string
	baseURL string
	http    *http.Client
	cache   Cache
	log     *zap.Logger
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCache adds a read-through cache in front of the API.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func NewClient(cfg config.WeatherConfig, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		enabled: cfg.Enabled,
		apiKey:  cfg.APIKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Lookup fetches a short "description, temperature" line for city.
func (c *Client) Lookup(ctx context.Context, city string) string {
	if !c.enabled || c.apiKey == "" {
		return Placeholder
	}

	if c.cache != nil {
		if cached, err := c.cache.GetWeather(ctx, city); err == nil && cached != "" {
			return cached
		}
	}

	description, err := c.fetch(ctx, city)
	if err != nil {
		c.log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return Placeholder
	}

	if c.cache != nil {
		_ = c.cache.SetWeather(ctx, city, description)
	}
	return description
}

func (c *Client) fetch(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if len(body.Weather) == 0 {
		return "", fmt.Errorf("no weather data for %q", city)
	}

	return fmt.Sprintf("%s, %.1f°C", body.Weather[0].Description, body.Main.Temp), nil
}
