package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/okaya/airticket/config"
	"github.com/okaya/airticket/internal/bootstrap"
	"github.com/okaya/airticket/internal/cache"
	"github.com/okaya/airticket/internal/email"
	"github.com/okaya/airticket/internal/kafka"
	"github.com/okaya/airticket/internal/notify"
	"github.com/okaya/airticket/internal/observability"
	"github.com/okaya/airticket/internal/registry"
	"github.com/okaya/airticket/internal/service/booking"
	"github.com/okaya/airticket/internal/service/flights"
	"github.com/okaya/airticket/internal/weather"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var weatherOpts []weather.Option
	if cfg.Redis.Enabled {
		weatherCache := cache.NewRedisCache(cfg.Redis, cfg.Weather.CacheTTL())
		defer weatherCache.Close()
		weatherOpts = append(weatherOpts, weather.WithCache(weatherCache))
	}
	weatherClient := weather.NewClient(cfg.Weather, logger, weatherOpts...)

	var sinks []notify.Notifier
	emailSender := email.NewSender(cfg.SMTP, logger)
	if emailSender.Enabled() {
		sinks = append(sinks, emailSender)
	} else {
		sinks = append(sinks, notify.NewConsole(os.Stdout))
	}
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		sinks = append(sinks, notify.NewKafka(producer, cfg.Kafka.NotificationsTopic))
	}
	notifier := notify.NewFanout(logger, sinks...)

	reg := registry.New()
	registry.Seed(reg)

	flightService := flights.NewFlightService(reg)
	bookingService := booking.NewBookingService(weatherClient, notifier, logger)

	router := bootstrap.NewRouter(reg, flightService, bookingService)
	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
