package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/okaya/airticket/config"
	"github.com/okaya/airticket/internal/email"
	"github.com/okaya/airticket/internal/kafka"
	"github.com/okaya/airticket/internal/notify"
	"github.com/okaya/airticket/internal/observability"
)

// The worker drains the notifications topic and delivers the emails the
// booking process published instead of sending inline.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled {
		log.Fatal("kafka transport is disabled; nothing to consume")
	}

	logger, err := observability.NewLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	var sink notify.Notifier
	emailSender := email.NewSender(cfg.SMTP, logger)
	if emailSender.Enabled() {
		sink = emailSender
	} else {
		sink = notify.NewConsole(os.Stdout)
	}

	logger.Info("notification worker started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.NotificationsTopic))

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.TicketEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("decode event failed", zap.Error(err))
			return nil
		}
		return sink.Notify(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumer stopped", zap.Error(err))
	}
}
