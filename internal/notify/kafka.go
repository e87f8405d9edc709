package notify

import (
	"context"

	"github.com/okaya/airticket/internal/kafka"
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Kafka publishes events to the notifications topic; the worker binary
// consumes them and sends the emails.
type Kafka struct {
	producer Publisher
	topic    string
}

func NewKafka(producer Publisher, topic string) *Kafka {
	return &Kafka{producer: producer, topic: topic}
}

func (k *Kafka) Notify(ctx context.Context, event kafka.TicketEvent) error {
	return k.producer.Publish(ctx, k.topic, event.EventID, event)
}

var _ Notifier = (*Kafka)(nil)
