// Package notify fans booking notifications out to the configured
// sinks: a console line, SMTP email, or a kafka topic consumed by the
// worker binary. Sink failures never reach the booking flow.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/okaya/airticket/internal/kafka"
)

type Notifier interface {
	Notify(ctx context.Context, event kafka.TicketEvent) error
}

// Fanout dispatches an event to every sink, logging failures and moving
// on. Its own Notify never fails.
type Fanout struct {
	sinks []Notifier
	log   *zap.Logger
}

func NewFanout(log *zap.Logger, sinks ...Notifier) *Fanout {
	return &Fanout{sinks: sinks, log: log}
}

func (f *Fanout) Notify(ctx context.Context, event kafka.TicketEvent) error {
	for _, sink := range f.sinks {
		if err := sink.Notify(ctx, event); err != nil {
			f.log.Warn("notification sink failed",
				zap.String("event_id", event.EventID),
				zap.Error(err))
		}
	}
	return nil
}

var _ Notifier = (*Fanout)(nil)
