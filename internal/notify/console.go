package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/okaya/airticket/internal/kafka"
)

// Console writes one structured notification line per event. It is the
// fallback sink when email is disabled or unconfigured.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(_ context.Context, event kafka.TicketEvent) error {
	_, err := fmt.Fprintf(c.out, "[NOTIFICATION] %s | %s | %s | %s | PNR:%s | %s | %.2f\n",
		event.Subject,
		event.Username,
		event.DepartureTime.Format("02.01.2006 15:04"),
		event.Destination,
		event.PNR,
		event.Weather,
		float64(event.PriceCents)/100)
	return err
}

var _ Notifier = (*Console)(nil)
