package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/okaya/airticket/config"
	"github.com/okaya/airticket/internal/kafka"
)

// Sender delivers booking notifications over SMTP submission with
// STARTTLS. Transport failures are logged and absorbed: notification
// delivery never feeds back into a booking outcome.
type Sender struct {
	cfg config.SMTPConfig
	log *zap.Logger
}

func NewSender(cfg config.SMTPConfig, log *zap.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Enabled reports whether the sender has everything it needs to reach
// the SMTP server.
func (s *Sender) Enabled() bool {
	return s.cfg.Enabled && s.cfg.FromAddress != "" && s.cfg.Password != ""
}

func (s *Sender) Notify(ctx context.Context, event kafka.TicketEvent) error {
	if !s.Enabled() {
		return nil
	}

	msg := s.buildMessage(event)
	auth := smtp.PlainAuth("", s.cfg.FromAddress, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(s.cfg.Addr(), auth, s.cfg.FromAddress, []string{event.Email}, msg); err != nil {
		// No retry: the booking already went through.
		s.log.Error("send email failed",
			zap.String("event_id", event.EventID),
			zap.String("recipient", event.Email),
			zap.Error(err))
		return nil
	}

	s.log.Info("email sent",
		zap.String("event_id", event.EventID),
		zap.String("recipient", event.Email))
	return nil
}

func (s *Sender) buildMessage(event kafka.TicketEvent) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.FromAddress)
	fmt.Fprintf(&b, "To: %s <%s>\r\n", event.Username, event.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", event.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")

	fmt.Fprintf(&b, `<html>
<body style="font-family: Arial, sans-serif;">
<div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd;">
<h2>%s</h2>
<p>Dear %s,</p>
<ul>
<li>National ID: %s</li>
<li>Departure: %s</li>
<li>Destination: %s</li>
<li>Price: %.2f</li>
<li>Weather: %s</li>
</ul>
<p style="color: red; font-weight: bold;">PNR: %s</p>
<p>Have a pleasant flight!</p>
</div>
</body>
</html>`,
		s.cfg.FromName,
		event.Username,
		event.NationalID,
		event.DepartureTime.Format("02.01.2006 15:04"),
		event.Destination,
		float64(event.PriceCents)/100,
		event.Weather,
		event.PNR)

	return []byte(b.String())
}
