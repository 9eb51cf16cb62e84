package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
)

// SMTPSender delivers mail through an SMTP relay.
type SMTPSender struct {
	host string
	from string
	opts []mail.Option
}

// NewSMTPSender creates a sender for host:port. Authentication is used only when username is set.
// STARTTLS is used when the relay offers it.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}
	return &SMTPSender{host: host, from: from, opts: opts}
}

// Send performs one SMTP transaction. The context bounds the whole exchange.
// Each call uses its own client so dispatcher workers never share a connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMessage(s.from, msg, time.Now())
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMessage assembles a plain text UTF-8 message. Header encoding is left to go-mail.
func buildMessage(from string, msg Message, now time.Time) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDateWithValue(now)
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// LogSender writes messages to the log instead of sending them. Used when no relay is configured.
// The body carries live activation and reset links, so it is only logged at debug level.
type LogSender struct{}

// Send logs the message.
func (LogSender) Send(ctx context.Context, msg Message) error {
	logger.Log.Infow("mail (log only)", "to", msg.To, "subject", msg.Subject)
	logger.Log.Debugw("mail body (log only)", "to", msg.To, "body", msg.Body)
	return nil
}
