// Package mailer builds and delivers transactional emails.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/wneessen/go-mail"

	"curateurs-backoffice/internal/logger"
)

var (
	ErrMissingRecipient = errors.New("missing required parameters: 'to' and 'subject' are required")
	ErrInvalidRecipient = errors.New("invalid email address")
	ErrMissingBody      = errors.New("at least one of 'text' or 'html' content is required")
)

// Email is one outgoing message.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Validate checks that the message can be sent.
func (e Email) Validate() error {
	if e.To == "" || e.Subject == "" {
		return ErrMissingRecipient
	}
	if err := validation.Validate(e.To, is.EmailFormat); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecipient, e.To)
	}
	if e.Text == "" && e.HTML == "" {
		return ErrMissingBody
	}
	return nil
}

// Sender delivers emails.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// SSL selects implicit TLS (port 465 style); otherwise STARTTLS is used when offered.
	SSL     bool
	Timeout time.Duration
}

// SMTPSender sends emails through an authenticated SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &SMTPSender{cfg: cfg}
}

// Send validates e and delivers it in a single SMTP session.
func (s *SMTPSender) Send(ctx context.Context, e Email) error {
	if err := e.Validate(); err != nil {
		return err
	}

	msg, err := s.buildMessage(e)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoContext(ctx, "Email sent",
		slog.String("to", e.To),
		slog.String("subject", e.Subject),
	)
	return nil
}

func (s *SMTPSender) buildMessage(e Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	msg.Subject(e.Subject)

	switch {
	case e.Text != "" && e.HTML != "":
		msg.SetBodyString(mail.TypeTextPlain, e.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, e.HTML)
	case e.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, e.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, e.Text)
	}
	return msg, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return opts
}

// LogSender records emails instead of sending them. Used when SMTP is not configured.
type LogSender struct{}

// Send validates e and logs it.
func (LogSender) Send(ctx context.Context, e Email) error {
	if err := e.Validate(); err != nil {
		return err
	}
	logger.WarnContext(ctx, "SMTP not configured, email not sent",
		slog.String("to", e.To),
		slog.String("subject", e.Subject),
	)
	return nil
}
