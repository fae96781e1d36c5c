// Package mail delivers plain-text messages over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/heartmarshall/repairshop-backend/internal/config"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// Sender delivers one message and returns the Message-ID it was sent with.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) (string, error)
}

// New returns an SMTP sender when cfg names a host and a Disabled sender
// otherwise.
func New(cfg config.MailConfig, log *slog.Logger) (Sender, error) {
	if !cfg.Enabled() {
		log.Warn("mail disabled: MAIL_HOST is empty")
		return Disabled{}, nil
	}
	return NewSMTPSender(cfg, log)
}

// SMTPSender sends mail through a single configured SMTP relay.
// A new connection is opened per message.
type SMTPSender struct {
	client *gomail.Client
	from   string
	log    *slog.Logger
}

// NewSMTPSender builds an SMTPSender from cfg. The connection is not opened
// until the first Send.
func NewSMTPSender(cfg config.MailConfig, log *slog.Logger) (*SMTPSender, error) {
	opts := []gomail.Option{gomail.WithPort(cfg.Port)}
	if cfg.SendTimeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.SendTimeout))
	}

	switch strings.ToLower(cfg.TLS) {
	case config.MailTLSSSL:
		opts = append(opts, gomail.WithSSL())
	case config.MailTLSStartTLS:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	case config.MailTLSNone:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	default:
		return nil, fmt.Errorf("mail: unknown tls mode %q", cfg.TLS)
	}

	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: new client: %w", err)
	}

	return &SMTPSender{
		client: client,
		from:   cfg.FromAddress(),
		log:    log.With("component", "mail", "host", cfg.Host),
	}, nil
}

// Send delivers a text/plain message to recipient. Address and transport
// failures are reported as domain.ErrMailDelivery.
func (s *SMTPSender) Send(ctx context.Context, recipient, subject, body string) (string, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return "", fmt.Errorf("%w: sender %q: %v", domain.ErrMailDelivery, s.from, err)
	}
	if err := msg.To(recipient); err != nil {
		return "", fmt.Errorf("%w: recipient %q: %v", domain.ErrMailDelivery, recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	msg.SetMessageID()

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		s.log.Error("mail delivery failed", slog.String("to", recipient), slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	id := msg.GetMessageID()
	s.log.Info("mail sent", slog.String("to", recipient), slog.String("message_id", id))
	return id, nil
}

// Disabled is the Sender used when no SMTP host is configured.
type Disabled struct{}

// Send always fails with domain.ErrMailDisabled.
func (Disabled) Send(context.Context, string, string, string) (string, error) {
	return "", domain.ErrMailDisabled
}
