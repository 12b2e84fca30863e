package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// connect timeout for outbound SMTP
const smtpTimeout = 30 * time.Second

// Mailer sends plain-text notification mail
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config holds SMTP delivery configuration
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type smtpMailer struct {
	cfg Config
}

// New creates an SMTP mailer using STARTTLS with TLS 1.2 or newer
func New(cfg Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12, ServerName: m.cfg.Host}),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender); err != nil {
		return fmt.Errorf("smtp sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
