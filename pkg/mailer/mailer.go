package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Sender represents an interface for sending emails.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending an email.
type SendParams struct {
	SendTo  string
	Subject string
	Body    string
}

// Config holds SMTP mailer configuration.
type Config struct {
	Host     string `env:"SMTP_HOST" envDefault:"localhost"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM" envDefault:"no-reply@ticketdesk.local"`
}

type smtpSender struct {
	cfg Config
}

// New creates an SMTP-backed Sender.
func New(cfg Config) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(ctx context.Context, params SendParams) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + params.SendTo,
		"Subject: " + params.Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		params.Body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{params.SendTo}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", params.SendTo, err)
	}
	return nil
}
