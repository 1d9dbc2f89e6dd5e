// Package mailer delivers transactional email for the contact and pricing
// forms over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is one outbound email. HTML carries the rendered body.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers a message and reports whether it was accepted by the
// provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP sends mail through a plain-auth SMTP relay.
type SMTP struct {
	cfg Config
}

// NewSMTP builds an SMTP sender from the given configuration.
func NewSMTP(cfg Config) *SMTP {
	return &SMTP{cfg: cfg}
}

// Send delivers a single HTML message. The context is consulted before
// dialing; net/smtp itself does not support cancellation mid-send.
func (m *SMTP) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("send mail: no recipients")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(addr, auth, m.cfg.From, msg.To, buildMIME(m.cfg.From, msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func buildMIME(from string, msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
