package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"barberbook/internal/pkg/config"
)

type SMTPSender struct {
	addr string
	from string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	from := strings.TrimSpace(cfg.SMTP.From)
	if from == "" {
		from = "no-reply@barberbook.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(cfg.SMTP.Host), strings.TrimSpace(cfg.SMTP.Port)),
		from: from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

// NopSender logs instead of delivering. Used when SMTP is disabled.
type NopSender struct{}

func NewNopSender() *NopSender {
	return &NopSender{}
}

func (n *NopSender) Send(to, subject, _ string) error {
	slog.Debug("mail delivery disabled, dropping message", "to", to, "subject", subject)
	return nil
}
