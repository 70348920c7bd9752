// Package mail sends plain-text email over SMTP. When no SMTP host is
// configured, messages are written to the log instead of the wire.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/adityakr/bazaari/config"
	"github.com/adityakr/bazaari/pkg/logger"
)

// Message is one outgoing email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer delivers messages.
type Mailer interface {
	Send(msg Message) error
}

// NewFromConfig returns an SMTP mailer when MAIL_HOST is set, otherwise a
// log mailer.
func NewFromConfig() Mailer {
	host := config.Get("MAIL_HOST", "")
	if host == "" {
		return logMailer{}
	}
	return &smtpMailer{
		addr: host + ":" + config.Get("MAIL_PORT", "587"),
		from: config.Get("MAIL_FROM", "no-reply@bazaari.local"),
		auth: smtp.PlainAuth("",
			config.Get("MAIL_USERNAME", ""),
			config.Get("MAIL_PASSWORD", ""),
			host,
		),
	}
}

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func (m *smtpMailer) Send(msg Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(msg.Body)

	return smtp.SendMail(m.addr, m.auth, m.from, msg.To, []byte(b.String()))
}

type logMailer struct{}

func (logMailer) Send(msg Message) error {
	logger.Info("mail (log driver)", "to", strings.Join(msg.To, ","), "subject", msg.Subject)
	return nil
}
