// Package notification delivers user-facing notifications through one or
// more channels (currently mail).
package notification

import (
	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/mail"
)

// Notification describes what to tell a recipient.
type Notification interface {
	// Subject is the short headline of the notification.
	Subject() string
	// Body is the full message text.
	Body() string
}

// Recipient is anyone who can receive notifications.
type Recipient interface {
	NotifyEmail() string
}

// Notifier fans a notification out to its channels.
type Notifier struct {
	mailer mail.Mailer
}

// New builds a Notifier on the given mailer.
func New(mailer mail.Mailer) *Notifier {
	return &Notifier{mailer: mailer}
}

// Send delivers n to the recipient. Delivery failures are logged, not
// returned; notifications are best-effort.
func (nt *Notifier) Send(to Recipient, n Notification) {
	addr := to.NotifyEmail()
	if addr == "" {
		return
	}
	err := nt.mailer.Send(mail.Message{
		To:      []string{addr},
		Subject: n.Subject(),
		Body:    n.Body(),
	})
	if err != nil {
		logger.Error("notification delivery failed", "to", addr, "subject", n.Subject(), "error", err)
	}
}
