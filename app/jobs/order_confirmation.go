// Package jobs holds the background job handlers and their registrations.
package jobs

import (
	"context"
	"encoding/json"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/notifications"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/pkg/notification"
	"github.com/adityakr/bazaari/pkg/queue"
)

// OrderConfirmationJob is the queue name for post-checkout confirmation.
const OrderConfirmationJob = "order.confirmation"

type mailRecipient struct{ email string }

func (r mailRecipient) NotifyEmail() string { return r.email }

// RegisterOrderConfirmation binds the confirmation handler to the queue.
func RegisterOrderConfirmation(users *repositories.UserRepository, notifier *notification.Notifier) {
	queue.Register(OrderConfirmationJob, func(ctx context.Context, payload json.RawMessage) error {
		var order models.Order
		if err := json.Unmarshal(payload, &order); err != nil {
			return err
		}

		user, err := users.Find(ctx, order.UserID)
		if err != nil {
			return err
		}

		notifier.Send(mailRecipient{email: user.Email}, notifications.OrderPlaced{Order: order})
		return nil
	})
}
