// Package notifications defines the user-facing notifications the shop
// sends.
package notifications

import (
	"fmt"
	"strings"

	"github.com/adityakr/bazaari/app/models"
)

// OrderPlaced confirms a successful checkout.
type OrderPlaced struct {
	Order models.Order
}

func (n OrderPlaced) Subject() string {
	return fmt.Sprintf("Order confirmed — %s", n.Order.ID)
}

func (n OrderPlaced) Body() string {
	var b strings.Builder
	b.WriteString("Thanks for your order!\n\n")
	for _, line := range n.Order.Items {
		fmt.Fprintf(&b, "  %d × %s — $%.2f\n", line.Quantity, line.Product.Name, line.Total())
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", n.Order.TotalAmount)
	fmt.Fprintf(&b, "Status: %s\n", n.Order.Status)
	return b.String()
}
