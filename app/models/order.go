package models

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
)

// rank orders the statuses along the one-way fulfilment path.
func (s OrderStatus) rank() int {
	switch s {
	case StatusProcessing:
		return 0
	case StatusShipped:
		return 1
	case StatusDelivered:
		return 2
	}
	return -1
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool { return s.rank() >= 0 }

// CanAdvanceTo reports whether moving from s to next is a legal transition.
// Transitions are monotonic and move one step at a time: Processing → Shipped
// → Delivered. Anything backward or skipping is rejected.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return s.Valid() && next.Valid() && next.rank() == s.rank()+1
}

// CartLine is one product plus the desired quantity.
// Inside a live cart the quantity is always >= 1; a line that would drop to
// zero is removed instead. Inside an order the line is a frozen snapshot.
type CartLine struct {
	Product  Product `bson:"product"  json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Total returns price × quantity for this line.
func (l CartLine) Total() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Order is a finalised purchase. Everything except Status is immutable once
// the order has been created; Items are deep copies of the cart lines at
// checkout time, so later cart mutation cannot rewrite history.
type Order struct {
	ID          string      `bson:"_id"          json:"id"`
	UserID      int         `bson:"user_id"      json:"userId"`
	Date        time.Time   `bson:"date"         json:"date"`
	Items       []CartLine  `bson:"items"        json:"items"`
	TotalAmount float64     `bson:"total_amount" json:"totalAmount"`
	Status      OrderStatus `bson:"status"       json:"status"`
}
