package model

import "time"

// Order status progression. Cancelled and Delivered are terminal; all
// transitions after creation are server-driven and the client only
// displays them.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment status values.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Address is the delivery address captured at checkout.
type Address struct {
	City          string `json:"city"`
	Pincode       string `json:"pincode"`
	StreetAddress string `json:"streetAddress"`
}

// OrderProduct is a line item: a product reference with a price/name
// snapshot taken at order time. The snapshot intentionally does not track
// later catalog changes.
type OrderProduct struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Order as returned by GET /api/orders.
type Order struct {
	ID            string         `json:"_id"`
	UserID        string         `json:"userId"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	Address       Address        `json:"address"`
	PhoneNumber   string         `json:"phoneNumber"`
	Amount        float64        `json:"amount"`
	Products      []OrderProduct `json:"products"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// OrderInput is the payload for POST /api/orders. The client always
// submits pending/pending; everything after that is server-driven.
type OrderInput struct {
	UserID        string         `json:"userId"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	Address       Address        `json:"address"`
	PhoneNumber   string         `json:"phoneNumber"`
	Amount        float64        `json:"amount"`
	Products      []OrderProduct `json:"products"`
}

// Terminal reports whether the status admits no further transitions.
func (o *Order) Terminal() bool {
	return o.Status == OrderDelivered || o.Status == OrderCancelled
}
