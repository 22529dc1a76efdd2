package models

import "time"

// DeliveryWindow is the fixed interval between order creation and the
// expected delivery time shown to the customer.
const DeliveryWindow = 10 * time.Minute

type Order struct {
	ID                 int             `json:"id"`
	UserID             int             `json:"userId"`
	OrderItems         []CartItem      `json:"orderItems"`
	ShippingAddress    ShippingAddress `json:"shippingAddress"`
	PaymentMethod      string          `json:"paymentMethod"`
	TotalPrice         float64         `json:"totalPrice"`
	IsPaid             bool            `json:"isPaid"`
	PaidAt             *time.Time      `json:"paidAt,omitempty"`
	ExpectedDeliveryAt time.Time       `json:"expectedDeliveryAt"`
	IsDelivered        bool            `json:"isDelivered"`
	CreatedAt          time.Time       `json:"createdAt"`

	// Populated on single-order lookups only.
	User *User `json:"user,omitempty"`
}
