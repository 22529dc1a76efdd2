package models

// CartItem is a selected sweet with its quantity. A cart holds at most one
// entry per product id; an order snapshots the items as-is at checkout.
type CartItem struct {
	Product int     `json:"product"`
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Price   float64 `json:"price"`
	Qty     int     `json:"qty"`
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}
