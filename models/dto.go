package models

type CreateSweetRequest struct {
	Name     string  `json:"name" form:"name" binding:"required"`
	Category string  `json:"category" form:"category" binding:"required"`
	Price    float64 `json:"price" form:"price" binding:"min=0"`
	Quantity int     `json:"quantity" form:"quantity" binding:"min=0"`
	Image    string  `json:"image" form:"image"`
}

type UpdateSweetRequest struct {
	Name     string   `json:"name" form:"name"`
	Category string   `json:"category" form:"category"`
	Price    *float64 `json:"price" form:"price"`
	Quantity *int     `json:"quantity" form:"quantity"`
	Image    string   `json:"image" form:"image"`
}

type RestockRequest struct {
	Amount int `json:"amount" form:"amount"`
}

type CreateOrderRequest struct {
	OrderItems      []CartItem      `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      float64         `json:"totalPrice"`
}

type AddCartItemRequest struct {
	Product int     `json:"product" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Image   string  `json:"image"`
	Price   float64 `json:"price" binding:"min=0"`
	Qty     int     `json:"qty" binding:"required,min=1"`
}

type SavePaymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}
