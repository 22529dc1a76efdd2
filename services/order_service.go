package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"time"

	"sweet-paradise/models"
)

type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Order, int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type IdempotencyStore interface {
	Get(ctx context.Context, scope, key string) (int, bool, error)
	Set(ctx context.Context, scope, key string, orderID int) error
}

type OrderMailer interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

type OrderService struct {
	orderRepo   OrderRepo
	userRepo    UserRepo
	idempotency IdempotencyStore
	mailer      OrderMailer
	now         func() time.Time
}

// NewOrderService wires the order flow. idempotency and mailer may be nil:
// without Redis duplicate submissions are not deduplicated, and without
// SMTP no confirmation mail goes out. Both degradations are logged once
// at startup, not per request.
func NewOrderService(orderRepo OrderRepo, userRepo UserRepo, idempotency IdempotencyStore, mailer OrderMailer) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		idempotency: idempotency,
		mailer:      mailer,
		now:         time.Now,
	}
}

// CreateOrder turns a cart snapshot into a persisted order. Payment is
// simulated as instantly successful, and the expected delivery time is a
// fixed window from creation. The returned bool is false when an
// idempotency-key replay resolved to an already-created order.
func (s *OrderService) CreateOrder(ctx context.Context, userID int, userEmail, idempotencyKey string, req models.CreateOrderRequest) (*models.Order, bool, error) {
	if len(req.OrderItems) == 0 {
		return nil, false, models.NewValidationError("No order items")
	}
	for _, item := range req.OrderItems {
		if item.Qty < 1 {
			return nil, false, models.NewValidationError("Order item quantity must be at least 1")
		}
		if item.Price < 0 {
			return nil, false, models.NewValidationError("Order item price must not be negative")
		}
	}
	if err := validateShippingAddress(req.ShippingAddress); err != nil {
		return nil, false, err
	}
	if req.PaymentMethod == "" {
		return nil, false, models.NewValidationError("Payment method is required")
	}

	// The total is always recomputed here; the client-sent value is only
	// cross-checked so a tampered price fails loudly instead of being
	// silently stored.
	total := 0.0
	for _, item := range req.OrderItems {
		total += float64(item.Qty) * item.Price
	}
	total = math.Round(total*100) / 100
	if req.TotalPrice != 0 && math.Abs(req.TotalPrice-total) > 0.005 {
		return nil, false, models.NewValidationError("Total price mismatch")
	}

	scope := strconv.Itoa(userID)
	if idempotencyKey != "" && s.idempotency != nil {
		if existingID, ok, err := s.idempotency.Get(ctx, scope, idempotencyKey); err != nil {
			log.Printf("Idempotency lookup failed for key %s, proceeding without dedup: %v", idempotencyKey, err)
		} else if ok {
			existing, err := s.GetOrder(ctx, existingID)
			if err == nil {
				return existing, false, nil
			}
			log.Printf("Idempotency key %s points at missing order %d, creating anew", idempotencyKey, existingID)
		}
	}

	createdAt := s.now()
	paidAt := createdAt
	order := &models.Order{
		UserID:             userID,
		OrderItems:         req.OrderItems,
		ShippingAddress:    req.ShippingAddress,
		PaymentMethod:      req.PaymentMethod,
		TotalPrice:         total,
		IsPaid:             true,
		PaidAt:             &paidAt,
		ExpectedDeliveryAt: createdAt.Add(models.DeliveryWindow),
		IsDelivered:        false,
		CreatedAt:          createdAt,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, false, err
	}

	if idempotencyKey != "" && s.idempotency != nil {
		if err := s.idempotency.Set(ctx, scope, idempotencyKey, order.ID); err != nil {
			log.Printf("Failed to record idempotency key for order %d: %v", order.ID, err)
		}
	}

	if s.mailer != nil && userEmail != "" {
		if err := s.mailer.SendOrderConfirmation(userEmail, order); err != nil {
			log.Printf("Failed to send confirmation for order %d: %v", order.ID, err)
		}
	}

	return order, true, nil
}

// GetOrder resolves the owning user's name and email along with the
// order. An order whose owner row has gone missing still comes back,
// just without the populated user.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		log.Printf("Order %d references missing user %d", order.ID, order.UserID)
		return order, nil
	}
	order.User = &models.User{ID: user.ID, Name: user.Name, Email: user.Email}
	return order, nil
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *OrderService) ListAllOrders(ctx context.Context, page, limit int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return s.orderRepo.ListAll(ctx, limit, (page-1)*limit)
}

func validateShippingAddress(addr models.ShippingAddress) error {
	switch {
	case addr.Address == "":
		return models.NewValidationError("Shipping address is required")
	case addr.City == "":
		return models.NewValidationError("Shipping city is required")
	case addr.PostalCode == "":
		return models.NewValidationError("Shipping postal code is required")
	case addr.Country == "":
		return models.NewValidationError("Shipping country is required")
	}
	return nil
}
