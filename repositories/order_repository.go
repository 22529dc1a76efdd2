package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"sweet-paradise/config"
	"sweet-paradise/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Orders are immutable after creation apart from the status flags, so the
// line items and address are stored as JSONB snapshots of what the
// customer checked out with, not foreign keys into the live catalog.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	itemsJSON, err := json.Marshal(order.OrderItems)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	query := `
		INSERT INTO orders (user_id, order_items, shipping_address, payment_method,
		                    total_price, is_paid, paid_at, expected_delivery_at, is_delivered, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return config.DB.QueryRow(ctx, query,
		order.UserID, itemsJSON, addressJSON, order.PaymentMethod,
		order.TotalPrice, order.IsPaid, order.PaidAt, order.ExpectedDeliveryAt,
		order.IsDelivered, order.CreatedAt,
	).Scan(&order.ID)
}

const orderColumns = `o.id, o.user_id, o.order_items, o.shipping_address, o.payment_method,
	o.total_price, o.is_paid, o.paid_at, o.expected_delivery_at, o.is_delivered, o.created_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var itemsJSON, addressJSON []byte

	err := row.Scan(
		&o.ID, &o.UserID, &itemsJSON, &addressJSON, &o.PaymentMethod,
		&o.TotalPrice, &o.IsPaid, &o.PaidAt, &o.ExpectedDeliveryAt, &o.IsDelivered, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.OrderItems); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.id = $1
	`
	return scanOrder(config.DB.QueryRow(ctx, query, id))
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Order, int, error) {
	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}
