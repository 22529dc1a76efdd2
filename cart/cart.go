// Package cart holds the pre-order selection state: line items, shipping
// address and payment method. State transitions are pure reducers over the
// item list; the Store persists through an injected Storage port after
// every mutation, so a reloaded store always sees the last completed call.
package cart

import (
	"encoding/json"
	"fmt"

	"sweet-paradise/models"
)

const (
	itemsKey    = "cartItems"
	shippingKey = "shippingAddress"
	paymentKey  = "paymentMethod"

	DefaultPaymentMethod = "PayPal"
)

// Storage is the durable key-value port the store persists through.
type Storage interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, value []byte) error
	Delete(key string) error
}

// addItem merge-replaces by product id: adding a product already in the
// cart overwrites its entry (last write wins, quantity included) rather
// than incrementing it.
func addItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i, existing := range items {
		if existing.Product == item.Product {
			next := make([]models.CartItem, len(items))
			copy(next, items)
			next[i] = item
			return next
		}
	}
	next := make([]models.CartItem, 0, len(items)+1)
	next = append(next, items...)
	return append(next, item)
}

func removeItem(items []models.CartItem, productID int) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, existing := range items {
		if existing.Product != productID {
			next = append(next, existing)
		}
	}
	return next
}

type Store struct {
	Items           []models.CartItem
	ShippingAddress models.ShippingAddress
	PaymentMethod   string

	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{
		Items:         []models.CartItem{},
		PaymentMethod: DefaultPaymentMethod,
		storage:       storage,
	}
}

// Load rehydrates the store from storage. Missing keys leave the zero
// state in place; the payment method falls back to the default.
func (s *Store) Load() error {
	if raw, ok, err := s.storage.Read(itemsKey); err != nil {
		return fmt.Errorf("load cart items: %w", err)
	} else if ok {
		if err := json.Unmarshal(raw, &s.Items); err != nil {
			return fmt.Errorf("decode cart items: %w", err)
		}
	}

	if raw, ok, err := s.storage.Read(shippingKey); err != nil {
		return fmt.Errorf("load shipping address: %w", err)
	} else if ok {
		if err := json.Unmarshal(raw, &s.ShippingAddress); err != nil {
			return fmt.Errorf("decode shipping address: %w", err)
		}
	}

	if raw, ok, err := s.storage.Read(paymentKey); err != nil {
		return fmt.Errorf("load payment method: %w", err)
	} else if ok {
		if err := json.Unmarshal(raw, &s.PaymentMethod); err != nil {
			return fmt.Errorf("decode payment method: %w", err)
		}
	}
	if s.PaymentMethod == "" {
		s.PaymentMethod = DefaultPaymentMethod
	}
	return nil
}

func (s *Store) AddToCart(item models.CartItem) error {
	next := addItem(s.Items, item)
	if err := s.persistItems(next); err != nil {
		return err
	}
	s.Items = next
	return nil
}

func (s *Store) RemoveFromCart(productID int) error {
	next := removeItem(s.Items, productID)
	if err := s.persistItems(next); err != nil {
		return err
	}
	s.Items = next
	return nil
}

func (s *Store) SaveShippingAddress(addr models.ShippingAddress) error {
	raw, err := json.Marshal(addr)
	if err != nil {
		return err
	}
	if err := s.storage.Write(shippingKey, raw); err != nil {
		return fmt.Errorf("persist shipping address: %w", err)
	}
	s.ShippingAddress = addr
	return nil
}

func (s *Store) SavePaymentMethod(method string) error {
	raw, err := json.Marshal(method)
	if err != nil {
		return err
	}
	if err := s.storage.Write(paymentKey, raw); err != nil {
		return fmt.Errorf("persist payment method: %w", err)
	}
	s.PaymentMethod = method
	return nil
}

// ClearCart empties the items and removes the persisted entry. Shipping
// address and payment method survive for the next checkout.
func (s *Store) ClearCart() error {
	if err := s.storage.Delete(itemsKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.Items = []models.CartItem{}
	return nil
}

// TotalPrice is the sum of qty x price over the current items.
func (s *Store) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += float64(item.Qty) * item.Price
	}
	return total
}

func (s *Store) persistItems(items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.storage.Write(itemsKey, raw); err != nil {
		return fmt.Errorf("persist cart items: %w", err)
	}
	return nil
}
