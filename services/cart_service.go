package services

import (
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"sweet-paradise/cart"
	"sweet-paradise/models"
)

// Carts sit around at most this long between visits before Redis drops
// them.
const cartTTL = 7 * 24 * time.Hour

// CartService hands out a per-user cart store backed by Redis. Without a
// Redis client carts fall back to process memory, which is enough for
// development but does not survive a restart.
type CartService struct {
	redisClient *redis.Client

	mu     sync.Mutex
	memory map[int]*cart.MemoryStorage
}

func NewCartService(redisClient *redis.Client) *CartService {
	return &CartService{
		redisClient: redisClient,
		memory:      map[int]*cart.MemoryStorage{},
	}
}

func (s *CartService) storeFor(userID int) (*cart.Store, error) {
	var storage cart.Storage
	if s.redisClient != nil {
		storage = cart.NewRedisStorage(s.redisClient, "cart:"+strconv.Itoa(userID), cartTTL)
	} else {
		s.mu.Lock()
		mem, ok := s.memory[userID]
		if !ok {
			mem = cart.NewMemoryStorage()
			s.memory[userID] = mem
		}
		s.mu.Unlock()
		storage = mem
	}

	store := cart.NewStore(storage)
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CartService) GetCart(userID int) (*cart.Store, error) {
	return s.storeFor(userID)
}

func (s *CartService) AddItem(userID int, item models.CartItem) (*cart.Store, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	if err := store.AddToCart(item); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CartService) RemoveItem(userID, productID int) (*cart.Store, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	if err := store.RemoveFromCart(productID); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CartService) SaveShippingAddress(userID int, addr models.ShippingAddress) (*cart.Store, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	if err := store.SaveShippingAddress(addr); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CartService) SavePaymentMethod(userID int, method string) (*cart.Store, error) {
	store, err := s.storeFor(userID)
	if err != nil {
		return nil, err
	}
	if err := store.SavePaymentMethod(method); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CartService) ClearCart(userID int) error {
	store, err := s.storeFor(userID)
	if err != nil {
		return err
	}
	return store.ClearCart()
}
