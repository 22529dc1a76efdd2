package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet-paradise/models"
)

type fakeOrderRepo struct {
	created []models.Order
	nextID  int
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	f.nextID++
	order.ID = f.nextID
	f.created = append(f.created, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int) (*models.Order, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			order := f.created[i]
			return &order, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == userID {
			orders = append(orders, f.created[i])
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context, limit, offset int) ([]models.Order, int, error) {
	return f.created, len(f.created), nil
}

type fakeUserRepo struct {
	users map[int]models.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

type fakeIdempotencyStore struct {
	entries map[string]int
}

func (f *fakeIdempotencyStore) Get(ctx context.Context, scope, key string) (int, bool, error) {
	id, ok := f.entries[scope+"/"+key]
	return id, ok, nil
}

func (f *fakeIdempotencyStore) Set(ctx context.Context, scope, key string, orderID int) error {
	if f.entries == nil {
		f.entries = map[string]int{}
	}
	f.entries[scope+"/"+key] = orderID
	return nil
}

type fakeMailer struct {
	sent int
	err  error
}

func (f *fakeMailer) SendOrderConfirmation(toEmail string, order *models.Order) error {
	f.sent++
	return f.err
}

func validRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		OrderItems: []models.CartItem{
			{Product: 1, Name: "Chocolate Bar", Price: 10, Qty: 2},
		},
		ShippingAddress: models.ShippingAddress{
			Address: "1 Main St", City: "X", PostalCode: "000", Country: "Y",
		},
		PaymentMethod: "PayPal",
		TotalPrice:    20,
	}
}

func newTestService(repo *fakeOrderRepo, idem IdempotencyStore, mailer OrderMailer, now time.Time) *OrderService {
	users := &fakeUserRepo{users: map[int]models.User{
		7: {ID: 7, Name: "Demo User", Email: "demo@example.com"},
		8: {ID: 8, Name: "Other User", Email: "other@example.com"},
	}}
	svc := NewOrderService(repo, users, idem, mailer)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCreateOrderCheckoutScenario(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, now)

	order, created, err := svc.CreateOrder(context.Background(), 7, "a@b.c", "", validRequest())
	require.NoError(t, err)
	require.True(t, created)

	assert.Equal(t, 20.0, order.TotalPrice)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, now, *order.PaidAt)
	assert.False(t, order.IsDelivered)
	assert.Equal(t, now, order.CreatedAt)
	assert.Equal(t, now.Add(10*time.Minute), order.ExpectedDeliveryAt,
		"expected delivery must be exactly createdAt + the delivery window")
	require.Len(t, repo.created, 1)
}

func TestCreateOrderEmptyItemsPersistsNothing(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, time.Now())

	req := validRequest()
	req.OrderItems = nil

	_, _, err := svc.CreateOrder(context.Background(), 7, "", "", req)

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "No order items", vErr.Message)
	assert.Empty(t, repo.created)
}

func TestCreateOrderShippingAddressValidation(t *testing.T) {
	mutations := map[string]func(*models.CreateOrderRequest){
		"missing address": func(r *models.CreateOrderRequest) { r.ShippingAddress.Address = "" },
		"missing city":    func(r *models.CreateOrderRequest) { r.ShippingAddress.City = "" },
		"missing postal":  func(r *models.CreateOrderRequest) { r.ShippingAddress.PostalCode = "" },
		"missing country": func(r *models.CreateOrderRequest) { r.ShippingAddress.Country = "" },
		"missing payment": func(r *models.CreateOrderRequest) { r.PaymentMethod = "" },
		"zero quantity":   func(r *models.CreateOrderRequest) { r.OrderItems[0].Qty = 0 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			svc := newTestService(repo, nil, nil, time.Now())

			req := validRequest()
			mutate(&req)

			_, _, err := svc.CreateOrder(context.Background(), 7, "", "", req)

			var vErr *models.ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestCreateOrderRecomputesTotal(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, time.Now())

	// Omitted client total: server computes it.
	req := validRequest()
	req.TotalPrice = 0
	order, _, err := svc.CreateOrder(context.Background(), 7, "", "", req)
	require.NoError(t, err)
	assert.Equal(t, 20.0, order.TotalPrice)

	// Tampered client total: rejected.
	req = validRequest()
	req.TotalPrice = 1
	_, _, err = svc.CreateOrder(context.Background(), 7, "", "", req)
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Total price mismatch", vErr.Message)
}

func TestCreateOrderIdempotencyReplay(t *testing.T) {
	repo := &fakeOrderRepo{}
	idem := &fakeIdempotencyStore{}
	svc := newTestService(repo, idem, nil, time.Now())

	first, created, err := svc.CreateOrder(context.Background(), 7, "", "attempt-1", validRequest())
	require.NoError(t, err)
	require.True(t, created)

	replay, created, err := svc.CreateOrder(context.Background(), 7, "", "attempt-1", validRequest())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, replay.ID)
	assert.Len(t, repo.created, 1, "replay must not insert a second order")
}

func TestCreateOrderDistinctKeysCreateDistinctOrders(t *testing.T) {
	repo := &fakeOrderRepo{}
	idem := &fakeIdempotencyStore{}
	svc := newTestService(repo, idem, nil, time.Now())

	_, _, err := svc.CreateOrder(context.Background(), 7, "", "attempt-1", validRequest())
	require.NoError(t, err)
	_, _, err = svc.CreateOrder(context.Background(), 7, "", "attempt-2", validRequest())
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
}

func TestCreateOrderIdempotencyScopedPerUser(t *testing.T) {
	repo := &fakeOrderRepo{}
	idem := &fakeIdempotencyStore{}
	svc := newTestService(repo, idem, nil, time.Now())

	_, _, err := svc.CreateOrder(context.Background(), 7, "", "attempt-1", validRequest())
	require.NoError(t, err)
	_, created, err := svc.CreateOrder(context.Background(), 8, "", "attempt-1", validRequest())
	require.NoError(t, err)

	assert.True(t, created, "same key from another user is a new order")
	assert.Len(t, repo.created, 2)
}

func TestCreateOrderMailFailureDoesNotFailOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := newTestService(repo, nil, mailer, time.Now())

	_, created, err := svc.CreateOrder(context.Background(), 7, "a@b.c", "", validRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, mailer.sent)
}

func TestListOrdersForUserNewestFirst(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, time.Now())

	for i := 0; i < 3; i++ {
		_, _, err := svc.CreateOrder(context.Background(), 7, "", "", validRequest())
		require.NoError(t, err)
	}

	orders, err := svc.ListOrdersForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, 3, orders[0].ID, "most recent order first")
}

func TestGetOrderNotFound(t *testing.T) {
	svc := newTestService(&fakeOrderRepo{}, nil, nil, time.Now())

	_, err := svc.GetOrder(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetOrderResolvesOwner(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, time.Now())

	created, _, err := svc.CreateOrder(context.Background(), 7, "", "", validRequest())
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, order.User)
	assert.Equal(t, "Demo User", order.User.Name)
	assert.Equal(t, "demo@example.com", order.User.Email)
}

func TestGetOrderSurvivesMissingOwner(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, nil, nil, time.Now())

	created, _, err := svc.CreateOrder(context.Background(), 99, "", "", validRequest())
	require.NoError(t, err)

	order, err := svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, order.User)
}

type erroringIdempotencyStore struct{}

func (erroringIdempotencyStore) Get(ctx context.Context, scope, key string) (int, bool, error) {
	return 0, false, errors.New("redis: connection refused")
}

func (erroringIdempotencyStore) Set(ctx context.Context, scope, key string, orderID int) error {
	return errors.New("redis: connection refused")
}

func TestCreateOrderProceedsWhenIdempotencyStoreDown(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := newTestService(repo, erroringIdempotencyStore{}, nil, time.Now())

	order, created, err := svc.CreateOrder(context.Background(), 7, "", "attempt-1", validRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, order.ID)
	assert.Len(t, repo.created, 1)
}
