package cart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet-paradise/models"
)

func chocolateBar(qty int) models.CartItem {
	return models.CartItem{Product: 1, Name: "Chocolate Bar", Image: "/img/choc.png", Price: 10, Qty: qty}
}

func TestAddToCartAppends(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.AddToCart(models.CartItem{Product: 2, Name: "Fudge", Price: 5, Qty: 1}))

	assert.Len(t, store.Items, 2)
	assert.Equal(t, 25.0, store.TotalPrice())
}

func TestAddToCartReplacesSameProduct(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.AddToCart(chocolateBar(5)))

	require.Len(t, store.Items, 1)
	assert.Equal(t, 5, store.Items[0].Qty, "last write wins, not increment")
}

func TestAddToCartIdempotent(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.AddToCart(chocolateBar(2)))
	}

	require.Len(t, store.Items, 1)
	assert.Equal(t, 2, store.Items[0].Qty)
}

func TestRemoveThenAddRestoresSingleEntry(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.RemoveFromCart(1))
	assert.Empty(t, store.Items)

	require.NoError(t, store.AddToCart(chocolateBar(3)))
	require.Len(t, store.Items, 1)
	assert.Equal(t, 3, store.Items[0].Qty)
}

func TestRemoveFromCartUnknownProductIsNoop(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.RemoveFromCart(99))

	assert.Len(t, store.Items, 1)
}

func TestEveryMutationPersists(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.SaveShippingAddress(models.ShippingAddress{
		Address: "1 Main St", City: "X", PostalCode: "000", Country: "Y",
	}))
	require.NoError(t, store.SavePaymentMethod("Stripe"))

	reloaded := NewStore(storage)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, store.Items, reloaded.Items)
	assert.Equal(t, "1 Main St", reloaded.ShippingAddress.Address)
	assert.Equal(t, "Stripe", reloaded.PaymentMethod)
}

func TestClearCartRemovesPersistedItems(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)

	require.NoError(t, store.AddToCart(chocolateBar(2)))
	require.NoError(t, store.ClearCart())

	_, ok, err := storage.Read("cartItems")
	require.NoError(t, err)
	assert.False(t, ok, "persisted entry must be removed, not emptied")
	assert.Empty(t, store.Items)

	reloaded := NewStore(storage)
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.Items)
	assert.Equal(t, DefaultPaymentMethod, reloaded.PaymentMethod)
}

type failingStorage struct{ *MemoryStorage }

func (f failingStorage) Write(key string, value []byte) error {
	return errors.New("disk full")
}

func TestFailedPersistLeavesStateUntouched(t *testing.T) {
	store := NewStore(failingStorage{NewMemoryStorage()})

	err := store.AddToCart(chocolateBar(2))
	require.Error(t, err)
	assert.Empty(t, store.Items)
}

func TestLoadToleratesMissingKeys(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	require.NoError(t, store.Load())

	assert.Empty(t, store.Items)
	assert.Equal(t, DefaultPaymentMethod, store.PaymentMethod)
}

func TestLoadRejectsCorruptItems(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Write("cartItems", []byte("{not json")))

	store := NewStore(storage)
	assert.Error(t, store.Load())
}

func TestStoredItemsAreCanonicalJSON(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage)
	require.NoError(t, store.AddToCart(chocolateBar(2)))

	raw, ok, err := storage.Read("cartItems")
	require.NoError(t, err)
	require.True(t, ok)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(raw, &items))
	assert.Equal(t, store.Items, items)
}
