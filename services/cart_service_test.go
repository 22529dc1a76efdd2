package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet-paradise/models"
)

func TestCartServiceMemoryFallbackPersistsBetweenCalls(t *testing.T) {
	svc := NewCartService(nil)

	_, err := svc.AddItem(7, models.CartItem{Product: 1, Name: "Fudge", Price: 5, Qty: 2})
	require.NoError(t, err)

	store, err := svc.GetCart(7)
	require.NoError(t, err)
	require.Len(t, store.Items, 1)
	assert.Equal(t, "Fudge", store.Items[0].Name)
	assert.Equal(t, 10.0, store.TotalPrice())
}

func TestCartServiceIsolatesUsers(t *testing.T) {
	svc := NewCartService(nil)

	_, err := svc.AddItem(7, models.CartItem{Product: 1, Name: "Fudge", Price: 5, Qty: 2})
	require.NoError(t, err)

	store, err := svc.GetCart(8)
	require.NoError(t, err)
	assert.Empty(t, store.Items)
}

func TestCartServiceClearRemovesItemsOnly(t *testing.T) {
	svc := NewCartService(nil)

	_, err := svc.AddItem(7, models.CartItem{Product: 1, Name: "Fudge", Price: 5, Qty: 2})
	require.NoError(t, err)
	_, err = svc.SavePaymentMethod(7, "Stripe")
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(7))

	store, err := svc.GetCart(7)
	require.NoError(t, err)
	assert.Empty(t, store.Items)
	assert.Equal(t, "Stripe", store.PaymentMethod)
}
