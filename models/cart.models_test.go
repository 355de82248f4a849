package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddIsIdempotent(t *testing.T) {
	cart := Cart{UserID: "u1"}
	item := Item{ID: "prod_1", Name: "Vintage Denim Jacket", Price: 750}

	assert.True(t, cart.Add(item))
	assert.Len(t, cart.Items, 1)

	// Second add with the same id is a no-op.
	assert.False(t, cart.Add(item))
	assert.Len(t, cart.Items, 1)
	assert.True(t, cart.Contains("prod_1"))
}

func TestCartRemove(t *testing.T) {
	cart := Cart{UserID: "u1", Items: []Item{
		{ID: "prod_1", Price: 750},
		{ID: "prod_2", Price: 600},
	}}

	assert.True(t, cart.Remove("prod_1"))
	assert.Len(t, cart.Items, 1)
	assert.False(t, cart.Contains("prod_1"))

	assert.False(t, cart.Remove("prod_1"))
	assert.Len(t, cart.Items, 1)
}

func TestWishlistToggleInvolution(t *testing.T) {
	wishlist := Wishlist{UserID: "u1"}
	item := Item{ID: "prod_1", Price: 750}

	assert.True(t, wishlist.Toggle(item))
	assert.True(t, wishlist.Contains("prod_1"))

	assert.False(t, wishlist.Toggle(item))
	assert.False(t, wishlist.Contains("prod_1"))
	assert.Empty(t, wishlist.Items)

	// Toggling twice restores the original membership with other entries
	// untouched.
	other := Item{ID: "prod_2", Price: 600}
	wishlist.Toggle(other)
	wishlist.Toggle(item)
	wishlist.Toggle(item)
	assert.True(t, wishlist.Contains("prod_2"))
	assert.False(t, wishlist.Contains("prod_1"))
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals([]Item{
		{ID: "prod_1", Price: 750},
		{ID: "prod_2", Price: 600},
	})

	assert.Equal(t, 1350, totals.ItemsTotal)
	assert.Equal(t, 135, totals.PlatformFee)
	assert.Equal(t, 50, totals.DeliveryFee)
	assert.Equal(t, 1535, totals.FinalTotal)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, 0, totals.ItemsTotal)
	assert.Equal(t, 0, totals.PlatformFee)
	assert.Equal(t, 50, totals.DeliveryFee)
	assert.Equal(t, 50, totals.FinalTotal)
}
