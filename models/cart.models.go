package models

import (
	"math"
	"time"
)

// Cart is a user's ordered collection of item snapshots, stored as a single
// document keyed by the owning user's id. Entries are full copies of the
// item at add time, not references; they go stale if the item later changes.
type Cart struct {
	UserID    string    `bson:"_id" json:"userId"`
	Items     []Item    `bson:"items" json:"items"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Contains reports whether an item with the given id is in the cart.
func (c *Cart) Contains(itemID string) bool {
	for _, item := range c.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// Add appends a snapshot of item to the cart. Adding an item that is
// already present is a no-op; Add returns false so the caller can surface a
// duplicate notice.
func (c *Cart) Add(item Item) bool {
	if c.Contains(item.ID) {
		return false
	}
	c.Items = append(c.Items, item)
	return true
}

// Remove filters out the entry with the given id. It returns false when no
// entry matched.
func (c *Cart) Remove(itemID string) bool {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Wishlist mirrors Cart but with toggle semantics for membership.
type Wishlist struct {
	UserID    string    `bson:"_id" json:"userId"`
	Items     []Item    `bson:"items" json:"items"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Contains reports whether an item with the given id is in the wishlist.
func (w *Wishlist) Contains(itemID string) bool {
	for _, item := range w.Items {
		if item.ID == itemID {
			return true
		}
	}
	return false
}

// Toggle adds the item when absent and removes it when present. It returns
// true when the item was added.
func (w *Wishlist) Toggle(item Item) bool {
	for i, existing := range w.Items {
		if existing.ID == item.ID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return false
		}
	}
	w.Items = append(w.Items, item)
	return true
}

// DeliveryFee is the fixed delivery charge applied at checkout.
const DeliveryFee = 50

// Totals is the derived checkout breakdown. Totals are never stored.
type Totals struct {
	ItemsTotal  int `json:"itemsTotal"`
	PlatformFee int `json:"platformFee"`
	DeliveryFee int `json:"deliveryFee"`
	FinalTotal  int `json:"finalTotal"`
}

// ComputeTotals derives the checkout breakdown for the given items: the sum
// of prices, a 10% platform fee, and the fixed delivery fee.
func ComputeTotals(items []Item) Totals {
	var t Totals
	for _, item := range items {
		t.ItemsTotal += item.Price
	}
	t.PlatformFee = int(math.Round(float64(t.ItemsTotal) * 0.10))
	t.DeliveryFee = DeliveryFee
	t.FinalTotal = t.ItemsTotal + t.PlatformFee + t.DeliveryFee
	return t
}
