package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResalePrice(t *testing.T) {
	assert.Equal(t, 750, ResalePrice(3000))
	assert.Equal(t, 600, ResalePrice(2400))
	assert.Equal(t, 0, ResalePrice(0))
	// Rounds to nearest rather than truncating.
	assert.Equal(t, 25, ResalePrice(99))
	assert.Equal(t, 25, ResalePrice(101))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusApproved))
	assert.True(t, CanTransition(StatusPending, StatusRejected))

	// Approved and rejected are terminal.
	assert.False(t, CanTransition(StatusApproved, StatusPending))
	assert.False(t, CanTransition(StatusApproved, StatusRejected))
	assert.False(t, CanTransition(StatusRejected, StatusPending))
	assert.False(t, CanTransition(StatusRejected, StatusApproved))

	// Pending cannot loop back to pending.
	assert.False(t, CanTransition(StatusPending, StatusPending))
}

func TestFilterCatalog(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "Vintage Denim Jacket", Type: "jacket", Size: "M", Gender: "unisex", Price: 750, Description: "classic blue denim"},
		{ID: "2", Name: "Floral Summer Dress", Type: "dress", Size: "S", Gender: "female", Price: 600, Description: "light and airy"},
		{ID: "3", Name: "Formal Shirt", Type: "shirt", Size: "M", Gender: "male", Price: 300, Description: "office wear"},
	}

	assert.Len(t, FilterCatalog(items, CatalogFilter{}), 3)
	assert.Len(t, FilterCatalog(items, CatalogFilter{Type: "dress"}), 1)
	assert.Len(t, FilterCatalog(items, CatalogFilter{Size: "M"}), 2)

	// Filters narrow additively.
	assert.Len(t, FilterCatalog(items, CatalogFilter{Size: "M", MaxPrice: 500}), 1)
	assert.Empty(t, FilterCatalog(items, CatalogFilter{Size: "M", MaxPrice: 500, Gender: "unisex"}))

	// Search matches name, description, or type, case-insensitively.
	assert.Len(t, FilterCatalog(items, CatalogFilter{Search: "denim"}), 1)
	assert.Len(t, FilterCatalog(items, CatalogFilter{Search: "SHIRT"}), 1)
	assert.Len(t, FilterCatalog(items, CatalogFilter{Search: "office"}), 1)
}

func TestComputeDonorStats(t *testing.T) {
	items := []Item{
		{ID: "1", Status: StatusApproved, Price: 750},
		{ID: "2", Status: StatusApproved, Price: 600, FreeForNGO: true},
		{ID: "3", Status: StatusPending, Price: 300},
		{ID: "4", Status: StatusRejected, Price: 200},
	}

	stats := ComputeDonorStats(items)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.ApprovedItems)
	assert.Equal(t, 1, stats.FreeItems)
	// Free-for-NGO items earn nothing even when approved.
	assert.Equal(t, 750, stats.TotalEarnings)
}

func TestComputeAdminOverview(t *testing.T) {
	items := []Item{
		{ID: "1", Status: StatusApproved},
		{ID: "2", Status: StatusPending},
		{ID: "3", Status: StatusPending},
	}
	ngos := []NGORequest{
		{ID: "n1", Status: StatusPending},
		{ID: "n2", Status: StatusApproved},
		{ID: "n3", Status: StatusRejected},
	}

	o := ComputeAdminOverview(items, ngos)
	assert.Equal(t, 3, o.TotalItems)
	assert.Equal(t, 2, o.PendingItems)
	assert.Equal(t, 1, o.PendingNGOs)
	assert.Equal(t, 1, o.ApprovedNGOs)
}
