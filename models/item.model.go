package models

import (
	"math"
	"strings"
	"time"
)

// Status is the moderation state of an item or NGO request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// CanTransition reports whether a moderation transition is allowed.
// Approved and rejected are terminal.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

// PlaceholderImage is substituted when a donor uploads no photos.
const PlaceholderImage = "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400"

// Item is a donated clothing listing.
type Item struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Type          string    `bson:"type" json:"type"`
	Size          string    `bson:"size" json:"size"`
	Gender        string    `bson:"gender" json:"gender"`
	Condition     string    `bson:"condition" json:"condition"`
	OriginalPrice float64   `bson:"originalPrice" json:"originalPrice"`
	Price         int       `bson:"price" json:"price"`
	Description   string    `bson:"description" json:"description"`
	FreeForNGO    bool      `bson:"freeForNGO" json:"freeForNGO"`
	Donor         string    `bson:"donor" json:"donor"`
	DonorID       string    `bson:"donorId" json:"donorId"`
	Status        Status    `bson:"status" json:"status"`
	Images        []string  `bson:"images" json:"images"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// ResalePrice derives the listing price from the original price. The price
// is computed once at creation and never recomputed.
func ResalePrice(originalPrice float64) int {
	return int(math.Round(originalPrice * 0.25))
}

// CatalogFilter narrows the customer product catalog. Zero-valued fields
// are no-ops; present fields narrow the result additively.
type CatalogFilter struct {
	Type     string
	Size     string
	Gender   string
	MaxPrice int
	Search   string
}

// FilterCatalog applies f to items and returns the matching subset.
func FilterCatalog(items []Item, f CatalogFilter) []Item {
	filtered := []Item{}
	term := strings.ToLower(f.Search)
	for _, item := range items {
		if f.Type != "" && item.Type != f.Type {
			continue
		}
		if f.Size != "" && item.Size != f.Size {
			continue
		}
		if f.Gender != "" && item.Gender != f.Gender {
			continue
		}
		if f.MaxPrice > 0 && item.Price > f.MaxPrice {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) &&
			!strings.Contains(strings.ToLower(item.Type), term) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// DonorStats are a donor's aggregate figures, recomputed by a full scan of
// the donor's items on every reload.
type DonorStats struct {
	TotalItems    int `json:"totalItems"`
	ApprovedItems int `json:"approvedItems"`
	FreeItems     int `json:"freeItems"`
	TotalEarnings int `json:"totalEarnings"`
}

// ComputeDonorStats derives donor analytics from the given items. Earnings
// count approved items that are not free for NGOs.
func ComputeDonorStats(items []Item) DonorStats {
	var stats DonorStats
	stats.TotalItems = len(items)
	for _, item := range items {
		if item.Status == StatusApproved {
			stats.ApprovedItems++
			if !item.FreeForNGO {
				stats.TotalEarnings += item.Price
			}
		}
		if item.FreeForNGO {
			stats.FreeItems++
		}
	}
	return stats
}

// AdminOverview is the administrator's aggregate view of the platform.
type AdminOverview struct {
	TotalItems   int `json:"totalItems"`
	PendingItems int `json:"pendingItems"`
	PendingNGOs  int `json:"pendingNgos"`
	ApprovedNGOs int `json:"approvedNgos"`
}

// ComputeAdminOverview recomputes platform-wide counts by a linear scan of
// the currently loaded sets.
func ComputeAdminOverview(items []Item, ngos []NGORequest) AdminOverview {
	var o AdminOverview
	o.TotalItems = len(items)
	for _, item := range items {
		if item.Status == StatusPending {
			o.PendingItems++
		}
	}
	for _, ngo := range ngos {
		switch ngo.Status {
		case StatusPending:
			o.PendingNGOs++
		case StatusApproved:
			o.ApprovedNGOs++
		}
	}
	return o
}
