package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"clothes-share/middleware"
	"clothes-share/models"
	"clothes-share/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ItemController handles item listings: donor uploads, the customer
// catalog, and the NGO donations surface.
type ItemController struct {
	Items *store.ItemStore
	Users *store.UserStore
	NGOs  *store.NGORequestStore
}

// NewItemController creates a new ItemController.
func NewItemController(items *store.ItemStore, users *store.UserStore, ngos *store.NGORequestStore) *ItemController {
	return &ItemController{Items: items, Users: users, NGOs: ngos}
}

type createItemRequest struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Size          string   `json:"size"`
	Gender        string   `json:"gender"`
	Condition     string   `json:"condition"`
	OriginalPrice float64  `json:"originalPrice"`
	Description   string   `json:"description"`
	FreeForNGO    bool     `json:"freeForNGO"`
	Images        []string `json:"images"`
}

// CreateItem handles a donor uploading a new listing. The resale price is
// derived once here and never recomputed; the listing starts pending.
func (ic *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Type == "" || req.Size == "" || req.Gender == "" || req.Condition == "" {
		http.Error(w, "Please fill in all required fields", http.StatusBadRequest)
		return
	}
	if req.OriginalPrice <= 0 {
		http.Error(w, "Original price must be positive", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	donor, err := ic.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{models.PlaceholderImage}
	}

	item := models.Item{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Type:          req.Type,
		Size:          req.Size,
		Gender:        req.Gender,
		Condition:     req.Condition,
		OriginalPrice: req.OriginalPrice,
		Price:         models.ResalePrice(req.OriginalPrice),
		Description:   req.Description,
		FreeForNGO:    req.FreeForNGO,
		Donor:         donor.Name,
		DonorID:       donor.ID,
		Status:        models.StatusPending,
		Images:        images,
		CreatedAt:     time.Now(),
	}

	if err := ic.Items.Create(ctx, item); err != nil {
		http.Error(w, "Error uploading item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

// GetMyItems retrieves the donor's own listings along with their analytics.
func (ic *ItemController) GetMyItems(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := ic.Items.Query(ctx, store.ItemFilter{DonorID: claims.UserID, OrderBy: "createdAt"})
	if err != nil {
		http.Error(w, "Error fetching items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items": items,
		"stats": models.ComputeDonorStats(items),
	})
}

// GetProducts retrieves the customer catalog: approved paid listings,
// narrowed by the optional type/size/gender/maxPrice/search parameters.
func (ic *ItemController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	paid := false
	items, err := ic.Items.Query(ctx, store.ItemFilter{
		Status:     models.StatusApproved,
		FreeForNGO: &paid,
		OrderBy:    "createdAt",
	})
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	maxPrice, _ := strconv.Atoi(q.Get("maxPrice"))
	filtered := models.FilterCatalog(items, models.CatalogFilter{
		Type:     q.Get("type"),
		Size:     q.Get("size"),
		Gender:   q.Get("gender"),
		MaxPrice: maxPrice,
		Search:   q.Get("search"),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filtered)
}

// GetProductByID retrieves a single listing with its checkout breakdown.
func (ic *ItemController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := ic.Items.GetByID(ctx, params["id"])
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"item":   item,
		"totals": models.ComputeTotals([]models.Item{item}),
	})
}

// GetDonations retrieves the free listings available to a verified NGO.
// Unverified NGOs are told to finish verification first.
func (ic *ItemController) GetDonations(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Verification state lives on the request document; the copy on the
	// user profile is only a convenience mirror and can lag a moderation
	// decision.
	requests, err := ic.NGOs.Query(ctx, store.NGOFilter{UserID: claims.UserID})
	if err != nil {
		http.Error(w, "Error fetching verification status", http.StatusInternalServerError)
		return
	}
	if len(requests) == 0 || requests[0].Status != models.StatusApproved {
		http.Error(w, "Complete NGO verification to access free donations", http.StatusForbidden)
		return
	}

	free := true
	items, err := ic.Items.Query(ctx, store.ItemFilter{
		Status:     models.StatusApproved,
		FreeForNGO: &free,
		OrderBy:    "createdAt",
	})
	if err != nil {
		http.Error(w, "Error fetching donations", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
