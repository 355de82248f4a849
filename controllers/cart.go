package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clothes-share/middleware"
	"clothes-share/models"
	"clothes-share/store"

	"github.com/gorilla/mux"
)

// CartController handles cart, wishlist, and checkout requests. Every
// mutation is a read-modify-write of the user's singleton document followed
// by a full replace.
type CartController struct {
	Carts     *store.CartStore
	Wishlists *store.WishlistStore
	Items     *store.ItemStore
}

// NewCartController creates a new CartController.
func NewCartController(carts *store.CartStore, wishlists *store.WishlistStore, items *store.ItemStore) *CartController {
	return &CartController{Carts: carts, Wishlists: wishlists, Items: items}
}

type cartResponse struct {
	Cart   models.Cart   `json:"cart"`
	Totals models.Totals `json:"totals"`
}

// GetCart retrieves the user's cart with the derived totals.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{Cart: cart, Totals: models.ComputeTotals(cart.Items)})
}

// AddToCart adds a snapshot of an approved listing to the user's cart.
// Adding an item that is already present is a no-op with a duplicate
// notice.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := cc.Items.GetByID(ctx, req.ItemID)
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	if item.Status != models.StatusApproved {
		http.Error(w, "Item is not available", http.StatusConflict)
		return
	}

	cart, err := cc.Carts.Get(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	if !cart.Add(item) {
		http.Error(w, "Item already in cart", http.StatusConflict)
		return
	}

	if err := cc.Carts.Save(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{Cart: cart, Totals: models.ComputeTotals(cart.Items)})
}

// RemoveFromCart removes a listing from the user's cart.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.Get(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "Error fetching cart", http.StatusInternalServerError)
		return
	}

	cart.Remove(params["itemId"])

	if err := cc.Carts.Save(ctx, cart); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{Cart: cart, Totals: models.ComputeTotals(cart.Items)})
}

// GetWishlist retrieves the user's wishlist.
func (cc *CartController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	wishlist, err := cc.Wishlists.Get(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wishlist)
}

// ToggleWishlist adds the listing when absent and removes it when present.
func (cc *CartController) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := cc.Items.GetByID(ctx, req.ItemID)
	if err != nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	wishlist, err := cc.Wishlists.Get(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	added := wishlist.Toggle(item)

	if err := cc.Wishlists.Save(ctx, wishlist); err != nil {
		http.Error(w, "Error updating wishlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"added":    added,
		"wishlist": wishlist,
	})
}

// Checkout returns the totals breakdown for the cart, or for a single
// listing when itemId is given (buy now). Payment itself happens outside
// this service.
func (cc *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ItemID string `json:"itemId"`
	}
	if r.Body != nil {
		// An empty body means a whole-cart checkout.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var items []models.Item
	if req.ItemID != "" {
		item, err := cc.Items.GetByID(ctx, req.ItemID)
		if err != nil {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		items = []models.Item{item}
	} else {
		cart, err := cc.Carts.Get(ctx, claims.UserID)
		if err != nil {
			http.Error(w, "Error fetching cart", http.StatusInternalServerError)
			return
		}
		items = cart.Items
	}

	if len(items) == 0 {
		http.Error(w, "Your cart is empty", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.ComputeTotals(items))
}
