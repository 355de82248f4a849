package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clothes-share/middleware"
	"clothes-share/models"
	"clothes-share/session"
	"clothes-share/store"
	"clothes-share/utils"
)

func landingFor(role models.Role) string {
	return session.Landing(role)
}

// DashboardController serves the role-scoped dashboard payload. It runs a
// full session resolve per request, so the response always reflects the
// current store contents.
type DashboardController struct {
	Users  *store.UserStore
	Loader *session.Loader
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(users *store.UserStore, loader *session.Loader) *DashboardController {
	return &DashboardController{Users: users, Loader: loader}
}

type dashboardResponse struct {
	User        *models.User       `json:"user"`
	Landing     string             `json:"landing"`
	Cart        models.Cart        `json:"cart"`
	Wishlist    models.Wishlist    `json:"wishlist,omitempty"`
	Products    []models.Item      `json:"products,omitempty"`
	Items       []models.Item      `json:"items,omitempty"`
	Stats       *models.DonorStats `json:"stats,omitempty"`
	NGORequests []models.NGORequest `json:"ngoRequests,omitempty"`
}

// GetDashboard resolves the caller's session and returns the data their
// role's dashboard needs.
func (dc *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	user, err := dc.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if utils.IsNotFound(err) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error loading dashboard", http.StatusInternalServerError)
		return
	}

	var state session.State
	if err := dc.Loader.Resolve(ctx, &state, &user); err != nil {
		http.Error(w, "Error loading dashboard", http.StatusInternalServerError)
		return
	}

	resp := dashboardResponse{
		User:        state.User,
		Landing:     landingFor(user.Role),
		Cart:        state.Cart,
		Wishlist:    state.Wishlist,
		Products:    state.Products,
		Items:       state.UserItems,
		NGORequests: state.NGORequests,
	}
	if user.Role == models.RoleDonor {
		stats := models.ComputeDonorStats(state.UserItems)
		resp.Stats = &stats
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
