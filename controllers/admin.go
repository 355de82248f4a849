package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clothes-share/models"
	"clothes-share/store"
	"clothes-share/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// AdminController handles moderation of donated items and NGO
// verification requests.
type AdminController struct {
	Items *store.ItemStore
	NGOs  *store.NGORequestStore
	Email *utils.EmailService
}

// NewAdminController creates a new AdminController.
func NewAdminController(items *store.ItemStore, ngos *store.NGORequestStore, email *utils.EmailService) *AdminController {
	return &AdminController{Items: items, NGOs: ngos, Email: email}
}

func (ac *AdminController) overview(ctx context.Context) (models.AdminOverview, error) {
	items, err := ac.Items.Query(ctx, store.ItemFilter{OrderBy: "createdAt"})
	if err != nil {
		return models.AdminOverview{}, err
	}
	requests, err := ac.NGOs.Query(ctx, store.NGOFilter{OrderBy: "submittedAt"})
	if err != nil {
		return models.AdminOverview{}, err
	}
	return models.ComputeAdminOverview(items, requests), nil
}

// Overview returns aggregate platform counts alongside the full item
// and request listings.
func (ac *AdminController) Overview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	items, err := ac.Items.Query(ctx, store.ItemFilter{OrderBy: "createdAt"})
	if err != nil {
		http.Error(w, "Error fetching items", http.StatusInternalServerError)
		return
	}
	requests, err := ac.NGOs.Query(ctx, store.NGOFilter{OrderBy: "submittedAt"})
	if err != nil {
		http.Error(w, "Error fetching NGO requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"overview":    models.ComputeAdminOverview(items, requests),
		"items":       items,
		"ngoRequests": requests,
	})
}

// ListItems returns all items, optionally narrowed by ?status= and ?type=.
func (ac *AdminController) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	filter := store.ItemFilter{OrderBy: "createdAt"}
	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = models.Status(s)
	}

	items, err := ac.Items.Query(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching items", http.StatusInternalServerError)
		return
	}
	if t := r.URL.Query().Get("type"); t != "" {
		items = models.FilterCatalog(items, models.CatalogFilter{Type: t})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// ListNGOs returns all NGO verification requests, optionally narrowed
// by ?status=.
func (ac *AdminController) ListNGOs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	filter := store.NGOFilter{OrderBy: "submittedAt"}
	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = models.Status(s)
	}

	requests, err := ac.NGOs.Query(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching NGO requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// decideItem moves an item out of pending. Decisions are terminal, so a
// second decision on the same item is a conflict, not a re-decision.
func (ac *AdminController) decideItem(w http.ResponseWriter, r *http.Request, to models.Status) {
	itemID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	item, err := ac.Items.GetByID(ctx, itemID)
	if err != nil {
		if utils.IsNotFound(err) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching item", http.StatusInternalServerError)
		return
	}
	if !models.CanTransition(item.Status, to) {
		http.Error(w, "Item has already been reviewed", http.StatusConflict)
		return
	}

	if err := ac.Items.UpdateStatus(ctx, itemID, to); err != nil {
		http.Error(w, "Error updating item", http.StatusInternalServerError)
		return
	}

	logrus.WithFields(logrus.Fields{
		"item":   itemID,
		"status": to,
	}).Info("Item reviewed")

	overview, err := ac.overview(ctx)
	if err != nil {
		http.Error(w, "Error refreshing overview", http.StatusInternalServerError)
		return
	}
	item.Status = to

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"item":     item,
		"overview": overview,
	})
}

// ApproveItem publishes a pending item to the catalog.
func (ac *AdminController) ApproveItem(w http.ResponseWriter, r *http.Request) {
	ac.decideItem(w, r, models.StatusApproved)
}

// RejectItem declines a pending item.
func (ac *AdminController) RejectItem(w http.ResponseWriter, r *http.Request) {
	ac.decideItem(w, r, models.StatusRejected)
}

// decideNGO resolves a pending verification request. The profile mirror
// is left alone; the session loader re-derives status from the request
// document itself.
func (ac *AdminController) decideNGO(w http.ResponseWriter, r *http.Request, to models.Status) {
	requestID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	request, err := ac.NGOs.GetByID(ctx, requestID)
	if err != nil {
		if utils.IsNotFound(err) {
			http.Error(w, "NGO request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching NGO request", http.StatusInternalServerError)
		return
	}
	if !models.CanTransition(request.Status, to) {
		http.Error(w, "NGO request has already been reviewed", http.StatusConflict)
		return
	}

	if err := ac.NGOs.UpdateStatus(ctx, requestID, to); err != nil {
		http.Error(w, "Error updating NGO request", http.StatusInternalServerError)
		return
	}

	logrus.WithFields(logrus.Fields{
		"request": requestID,
		"ngo":     request.NGOName,
		"status":  to,
	}).Info("NGO request reviewed")

	if err := ac.Email.SendNGODecisionEmail(request.Email, request.NGOName, to); err != nil {
		logrus.WithError(err).Warn("Error sending NGO decision email")
	}

	overview, err := ac.overview(ctx)
	if err != nil {
		http.Error(w, "Error refreshing overview", http.StatusInternalServerError)
		return
	}
	request.Status = to

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"request":  request,
		"overview": overview,
	})
}

// ApproveNGO grants an NGO access to free donations.
func (ac *AdminController) ApproveNGO(w http.ResponseWriter, r *http.Request) {
	ac.decideNGO(w, r, models.StatusApproved)
}

// RejectNGO declines a verification request.
func (ac *AdminController) RejectNGO(w http.ResponseWriter, r *http.Request) {
	ac.decideNGO(w, r, models.StatusRejected)
}
