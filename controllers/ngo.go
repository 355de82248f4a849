package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clothes-share/middleware"
	"clothes-share/models"
	"clothes-share/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NGOController handles NGO verification requests.
type NGOController struct {
	NGOs  *store.NGORequestStore
	Users *store.UserStore
}

// NewNGOController creates a new NGOController.
func NewNGOController(ngos *store.NGORequestStore, users *store.UserStore) *NGOController {
	return &NGOController{NGOs: ngos, Users: users}
}

type ngoRequestInput struct {
	NGOName            string `json:"ngoName"`
	RegistrationNumber string `json:"registrationNumber"`
	ContactPerson      string `json:"contactPerson"`
	Designation        string `json:"designation"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	ServiceAreas       string `json:"serviceAreas"`
	Description        string `json:"description"`
	Website            string `json:"website"`
}

func (in *ngoRequestInput) validate() string {
	switch {
	case in.NGOName == "":
		return "ngo name"
	case in.RegistrationNumber == "":
		return "registration number"
	case in.ContactPerson == "":
		return "contact person"
	case in.Designation == "":
		return "designation"
	case in.Phone == "":
		return "phone"
	case in.Email == "":
		return "email"
	case in.Address == "":
		return "address"
	case in.ServiceAreas == "":
		return "service areas"
	case in.Description == "":
		return "description"
	}
	return ""
}

// CreateRequest submits a verification application. One request per NGO
// identity: a repeat submission is rejected regardless of the first
// request's outcome.
func (nc *NGOController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var in ngoRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if missing := in.validate(); missing != "" {
		http.Error(w, "Please fill in the "+missing, http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	existing, err := nc.NGOs.Query(ctx, store.NGOFilter{UserID: claims.UserID})
	if err != nil {
		http.Error(w, "Error submitting verification request", http.StatusInternalServerError)
		return
	}
	if len(existing) > 0 {
		http.Error(w, "A verification request has already been submitted", http.StatusConflict)
		return
	}

	request := models.NGORequest{
		ID:                 uuid.NewString(),
		NGOName:            in.NGOName,
		RegistrationNumber: in.RegistrationNumber,
		ContactPerson:      in.ContactPerson,
		Designation:        in.Designation,
		Phone:              in.Phone,
		Email:              in.Email,
		Address:            in.Address,
		ServiceAreas:       in.ServiceAreas,
		Description:        in.Description,
		Website:            in.Website,
		UserID:             claims.UserID,
		Status:             models.StatusPending,
		SubmittedAt:        time.Now(),
	}

	if err := nc.NGOs.Create(ctx, request); err != nil {
		http.Error(w, "Error submitting verification request", http.StatusInternalServerError)
		return
	}

	// Mirror the pending state onto the profile; the loader re-derives it
	// from the request document on every resolve.
	if err := nc.Users.Update(ctx, claims.UserID, map[string]interface{}{
		"ngoStatus": models.StatusPending,
		"ngoId":     request.ID,
	}); err != nil {
		logrus.WithError(err).Warn("Error mirroring NGO status onto profile")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(request)
}

// GetMyRequest retrieves the NGO's own verification request, if any.
func (nc *NGOController) GetMyRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	requests, err := nc.NGOs.Query(ctx, store.NGOFilter{UserID: claims.UserID})
	if err != nil {
		http.Error(w, "Error fetching verification request", http.StatusInternalServerError)
		return
	}
	if len(requests) == 0 {
		http.Error(w, "No verification request found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests[0])
}
