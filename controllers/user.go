package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"clothes-share/middleware"
	"clothes-share/models"
	"clothes-share/store"
	"clothes-share/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserController handles registration, sign-in, and profile requests.
type UserController struct {
	Users        *store.UserStore
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController.
func NewUserController(users *store.UserStore, emailService *utils.EmailService) *UserController {
	return &UserController{
		Users:        users,
		EmailService: emailService,
	}
}

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type authResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	IsNewUser bool        `json:"isNewUser,omitempty"`
	Landing   string      `json:"landing"`
}

// Register handles user registration.
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 {
		http.Error(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}
	if !models.SignupRole(req.Role) {
		http.Error(w, "Please select a valid role", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := uc.Users.CountByEmail(ctx, req.Email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		Role:      req.Role,
		CreatedAt: time.Now(),
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	if err := uc.EmailService.SendWelcomeEmail(user.Email, user.Name, user.Role); err != nil {
		logrus.WithError(err).Warn("Error sending welcome email")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(authResponse{Token: token, User: user, Landing: landingFor(user.Role)})
}

// Login handles password authentication.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "Please fill in all fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.GetByEmail(ctx, creds.Email)
	if err != nil {
		http.Error(w, utils.AuthBadCredentials.Message(), http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		http.Error(w, utils.AuthBadCredentials.Message(), http.StatusUnauthorized)
		return
	}

	// Credentials provisioned out-of-band can exist without a completed
	// profile; repair with a default customer profile rather than failing.
	if user.Role == "" {
		user.Role = models.RoleCustomer
		if user.Name == "" {
			user.Name = strings.SplitN(user.Email, "@", 2)[0]
		}
		if err := uc.Users.Update(ctx, user.ID, map[string]interface{}{
			"role": user.Role,
			"name": user.Name,
		}); err != nil {
			logrus.WithError(err).Warn("Error persisting repaired profile")
		}
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{Token: token, User: user, Landing: landingFor(user.Role)})
}

// SelectRole completes a federated sign-up. The chosen role becomes
// permanent; further changes are rejected.
func (uc *UserController) SelectRole(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !models.SignupRole(req.Role) {
		http.Error(w, "Please select a valid role", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if !user.RolePending {
		http.Error(w, "Role has already been selected", http.StatusConflict)
		return
	}

	if err := uc.Users.Update(ctx, user.ID, map[string]interface{}{
		"role":        req.Role,
		"rolePending": false,
	}); err != nil {
		http.Error(w, "Failed to update role", http.StatusInternalServerError)
		return
	}
	user.Role = req.Role
	user.RolePending = false

	// Re-issue the token so the role claim matches the completed profile.
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{Token: token, User: user, Landing: landingFor(user.Role)})
}

// GetProfile retrieves the authenticated user's profile.
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromRequest(r)
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
