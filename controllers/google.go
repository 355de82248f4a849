package controllers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clothes-share/models"
	"clothes-share/store"
	"clothes-share/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const oauthStateCookie = "cs_oauth_state"

// GoogleController handles federated sign-in through Google OAuth.
type GoogleController struct {
	Users *store.UserStore
	cfg   *oauth2.Config
}

// NewGoogleController creates a new GoogleController. With empty
// credentials the endpoints answer that federated sign-in is unavailable.
func NewGoogleController(users *store.UserStore, clientID, clientSecret, baseURL string) *GoogleController {
	return &GoogleController{
		Users: users,
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + "/auth/google/callback",
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (gc *GoogleController) configured() bool {
	return gc.cfg.ClientID != "" && gc.cfg.ClientSecret != ""
}

// Login starts the OAuth flow. The account chooser is always forced so a
// stale browser session cannot silently pick the wrong account.
func (gc *GoogleController) Login(w http.ResponseWriter, r *http.Request) {
	if !gc.configured() {
		http.Error(w, "Google sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		http.Error(w, "Error starting sign-in", http.StatusInternalServerError)
		return
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	url := gc.cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// Callback finishes the OAuth flow: it validates state, exchanges the code,
// fetches the Google profile, and signs the user in. When no profile
// document exists yet, one is synthesized with the default customer role
// and the response flags the account as new so the client can complete role
// selection.
func (gc *GoogleController) Callback(w http.ResponseWriter, r *http.Request) {
	if !gc.configured() {
		http.Error(w, "Google sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	if errCode := r.URL.Query().Get("error"); errCode != "" {
		kind := utils.AuthUnknown
		switch errCode {
		case "access_denied":
			kind = utils.AuthCancelled
		case "redirect_uri_mismatch", "unauthorized_client":
			kind = utils.AuthUnauthorizedOrigin
		}
		logrus.WithField("error", errCode).Info("Google sign-in refused")
		http.Error(w, kind.Message(), http.StatusUnauthorized)
		return
	}

	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		http.Error(w, utils.AuthStateMismatch.Message(), http.StatusUnauthorized)
		return
	}
	// State is single-use.
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1})

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := gc.cfg.Exchange(ctx, r.URL.Query().Get("code"))
	if err != nil {
		logrus.WithError(err).Error("Google code exchange failed")
		http.Error(w, utils.AuthExchangeFailed.Message(), http.StatusBadGateway)
		return
	}

	info, err := fetchGoogleUserInfo(ctx, gc.cfg, token)
	if err != nil {
		logrus.WithError(err).Error("Google userinfo fetch failed")
		http.Error(w, utils.AuthExchangeFailed.Message(), http.StatusBadGateway)
		return
	}

	user, err := gc.Users.GetByID(ctx, federatedID(info.ID))
	isNew := false
	if utils.IsNotFound(err) {
		// First federated sign-in: synthesize a default profile. The role
		// stays pending until the user completes role selection.
		name := info.Name
		if name == "" {
			name = strings.SplitN(info.Email, "@", 2)[0]
		}
		user = models.User{
			ID:          federatedID(info.ID),
			Email:       info.Email,
			Name:        name,
			Role:        models.RoleCustomer,
			Provider:    "google",
			PhotoURL:    info.Picture,
			RolePending: true,
			CreatedAt:   time.Now(),
		}
		if err := gc.Users.Create(ctx, user); err != nil {
			http.Error(w, "Error creating user", http.StatusInternalServerError)
			return
		}
		isNew = true
	} else if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	jwtToken, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(authResponse{
		Token:     jwtToken,
		User:      user,
		IsNewUser: isNew,
		Landing:   landingFor(user.Role),
	})
}

// federatedID namespaces Google subject ids so they cannot collide with
// locally generated ids.
func federatedID(sub string) string {
	return "google:" + sub
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func fetchGoogleUserInfo(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := cfg.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}
