// Package session holds the role-scoped state for one authenticated
// session. It replaces ambient globals with an explicit state object that
// is populated on sign-in, cleared on sign-out, and consulted for
// authorization decisions.
package session

import (
	"context"

	"clothes-share/models"
	"clothes-share/store"
)

// ItemSource supplies item queries to the loader.
type ItemSource interface {
	Query(ctx context.Context, filter store.ItemFilter) ([]models.Item, error)
}

// NGOSource supplies NGO request queries to the loader.
type NGOSource interface {
	Query(ctx context.Context, filter store.NGOFilter) ([]models.NGORequest, error)
}

// CartSource supplies a user's cart.
type CartSource interface {
	Get(ctx context.Context, userID string) (models.Cart, error)
}

// WishlistSource supplies a user's wishlist.
type WishlistSource interface {
	Get(ctx context.Context, userID string) (models.Wishlist, error)
}

// State is the client-held domain state for one session. Until the first
// session transition resolves it, no authorization decision is made.
type State struct {
	User        *models.User
	Cart        models.Cart
	Wishlist    models.Wishlist
	Products    []models.Item
	UserItems   []models.Item
	NGORequests []models.NGORequest

	resolved bool
}

// Resolved reports whether a session transition has completed.
func (s *State) Resolved() bool {
	return s.resolved
}

// Clear is the sign-out transition: all role-scoped caches are dropped and
// the state reverts to unauthenticated. The state stays resolved; the
// session question has been answered and the answer is "nobody".
func (s *State) Clear() {
	s.User = nil
	s.Cart = models.Cart{}
	s.Wishlist = models.Wishlist{}
	s.Products = nil
	s.UserItems = nil
	s.NGORequests = nil
	s.resolved = true
}

// Decision is the outcome of a role check.
type Decision struct {
	Authorized bool
	// RedirectTo is the path the caller should send the user to when not
	// authorized. Empty while the session is unresolved: no redirect may
	// happen before the first session transition, or a page load would
	// race the sign-in check.
	RedirectTo string
}

// AuthPath is the sign-in entry point.
const AuthPath = "/auth"

// Landing returns the dashboard path for a role.
func Landing(role models.Role) string {
	if p, ok := policies[role]; ok {
		return p.landing
	}
	return "/"
}

// RequireRole decides whether the session may access a surface that demands
// the given role.
func (s *State) RequireRole(role models.Role) Decision {
	if !s.resolved {
		return Decision{}
	}
	if s.User == nil {
		return Decision{RedirectTo: AuthPath}
	}
	if s.User.Role != role {
		return Decision{RedirectTo: Landing(s.User.Role)}
	}
	return Decision{Authorized: true}
}
