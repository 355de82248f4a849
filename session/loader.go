package session

import (
	"context"
	"fmt"

	"clothes-share/models"
	"clothes-share/store"

	"github.com/sirupsen/logrus"
)

// Loader populates a State from the document store according to the
// signed-in identity's role.
type Loader struct {
	Items     ItemSource
	NGOs      NGOSource
	Carts     CartSource
	Wishlists WishlistSource
}

// rolePolicy declares, per role, where that role lands after sign-in and
// what data its dashboard needs. Adding a role means adding a variant here
// rather than extending conditionals around the codebase.
type rolePolicy struct {
	landing string
	load    func(l *Loader, ctx context.Context, s *State) error
}

var policies = map[models.Role]rolePolicy{
	models.RoleDonor: {
		landing: "/donor",
		load:    (*Loader).loadDonor,
	},
	models.RoleCustomer: {
		landing: "/customer",
		load:    (*Loader).loadCustomer,
	},
	models.RoleNGO: {
		landing: "/ngo",
		load:    (*Loader).loadNGO,
	},
	models.RoleAdmin: {
		landing: "/admin",
		load:    (*Loader).loadAdmin,
	},
}

// Resolve is the authenticated session transition: it loads the cart and
// the role-scoped data for user into s. Load failures for individual
// sections are logged and leave that section empty rather than failing the
// whole transition; the session still resolves.
func (l *Loader) Resolve(ctx context.Context, s *State, user *models.User) error {
	s.User = user

	cart, err := l.Carts.Get(ctx, user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user", user.ID).Error("Error loading cart")
	} else {
		s.Cart = cart
	}

	policy, ok := policies[user.Role]
	if !ok {
		s.resolved = true
		return fmt.Errorf("unknown role %q", user.Role)
	}
	if err := policy.load(l, ctx, s); err != nil {
		logrus.WithError(err).WithField("role", user.Role).Error("Error loading role data")
	}

	s.resolved = true
	return nil
}

func (l *Loader) loadDonor(ctx context.Context, s *State) error {
	items, err := l.Items.Query(ctx, store.ItemFilter{DonorID: s.User.ID})
	if err != nil {
		return err
	}
	s.UserItems = items
	return nil
}

func (l *Loader) loadCustomer(ctx context.Context, s *State) error {
	items, err := l.Items.Query(ctx, store.ItemFilter{Status: models.StatusApproved})
	if err != nil {
		return err
	}
	// Customers only see paid listings; free-for-NGO items belong to the
	// donations surface.
	products := []models.Item{}
	for _, item := range items {
		if !item.FreeForNGO {
			products = append(products, item)
		}
	}
	s.Products = products

	wishlist, err := l.Wishlists.Get(ctx, s.User.ID)
	if err != nil {
		return err
	}
	s.Wishlist = wishlist
	return nil
}

func (l *Loader) loadNGO(ctx context.Context, s *State) error {
	requests, err := l.NGOs.Query(ctx, store.NGOFilter{UserID: s.User.ID})
	if err != nil {
		return err
	}
	if len(requests) > 0 {
		// Mirror the request's moderation state onto the identity so the
		// dashboard can gate the donations surface without another fetch.
		s.User.NgoStatus = requests[0].Status
		s.User.NgoID = requests[0].ID
		s.NGORequests = requests
	}
	return nil
}

func (l *Loader) loadAdmin(ctx context.Context, s *State) error {
	items, err := l.Items.Query(ctx, store.ItemFilter{})
	if err != nil {
		return err
	}
	s.UserItems = items

	requests, err := l.NGOs.Query(ctx, store.NGOFilter{})
	if err != nil {
		return err
	}
	s.NGORequests = requests
	return nil
}
