package session

import (
	"context"
	"testing"

	"clothes-share/models"
	"clothes-share/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the document store gateways.

type fakeItems struct {
	items []models.Item
}

func (f *fakeItems) Query(_ context.Context, filter store.ItemFilter) ([]models.Item, error) {
	matched := []models.Item{}
	for _, item := range f.items {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.DonorID != "" && item.DonorID != filter.DonorID {
			continue
		}
		if filter.FreeForNGO != nil && item.FreeForNGO != *filter.FreeForNGO {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

type fakeNGOs struct {
	requests []models.NGORequest
}

func (f *fakeNGOs) Query(_ context.Context, filter store.NGOFilter) ([]models.NGORequest, error) {
	matched := []models.NGORequest{}
	for _, r := range f.requests {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && r.UserID != filter.UserID {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

type fakeCarts struct {
	carts map[string]models.Cart
}

func (f *fakeCarts) Get(_ context.Context, userID string) (models.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	return models.Cart{UserID: userID, Items: []models.Item{}}, nil
}

type fakeWishlists struct {
	wishlists map[string]models.Wishlist
}

func (f *fakeWishlists) Get(_ context.Context, userID string) (models.Wishlist, error) {
	if w, ok := f.wishlists[userID]; ok {
		return w, nil
	}
	return models.Wishlist{UserID: userID, Items: []models.Item{}}, nil
}

func newLoader() (*Loader, *fakeItems, *fakeNGOs, *fakeCarts) {
	items := &fakeItems{}
	ngos := &fakeNGOs{}
	carts := &fakeCarts{carts: map[string]models.Cart{}}
	wishlists := &fakeWishlists{wishlists: map[string]models.Wishlist{}}
	return &Loader{Items: items, NGOs: ngos, Carts: carts, Wishlists: wishlists}, items, ngos, carts
}

func TestRequireRoleUnresolvedSession(t *testing.T) {
	s := &State{}

	// While the session is unresolved no authorization decision is made:
	// not authorized, but no redirect either.
	d := s.RequireRole(models.RoleDonor)
	assert.False(t, d.Authorized)
	assert.Empty(t, d.RedirectTo)
}

func TestRequireRoleNoIdentity(t *testing.T) {
	s := &State{}
	s.Clear()

	d := s.RequireRole(models.RoleDonor)
	assert.False(t, d.Authorized)
	assert.Equal(t, AuthPath, d.RedirectTo)
}

func TestRequireRoleMismatchRedirectsToOwnLanding(t *testing.T) {
	loader, _, _, _ := newLoader()
	s := &State{}
	user := &models.User{ID: "u1", Role: models.RoleCustomer}
	require.NoError(t, loader.Resolve(context.Background(), s, user))

	d := s.RequireRole(models.RoleDonor)
	assert.False(t, d.Authorized)
	assert.Equal(t, "/customer", d.RedirectTo)
}

func TestRequireRoleMatch(t *testing.T) {
	loader, _, _, _ := newLoader()
	s := &State{}
	user := &models.User{ID: "u1", Role: models.RoleDonor}
	require.NoError(t, loader.Resolve(context.Background(), s, user))

	d := s.RequireRole(models.RoleDonor)
	assert.True(t, d.Authorized)
	assert.Empty(t, d.RedirectTo)
}

func TestResolveDonorLoadsOwnItems(t *testing.T) {
	loader, items, _, carts := newLoader()
	items.items = []models.Item{
		{ID: "i1", DonorID: "u1", Status: models.StatusPending},
		{ID: "i2", DonorID: "u1", Status: models.StatusApproved},
		{ID: "i3", DonorID: "someone-else", Status: models.StatusApproved},
	}
	carts.carts["u1"] = models.Cart{UserID: "u1", Items: []models.Item{{ID: "i9"}}}

	s := &State{}
	require.NoError(t, loader.Resolve(context.Background(), s, &models.User{ID: "u1", Role: models.RoleDonor}))

	assert.True(t, s.Resolved())
	assert.Len(t, s.UserItems, 2)
	// Cart is fetched for every role.
	assert.Len(t, s.Cart.Items, 1)
	assert.Empty(t, s.Products)
}

func TestResolveCustomerLoadsCatalogAndWishlist(t *testing.T) {
	loader, items, _, _ := newLoader()
	items.items = []models.Item{
		{ID: "i1", Status: models.StatusApproved},
		{ID: "i2", Status: models.StatusApproved, FreeForNGO: true},
		{ID: "i3", Status: models.StatusPending},
	}

	s := &State{}
	require.NoError(t, loader.Resolve(context.Background(), s, &models.User{ID: "u1", Role: models.RoleCustomer}))

	// Approved items only, and free-for-NGO listings are excluded from the
	// paid catalog.
	require.Len(t, s.Products, 1)
	assert.Equal(t, "i1", s.Products[0].ID)
	assert.NotNil(t, s.Wishlist.Items)
}

func TestResolveNGOCopiesRequestStatus(t *testing.T) {
	loader, _, ngos, _ := newLoader()
	ngos.requests = []models.NGORequest{
		{ID: "n1", UserID: "u1", Status: models.StatusPending},
	}

	s := &State{}
	user := &models.User{ID: "u1", Role: models.RoleNGO}
	require.NoError(t, loader.Resolve(context.Background(), s, user))

	assert.Equal(t, models.StatusPending, user.NgoStatus)
	assert.Equal(t, "n1", user.NgoID)
}

func TestResolveNGOWithoutRequest(t *testing.T) {
	loader, _, _, _ := newLoader()

	s := &State{}
	user := &models.User{ID: "u1", Role: models.RoleNGO}
	require.NoError(t, loader.Resolve(context.Background(), s, user))

	assert.Empty(t, user.NgoStatus)
	assert.Empty(t, user.NgoID)
}

func TestResolveAdminLoadsEverything(t *testing.T) {
	loader, items, ngos, _ := newLoader()
	items.items = []models.Item{
		{ID: "i1", Status: models.StatusPending},
		{ID: "i2", Status: models.StatusApproved},
	}
	ngos.requests = []models.NGORequest{
		{ID: "n1", Status: models.StatusPending},
		{ID: "n2", Status: models.StatusApproved},
	}

	s := &State{}
	require.NoError(t, loader.Resolve(context.Background(), s, &models.User{ID: "a1", Role: models.RoleAdmin}))

	assert.Len(t, s.UserItems, 2)
	assert.Len(t, s.NGORequests, 2)
}

func TestClearDropsAllCaches(t *testing.T) {
	loader, items, _, carts := newLoader()
	items.items = []models.Item{{ID: "i1", DonorID: "u1"}}
	carts.carts["u1"] = models.Cart{UserID: "u1", Items: []models.Item{{ID: "i1"}}}

	s := &State{}
	require.NoError(t, loader.Resolve(context.Background(), s, &models.User{ID: "u1", Role: models.RoleDonor}))
	require.NotEmpty(t, s.UserItems)

	s.Clear()
	assert.Nil(t, s.User)
	assert.Empty(t, s.Cart.Items)
	assert.Empty(t, s.UserItems)
	assert.True(t, s.Resolved())
}

// The NGO verification lifecycle end to end: submit makes the identity
// pending, an admin approval shows up on the next full reload and in the
// approved-NGO aggregate.
func TestNGOLifecycle(t *testing.T) {
	loader, _, ngos, _ := newLoader()
	ctx := context.Background()
	user := &models.User{ID: "u1", Email: "a@b.com", Role: models.RoleNGO}

	// Fresh NGO identity: no request yet.
	s := &State{}
	require.NoError(t, loader.Resolve(ctx, s, user))
	assert.Empty(t, user.NgoStatus)

	// Submit the verification request.
	ngos.requests = append(ngos.requests, models.NGORequest{
		ID: "n1", UserID: "u1", Status: models.StatusPending,
	})
	s = &State{}
	require.NoError(t, loader.Resolve(ctx, s, user))
	assert.Equal(t, models.StatusPending, user.NgoStatus)

	// Admin approves; the next full reload reflects it.
	require.True(t, models.CanTransition(ngos.requests[0].Status, models.StatusApproved))
	ngos.requests[0].Status = models.StatusApproved

	s = &State{}
	require.NoError(t, loader.Resolve(ctx, s, user))
	assert.Equal(t, models.StatusApproved, user.NgoStatus)

	admin := &State{}
	require.NoError(t, loader.Resolve(ctx, admin, &models.User{ID: "a1", Role: models.RoleAdmin}))
	overview := models.ComputeAdminOverview(admin.UserItems, admin.NGORequests)
	assert.Equal(t, 1, overview.ApprovedNGOs)
	assert.Equal(t, 0, overview.PendingNGOs)
}
