// Package store is the typed gateway to the document store. It wraps the
// MongoDB driver with per-collection CRUD and query operations; callers
// never touch bson or collections directly.
package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	usersCollection     = "users"
	itemsCollection     = "items"
	ngosCollection      = "ngo_requests"
	cartsCollection     = "carts"
	wishlistsCollection = "wishlists"
)

// Store bundles the per-collection gateways over one database.
type Store struct {
	Users     *UserStore
	Items     *ItemStore
	NGOs      *NGORequestStore
	Carts     *CartStore
	Wishlists *WishlistStore
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{
		Users:     &UserStore{collection: db.Collection(usersCollection)},
		Items:     &ItemStore{collection: db.Collection(itemsCollection)},
		NGOs:      &NGORequestStore{collection: db.Collection(ngosCollection)},
		Carts:     &CartStore{collection: db.Collection(cartsCollection)},
		Wishlists: &WishlistStore{collection: db.Collection(wishlistsCollection)},
	}
}
