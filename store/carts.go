package store

import (
	"context"
	"fmt"
	"time"

	"clothes-share/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartStore is the gateway to the carts collection: one singleton document
// per user, keyed by the user's id. Every write is a full-document replace;
// concurrent writers race with last-writer-wins at the document level.
type CartStore struct {
	collection *mongo.Collection
}

// Get fetches a user's cart. An absent document is an empty cart, not an
// error.
func (s *CartStore) Get(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return models.Cart{UserID: userID, Items: []models.Item{}}, nil
	}
	if err != nil {
		return models.Cart{}, fmt.Errorf("fetching cart for %s: %w", userID, err)
	}
	return cart, nil
}

// Save replaces the user's cart document wholesale, creating it on first
// write.
func (s *CartStore) Save(ctx context.Context, cart models.Cart) error {
	cart.UpdatedAt = time.Now()
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": cart.UserID}, cart,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving cart for %s: %w", cart.UserID, err)
	}
	return nil
}

// WishlistStore mirrors CartStore over the wishlists collection.
type WishlistStore struct {
	collection *mongo.Collection
}

// Get fetches a user's wishlist, defaulting to empty when absent.
func (s *WishlistStore) Get(ctx context.Context, userID string) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return models.Wishlist{UserID: userID, Items: []models.Item{}}, nil
	}
	if err != nil {
		return models.Wishlist{}, fmt.Errorf("fetching wishlist for %s: %w", userID, err)
	}
	return wishlist, nil
}

// Save replaces the user's wishlist document wholesale.
func (s *WishlistStore) Save(ctx context.Context, wishlist models.Wishlist) error {
	wishlist.UpdatedAt = time.Now()
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": wishlist.UserID}, wishlist,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving wishlist for %s: %w", wishlist.UserID, err)
	}
	return nil
}
