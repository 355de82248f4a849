package store

import (
	"context"
	"fmt"

	"clothes-share/models"
	"clothes-share/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserStore is the gateway to the users collection.
type UserStore struct {
	collection *mongo.Collection
}

// Create inserts a new user profile document.
func (s *UserStore) Create(ctx context.Context, user models.User) error {
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ErrDuplicate
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetByID fetches a profile by the identity's subject id.
func (s *UserStore) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, utils.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetching user %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail fetches a profile by email address.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, utils.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("fetching user by email: %w", err)
	}
	return user, nil
}

// CountByEmail reports how many profiles use the given email.
func (s *UserStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// Update applies a partial-field update to the profile document.
func (s *UserStore) Update(ctx context.Context, id string, fields bson.M) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("updating user %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Delete removes a profile document.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}
