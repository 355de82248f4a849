package store

import (
	"context"
	"fmt"

	"clothes-share/models"
	"clothes-share/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NGOFilter narrows an NGO request query. Same additive-equality semantics
// as ItemFilter.
type NGOFilter struct {
	Status  models.Status
	UserID  string
	OrderBy string
	Order   string
	Limit   int64
}

func (f NGOFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.UserID != "" {
		q["userId"] = f.UserID
	}
	return q
}

func (f NGOFilter) findOptions() *options.FindOptions {
	opts := options.Find()
	if f.OrderBy != "" {
		direction := -1
		if f.Order == "asc" {
			direction = 1
		}
		opts.SetSort(bson.D{{Key: f.OrderBy, Value: direction}})
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return opts
}

// NGORequestStore is the gateway to the ngo_requests collection.
type NGORequestStore struct {
	collection *mongo.Collection
}

// Create inserts a new NGO request document.
func (s *NGORequestStore) Create(ctx context.Context, request models.NGORequest) error {
	if _, err := s.collection.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("creating NGO request: %w", err)
	}
	return nil
}

// GetByID fetches a single NGO request.
func (s *NGORequestStore) GetByID(ctx context.Context, id string) (models.NGORequest, error) {
	var request models.NGORequest
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return models.NGORequest{}, utils.ErrNotFound
	}
	if err != nil {
		return models.NGORequest{}, fmt.Errorf("fetching NGO request %s: %w", id, err)
	}
	return request, nil
}

// Query fetches all NGO requests matching the filter.
func (s *NGORequestStore) Query(ctx context.Context, filter NGOFilter) ([]models.NGORequest, error) {
	cursor, err := s.collection.Find(ctx, filter.query(), filter.findOptions())
	if err != nil {
		return nil, fmt.Errorf("querying NGO requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests := []models.NGORequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("reading NGO requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus applies a single-field status update.
func (s *NGORequestStore) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("updating NGO request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
