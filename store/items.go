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

// ItemFilter narrows an item query. Absent options are no-ops; each present
// option narrows the result set further (conjunctive equality). OrderBy is a
// single ordering clause; Limit caps the result count without paging.
type ItemFilter struct {
	Status     models.Status
	DonorID    string
	FreeForNGO *bool
	OrderBy    string
	Order      string // "asc" or "desc"; defaults to "desc"
	Limit      int64
}

func (f ItemFilter) query() bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.DonorID != "" {
		q["donorId"] = f.DonorID
	}
	if f.FreeForNGO != nil {
		q["freeForNGO"] = *f.FreeForNGO
	}
	return q
}

func (f ItemFilter) findOptions() *options.FindOptions {
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

// ItemStore is the gateway to the items collection.
type ItemStore struct {
	collection *mongo.Collection
}

// Create inserts a new item document.
func (s *ItemStore) Create(ctx context.Context, item models.Item) error {
	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// GetByID fetches a single item.
func (s *ItemStore) GetByID(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return models.Item{}, utils.ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("fetching item %s: %w", id, err)
	}
	return item, nil
}

// Query fetches all items matching the filter.
func (s *ItemStore) Query(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	cursor, err := s.collection.Find(ctx, filter.query(), filter.findOptions())
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}

// UpdateStatus applies a single-field status update.
func (s *ItemStore) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Update applies a partial-field update to an item.
func (s *ItemStore) Update(ctx context.Context, id string, fields bson.M) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("updating item %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// Delete removes an item. The capability exists in the gateway but no user
// flow reaches it.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return nil
}
