package store

import (
	"testing"

	"clothes-share/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func boolPtr(b bool) *bool { return &b }

func TestItemFilterQuery(t *testing.T) {
	// Absent options are no-ops.
	assert.Equal(t, bson.M{}, ItemFilter{}.query())

	// Present options narrow conjunctively.
	q := ItemFilter{Status: models.StatusApproved, DonorID: "d1"}.query()
	assert.Equal(t, bson.M{"status": models.StatusApproved, "donorId": "d1"}, q)

	// A false FreeForNGO is a real constraint, distinct from absent.
	q = ItemFilter{FreeForNGO: boolPtr(false)}.query()
	assert.Equal(t, bson.M{"freeForNGO": false}, q)

	q = ItemFilter{Status: models.StatusApproved, FreeForNGO: boolPtr(true)}.query()
	assert.Equal(t, bson.M{"status": models.StatusApproved, "freeForNGO": true}, q)
}

func TestItemFilterFindOptions(t *testing.T) {
	opts := ItemFilter{OrderBy: "createdAt"}.findOptions()
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, opts.Sort)
	assert.Nil(t, opts.Limit)

	opts = ItemFilter{OrderBy: "price", Order: "asc", Limit: 10}.findOptions()
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, opts.Sort)
	assert.Equal(t, int64(10), *opts.Limit)

	// No ordering clause when OrderBy is absent.
	opts = ItemFilter{Limit: 5}.findOptions()
	assert.Nil(t, opts.Sort)
	assert.Equal(t, int64(5), *opts.Limit)
}

func TestNGOFilterQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, NGOFilter{}.query())

	q := NGOFilter{Status: models.StatusPending, UserID: "u1"}.query()
	assert.Equal(t, bson.M{"status": models.StatusPending, "userId": "u1"}, q)
}
