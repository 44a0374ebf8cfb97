package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// CounterRepository issues per-shop document sequence numbers with a single
// atomic findAndModify. Counter documents are created on first use.
type CounterRepository struct {
	col *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{col: db.Collection(collectionCounters)}
}

// Next returns the next sequence number for the shop and kind. Concurrent
// callers never observe the same value.
func (r *CounterRepository) Next(ctx context.Context, shopID, kind string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": fmt.Sprintf("%s:%s", shopID, kind)}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return 0, fmt.Errorf("advance %s counter: %w", kind, err)
	}
	return doc.Seq, nil
}
