package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

const collectionPurchases = "purchases"

type PurchaseRepository struct {
	col *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{col: db.Collection(collectionPurchases)}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id, shopID string) (*domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Purchase
	err := r.col.FindOne(ctx, bson.M{"_id": id, "shop_id": shopID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PurchaseRepository) Update(ctx context.Context, p *domain.Purchase) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID, "shop_id": p.ShopID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

func (r *PurchaseRepository) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Purchase, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"shop_id": filter.ShopID}
	if filter.PartyID != "" {
		query["supplier_id"] = filter.PartyID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if rng := dateRange(filter.DateFrom, filter.DateTo); rng != nil {
		query["date"] = rng
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var purchases []*domain.Purchase
	if err := cur.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// SumTotals sums total_amount over all purchases in the date range,
// regardless of payment status.
func (r *PurchaseRepository) SumTotals(ctx context.Context, shopID string, from, to time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{"shop_id": shopID}
	if rng := dateRange(from, to); rng != nil {
		match["date"] = rng
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// EnsureIndexes creates the purchase indexes, including the unique per-shop
// purchase number.
func (r *PurchaseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "supplier_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "purchase_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
