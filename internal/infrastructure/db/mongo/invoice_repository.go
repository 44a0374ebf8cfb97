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

const collectionInvoices = "invoices"

type InvoiceRepository struct {
	col *mongo.Collection
}

func NewInvoiceRepository(db *mongo.Database) *InvoiceRepository {
	return &InvoiceRepository{col: db.Collection(collectionInvoices)}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if inv.ID == "" {
		inv.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, inv)
	return err
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id, shopID string) (*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var inv domain.Invoice
	err := r.col.FindOne(ctx, bson.M{"_id": id, "shop_id": shopID}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": inv.ID, "shop_id": inv.ShopID}, inv)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"shop_id": filter.ShopID}
	if filter.PartyID != "" {
		query["customer_id"] = filter.PartyID
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
	var invoices []*domain.Invoice
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// SumPaidTotals sums total_amount over paid invoices whose date falls in the
// given range.
func (r *InvoiceRepository) SumPaidTotals(ctx context.Context, shopID string, from, to time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{
		"shop_id": shopID,
		"status":  domain.InvoicePaid,
	}
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

// ListPaidInRange returns paid invoices in the date range, oldest first.
func (r *InvoiceRepository) ListPaidInRange(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"shop_id": shopID,
		"status":  domain.InvoicePaid,
	}
	if rng := dateRange(from, to); rng != nil {
		query["date"] = rng
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var invoices []*domain.Invoice
	if err := cur.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// EnsureIndexes creates the invoice indexes, including the unique per-shop
// invoice number.
func (r *InvoiceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "shop_id", Value: 1}, {Key: "invoice_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// dateRange builds a bson range filter; a zero bound is left open.
func dateRange(from, to time.Time) bson.M {
	rng := bson.M{}
	if !from.IsZero() {
		rng["$gte"] = from
	}
	if !to.IsZero() {
		rng["$lte"] = to
	}
	if len(rng) == 0 {
		return nil
	}
	return rng
}
