package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

const collectionTransactions = "transactions"

type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *TransactionRepository) List(ctx context.Context, filter ports.TransactionFilter) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"shop_id": filter.ShopID}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if rng := dateRange(filter.DateFrom, filter.DateTo); rng != nil {
		query["date"] = rng
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var transactions []*domain.Transaction
	if err := cur.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// Stats sums income and expense amounts over an optional date range.
func (r *TransactionRepository) Stats(ctx context.Context, shopID string, from, to time.Time) (*domain.TransactionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{"shop_id": shopID}
	if rng := dateRange(from, to); rng != nil {
		match["date"] = rng
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Type  string  `bson:"_id"`
		Total float64 `bson:"total"`
		Count int64   `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	stats := &domain.TransactionStats{}
	for _, row := range rows {
		switch row.Type {
		case domain.TransactionIncome:
			stats.Income = row.Total
		case domain.TransactionExpense:
			stats.Expense = row.Total
		}
		stats.TotalTransactions += row.Count
	}
	stats.Balance = stats.Income - stats.Expense
	return stats, nil
}

// ExpensesByCategory groups expense amounts by category, largest first.
func (r *TransactionRepository) ExpensesByCategory(ctx context.Context, shopID string, from, to time.Time) ([]domain.CategoryExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{
		"shop_id": shopID,
		"type":    domain.TransactionExpense,
	}
	if rng := dateRange(from, to); rng != nil {
		match["date"] = rng
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Category string  `bson:"_id"`
		Total    float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	result := make([]domain.CategoryExpense, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.CategoryExpense{Category: row.Category, Total: row.Total})
	}
	return result, nil
}

// ExpensesByMonth sums expense amounts per calendar month, oldest first.
func (r *TransactionRepository) ExpensesByMonth(ctx context.Context, shopID string, from, to time.Time) ([]domain.MonthlyExpense, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{
		"shop_id": shopID,
		"type":    domain.TransactionExpense,
	}
	if rng := dateRange(from, to); rng != nil {
		match["date"] = rng
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$date"},
				"month": bson.M{"$month": "$date"},
			},
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	result := make([]domain.MonthlyExpense, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.MonthlyExpense{
			Month: fmt.Sprintf("%d-%d", row.ID.Year, row.ID.Month),
			Total: row.Total,
		})
	}
	return result, nil
}

// EnsureIndexes creates the ledger query indexes.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "type", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
