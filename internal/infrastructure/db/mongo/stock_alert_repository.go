package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

const collectionStockAlerts = "stock_alerts"

type StockAlertRepository struct {
	col *mongo.Collection
}

func NewStockAlertRepository(db *mongo.Database) *StockAlertRepository {
	return &StockAlertRepository{col: db.Collection(collectionStockAlerts)}
}

func (r *StockAlertRepository) Create(ctx context.Context, a *domain.StockAlert) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, a)
	return err
}

// EnsureIndexes creates the alert lookup index.
func (r *StockAlertRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
