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

const collectionSuppliers = "suppliers"

type SupplierRepository struct {
	col *mongo.Collection
}

func NewSupplierRepository(db *mongo.Database) *SupplierRepository {
	return &SupplierRepository{col: db.Collection(collectionSuppliers)}
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *SupplierRepository) FindByID(ctx context.Context, id, shopID string) (*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Supplier
	err := r.col.FindOne(ctx, bson.M{"_id": id, "shop_id": shopID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID, "shop_id": s.ShopID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *SupplierRepository) List(ctx context.Context, filter ports.PartyFilter) ([]*domain.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, partyQuery(filter), options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var suppliers []*domain.Supplier
	if err := cur.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// EnsureIndexes creates the shop scoping index on the suppliers collection.
func (r *SupplierRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shop_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
