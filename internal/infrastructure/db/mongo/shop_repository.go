package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

const collectionShops = "shops"

type ShopRepository struct {
	col *mongo.Collection
}

func NewShopRepository(db *mongo.Database) *ShopRepository {
	return &ShopRepository{col: db.Collection(collectionShops)}
}

func (r *ShopRepository) Create(ctx context.Context, s *domain.Shop) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *ShopRepository) FindByID(ctx context.Context, id string) (*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shop
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShopNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Shop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shop
	err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShopNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ShopRepository) Update(ctx context.Context, s *domain.Shop) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrShopNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index on the shops collection.
func (r *ShopRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
