package ports

import (
	"context"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// ShopRepository defines persistence for shops.
type ShopRepository interface {
	Create(ctx context.Context, s *domain.Shop) error
	FindByID(ctx context.Context, id string) (*domain.Shop, error)
	FindByOwner(ctx context.Context, ownerID string) (*domain.Shop, error)
	Update(ctx context.Context, s *domain.Shop) error
}

// CreateShopInput carries the shop creation payload.
type CreateShopInput struct {
	Name               string
	Description        string
	Address            domain.Address
	Phone              string
	Email              string
	Website            string
	BusinessType       string
	Currency           string
	TaxNumber          string
	RegistrationNumber string
}

// ShopUpdate is a partial update; nil leaves a field unchanged.
type ShopUpdate struct {
	Name         *string
	Description  *string
	Address      *domain.Address
	Phone        *string
	Email        *string
	Website      *string
	BusinessType *string
}

// ShopService covers shop profile management. Creating a shop promotes the
// creator to owner; a user may own at most one shop.
type ShopService interface {
	Create(ctx context.Context, ownerID string, input CreateShopInput) (*domain.Shop, error)
	Update(ctx context.Context, id, actingUserID string, update ShopUpdate) (*domain.Shop, error)
	Get(ctx context.Context, id string, actor *domain.AuthContext) (*domain.Shop, error)
}
