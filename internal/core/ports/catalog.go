package ports

import (
	"context"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// ProductFilter carries the list query parameters for the catalog.
type ProductFilter struct {
	ShopID   string
	Category string // optional: exact match
	IsActive *bool  // optional: active flag
	Search   string // optional: case-insensitive substring on name/description/sku
}

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	// FindByID scopes by shop: a product belonging to another shop is
	// reported as not found.
	FindByID(ctx context.Context, id, shopID string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// DecrementStock atomically subtracts quantity from a product's stock.
	// The write refuses to take stock below zero and reports
	// ErrInsufficientStock instead, so the quantity invariant holds even
	// when concurrent sales interleave after a caller's availability read.
	DecrementStock(ctx context.Context, id string, quantity int64) error
}

// CreateProductInput carries the product creation payload.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         float64
	Cost          float64
	SKU           string
	Category      string
	StockQuantity int64
	Unit          string
}

// ProductUpdate is a partial update; nil leaves a field unchanged.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	Cost          *float64
	SKU           *string
	Category      *string
	StockQuantity *int64
	Unit          *string
	IsActive      *bool
}

// ProductService covers catalog management including stock adjustment.
type ProductService interface {
	Create(ctx context.Context, shopID string, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id, shopID string, update ProductUpdate) (*domain.Product, error)
	Get(ctx context.Context, id, shopID string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	AdjustStock(ctx context.Context, id, shopID, action string, quantity int64) (*domain.Product, error)
}
