package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ProductService implements catalog management.
type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, shopID string, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ShopID:        shopID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Cost:          input.Cost,
		SKU:           input.SKU,
		Category:      input.Category,
		StockQuantity: input.StockQuantity,
		Unit:          input.Unit,
		ImageURL:      "no-photo.jpg",
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Unit == "" {
		product.Unit = "piece"
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial update; a non-nil pointer always overwrites, zero
// values included.
func (s *ProductService) Update(ctx context.Context, id, shopID string, update ports.ProductUpdate) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Cost != nil {
		product.Cost = *update.Cost
	}
	if update.SKU != nil {
		product.SKU = *update.SKU
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.StockQuantity != nil {
		product.StockQuantity = *update.StockQuantity
	}
	if update.Unit != nil {
		product.Unit = *update.Unit
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id, shopID string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id, shopID)
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, filter)
}

// AdjustStock applies add/subtract/set to a product's stock. Subtracting
// never goes below zero.
func (s *ProductService) AdjustStock(ctx context.Context, id, shopID, action string, quantity int64) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}
	if err := product.AdjustStock(action, quantity); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("product_id", id).Str("action", action).Int64("quantity", quantity).Msg("stock adjusted")
	return product, nil
}
