package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// SupplierService implements supplier contact management.
type SupplierService struct {
	suppliers ports.SupplierRepository
	logger    zerolog.Logger
}

func NewSupplierService(suppliers ports.SupplierRepository, logger zerolog.Logger) *SupplierService {
	return &SupplierService{suppliers: suppliers, logger: logger}
}

func (s *SupplierService) Create(ctx context.Context, shopID string, input ports.CreateSupplierInput) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier := &domain.Supplier{
		ShopID:        shopID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		ContactPerson: input.ContactPerson,
		PaymentTerms:  input.PaymentTerms,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if supplier.PaymentTerms == "" {
		supplier.PaymentTerms = domain.DefaultPaymentTerms
	}
	if supplier.Address.Country == "" {
		supplier.Address.Country = "Libya"
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Update(ctx context.Context, id, shopID string, update ports.SupplierUpdate) (*domain.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		supplier.Name = *update.Name
	}
	if update.Email != nil {
		supplier.Email = *update.Email
	}
	if update.Phone != nil {
		supplier.Phone = *update.Phone
	}
	if update.Address != nil {
		supplier.Address = *update.Address
	}
	if update.ContactPerson != nil {
		supplier.ContactPerson = *update.ContactPerson
	}
	if update.PaymentTerms != nil {
		supplier.PaymentTerms = *update.PaymentTerms
	}
	if update.IsActive != nil {
		supplier.IsActive = *update.IsActive
	}
	supplier.UpdatedAt = time.Now().UTC()

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) Get(ctx context.Context, id, shopID string) (*domain.Supplier, error) {
	return s.suppliers.FindByID(ctx, id, shopID)
}

func (s *SupplierService) List(ctx context.Context, filter ports.PartyFilter) ([]*domain.Supplier, error) {
	return s.suppliers.List(ctx, filter)
}
