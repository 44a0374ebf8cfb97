package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// CustomerService implements customer contact management.
type CustomerService struct {
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, shopID string, input ports.CreateCustomerInput) (*domain.Customer, error) {
	now := time.Now().UTC()
	customer := &domain.Customer{
		ShopID:    shopID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if customer.Address.Country == "" {
		customer.Address.Country = "Libya"
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update merges only the supplied fields. An explicit false for IsActive
// deactivates; a nil pointer leaves the flag alone.
func (s *CustomerService) Update(ctx context.Context, id, shopID string, update ports.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		customer.Name = *update.Name
	}
	if update.Email != nil {
		customer.Email = *update.Email
	}
	if update.Phone != nil {
		customer.Phone = *update.Phone
	}
	if update.Address != nil {
		customer.Address = *update.Address
	}
	if update.IsActive != nil {
		customer.IsActive = *update.IsActive
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id, shopID string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id, shopID)
}

func (s *CustomerService) List(ctx context.Context, filter ports.PartyFilter) ([]*domain.Customer, error) {
	return s.customers.List(ctx, filter)
}
