package ports

import (
	"context"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// PartyFilter carries the list query parameters shared by customers and
// suppliers. Search matches name, email and phone case-insensitively.
type PartyFilter struct {
	ShopID   string
	IsActive *bool
	Search   string
}

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, filter PartyFilter) ([]*domain.Customer, error)
}

// SupplierRepository defines persistence for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	List(ctx context.Context, filter PartyFilter) ([]*domain.Supplier, error)
}

// CreateCustomerInput carries the customer creation payload.
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address domain.Address
}

// CustomerUpdate is a partial update; nil leaves a field unchanged. A non-nil
// IsActive pointing at false explicitly deactivates.
type CustomerUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *domain.Address
	IsActive *bool
}

// CreateSupplierInput carries the supplier creation payload.
type CreateSupplierInput struct {
	Name          string
	Email         string
	Phone         string
	Address       domain.Address
	ContactPerson string
	PaymentTerms  string
}

// SupplierUpdate is a partial update; nil leaves a field unchanged.
type SupplierUpdate struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *domain.Address
	ContactPerson *string
	PaymentTerms  *string
	IsActive      *bool
}

// CustomerService covers customer CRUD.
type CustomerService interface {
	Create(ctx context.Context, shopID string, input CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id, shopID string, update CustomerUpdate) (*domain.Customer, error)
	Get(ctx context.Context, id, shopID string) (*domain.Customer, error)
	List(ctx context.Context, filter PartyFilter) ([]*domain.Customer, error)
}

// SupplierService covers supplier CRUD.
type SupplierService interface {
	Create(ctx context.Context, shopID string, input CreateSupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, id, shopID string, update SupplierUpdate) (*domain.Supplier, error)
	Get(ctx context.Context, id, shopID string) (*domain.Supplier, error)
	List(ctx context.Context, filter PartyFilter) ([]*domain.Supplier, error)
}
