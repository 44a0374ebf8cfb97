package ports

import (
	"context"
	"time"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// EmployeeFilter carries the list query parameters for employees.
type EmployeeFilter struct {
	ShopID   string
	IsActive *bool
	Position string
}

// EmployeeRepository defines persistence for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Employee, error)
	// FindByUser locates the employee record linked to a user account,
	// regardless of shop. Used during identity resolution.
	FindByUser(ctx context.Context, userID string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	List(ctx context.Context, filter EmployeeFilter) ([]*domain.Employee, error)
}

// CreateEmployeeInput carries the employee creation payload.
type CreateEmployeeInput struct {
	Name             string
	Email            string
	Phone            string
	Position         string
	Salary           domain.Salary
	StartDate        time.Time
	Address          domain.Address
	EmergencyContact domain.EmergencyContact
	NationalID       string
	BankAccount      domain.BankAccount
	Notes            string
}

// EmployeeUpdate is a partial update; nil leaves a field unchanged.
type EmployeeUpdate struct {
	Name             *string
	Email            *string
	Phone            *string
	Position         *string
	Salary           *domain.Salary
	IsActive         *bool
	Address          *domain.Address
	EmergencyContact *domain.EmergencyContact
	NationalID       *string
	BankAccount      *domain.BankAccount
	Notes            *string
}

// EmployeeService covers personnel records and user-account linking.
type EmployeeService interface {
	Create(ctx context.Context, shopID string, input CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id, shopID string, update EmployeeUpdate) (*domain.Employee, error)
	Get(ctx context.Context, id, shopID string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]*domain.Employee, error)
	// LinkUser attaches a user account to the employee and sets the
	// account's role from the employee's position.
	LinkUser(ctx context.Context, id, shopID, userID string) error
}
