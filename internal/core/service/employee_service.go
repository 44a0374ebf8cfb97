package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// EmployeeService implements personnel records and user-account linking.
type EmployeeService struct {
	employees ports.EmployeeRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, users ports.UserRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, users: users, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, shopID string, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	now := time.Now().UTC()
	employee := &domain.Employee{
		ShopID:           shopID,
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Position:         input.Position,
		Salary:           input.Salary,
		StartDate:        input.StartDate,
		IsActive:         true,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		NationalID:       input.NationalID,
		BankAccount:      input.BankAccount,
		Notes:            input.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if employee.Position == "" {
		employee.Position = domain.PositionSalesAssociate
	}
	if employee.Salary.Frequency == "" {
		employee.Salary.Frequency = domain.SalaryMonthly
	}
	if employee.StartDate.IsZero() {
		employee.StartDate = now
	}
	if employee.Address.Country == "" {
		employee.Address.Country = "Libya"
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, id, shopID string, update ports.EmployeeUpdate) (*domain.Employee, error) {
	employee, err := s.employees.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		employee.Name = *update.Name
	}
	if update.Email != nil {
		employee.Email = *update.Email
	}
	if update.Phone != nil {
		employee.Phone = *update.Phone
	}
	if update.Position != nil {
		employee.Position = *update.Position
	}
	if update.Salary != nil {
		employee.Salary = *update.Salary
	}
	if update.IsActive != nil {
		employee.IsActive = *update.IsActive
	}
	if update.Address != nil {
		employee.Address = *update.Address
	}
	if update.EmergencyContact != nil {
		employee.EmergencyContact = *update.EmergencyContact
	}
	if update.NationalID != nil {
		employee.NationalID = *update.NationalID
	}
	if update.BankAccount != nil {
		employee.BankAccount = *update.BankAccount
	}
	if update.Notes != nil {
		employee.Notes = *update.Notes
	}
	employee.UpdatedAt = time.Now().UTC()

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id, shopID string) (*domain.Employee, error) {
	return s.employees.FindByID(ctx, id, shopID)
}

func (s *EmployeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]*domain.Employee, error) {
	return s.employees.List(ctx, filter)
}

// LinkUser attaches a user account to the employee record and aligns the
// account's role with the employee's position (manager position grants the
// manager role, everything else the employee role).
func (s *EmployeeService) LinkUser(ctx context.Context, id, shopID, userID string) error {
	employee, err := s.employees.FindByID(ctx, id, shopID)
	if err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	employee.UserID = user.ID
	employee.UpdatedAt = time.Now().UTC()
	if err := s.employees.Update(ctx, employee); err != nil {
		return err
	}

	user.Role = employee.AccountRole()
	user.ShopID = employee.ShopID
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("employee_id", id).Str("user_id", userID).Str("role", user.Role).Msg("user linked to employee")
	return nil
}
