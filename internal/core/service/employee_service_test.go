package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

type employeeFixture struct {
	service   *EmployeeService
	employees *stubEmployeeRepo
	users     *stubUserRepo
}

func newEmployeeFixture() *employeeFixture {
	f := &employeeFixture{
		employees: newStubEmployeeRepo(),
		users:     newStubUserRepo(),
	}
	f.service = NewEmployeeService(f.employees, f.users, discardLogger)
	return f
}

func TestEmployeeCreateDefaults(t *testing.T) {
	f := newEmployeeFixture()

	employee, err := f.service.Create(context.Background(), "shop-a", ports.CreateEmployeeInput{
		Name:  "Huda",
		Phone: "0912345678",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if employee.Position != domain.PositionSalesAssociate {
		t.Errorf("expected default position sales_associate, got %q", employee.Position)
	}
	if employee.Salary.Frequency != domain.SalaryMonthly {
		t.Errorf("expected default frequency monthly, got %q", employee.Salary.Frequency)
	}
	if employee.StartDate.IsZero() {
		t.Error("expected start date defaulted to now")
	}
	if employee.Address.Country != "Libya" {
		t.Errorf("expected default country Libya, got %q", employee.Address.Country)
	}
	if !employee.IsActive {
		t.Error("expected new employee to be active")
	}
}

func TestEmployeeLinkUserAlignsRole(t *testing.T) {
	f := newEmployeeFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	employee, err := f.service.Create(context.Background(), "shop-a", ports.CreateEmployeeInput{
		Name:     "Huda",
		Phone:    "0912345678",
		Position: domain.PositionManager,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.service.LinkUser(context.Background(), employee.ID, "shop-a", user.ID); err != nil {
		t.Fatalf("LinkUser returned error: %v", err)
	}

	storedEmployee, _ := f.employees.FindByID(context.Background(), employee.ID, "shop-a")
	if storedEmployee.UserID != user.ID {
		t.Errorf("expected employee linked to %s, got %q", user.ID, storedEmployee.UserID)
	}

	storedUser, _ := f.users.FindByID(context.Background(), user.ID)
	if storedUser.Role != domain.RoleManager {
		t.Errorf("expected manager position to grant manager role, got %q", storedUser.Role)
	}
	if storedUser.ShopID != "shop-a" {
		t.Errorf("expected user scoped to shop-a, got %q", storedUser.ShopID)
	}
}

func TestEmployeeLinkUserNonManagerPosition(t *testing.T) {
	f := newEmployeeFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	employee, err := f.service.Create(context.Background(), "shop-a", ports.CreateEmployeeInput{
		Name:     "Huda",
		Phone:    "0912345678",
		Position: domain.PositionCashier,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := f.service.LinkUser(context.Background(), employee.ID, "shop-a", user.ID); err != nil {
		t.Fatalf("LinkUser returned error: %v", err)
	}

	storedUser, _ := f.users.FindByID(context.Background(), user.ID)
	if storedUser.Role != domain.RoleEmployee {
		t.Errorf("expected cashier position to grant employee role, got %q", storedUser.Role)
	}
}

func TestEmployeeLinkUserUnknownUser(t *testing.T) {
	f := newEmployeeFixture()

	employee, err := f.service.Create(context.Background(), "shop-a", ports.CreateEmployeeInput{
		Name:  "Huda",
		Phone: "0912345678",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	err = f.service.LinkUser(context.Background(), employee.ID, "shop-a", "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	stored, _ := f.employees.FindByID(context.Background(), employee.ID, "shop-a")
	if stored.UserID != "" {
		t.Errorf("expected employee left unlinked, got %q", stored.UserID)
	}
}

func TestEmployeeUpdatePartial(t *testing.T) {
	f := newEmployeeFixture()

	employee, err := f.service.Create(context.Background(), "shop-a", ports.CreateEmployeeInput{
		Name:  "Huda",
		Phone: "0912345678",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	salary := domain.Salary{Amount: 1500, Frequency: domain.SalaryMonthly}
	updated, err := f.service.Update(context.Background(), employee.ID, "shop-a", ports.EmployeeUpdate{
		Salary: &salary,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Salary.Amount != 1500 {
		t.Errorf("expected salary 1500, got %v", updated.Salary.Amount)
	}
	if updated.Name != "Huda" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
}
