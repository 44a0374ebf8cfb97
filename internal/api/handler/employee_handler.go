package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// EmployeeHandler handles personnel records.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type salaryRequest struct {
	Amount    float64 `json:"amount" validate:"gte=0"`
	Frequency string  `json:"frequency" validate:"omitempty,oneof=hourly daily weekly monthly"`
}

type emergencyContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type bankAccountRequest struct {
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	IBAN          string `json:"iban"`
}

type createEmployeeRequest struct {
	Name             string                  `json:"name" validate:"required"`
	Email            string                  `json:"email" validate:"omitempty,email"`
	Phone            string                  `json:"phone" validate:"required"`
	Position         string                  `json:"position" validate:"omitempty,oneof=cashier sales_associate manager accountant security cleaner other"`
	Salary           salaryRequest           `json:"salary"`
	StartDate        time.Time               `json:"start_date"`
	Address          addressRequest          `json:"address"`
	EmergencyContact emergencyContactRequest `json:"emergency_contact"`
	NationalID       string                  `json:"national_id"`
	BankAccount      bankAccountRequest      `json:"bank_account"`
	Notes            string                  `json:"notes"`
}

type updateEmployeeRequest struct {
	Name             *string                  `json:"name"`
	Email            *string                  `json:"email" validate:"omitempty,email"`
	Phone            *string                  `json:"phone"`
	Position         *string                  `json:"position" validate:"omitempty,oneof=cashier sales_associate manager accountant security cleaner other"`
	Salary           *salaryRequest           `json:"salary"`
	IsActive         *bool                    `json:"is_active"`
	Address          *addressRequest          `json:"address"`
	EmergencyContact *emergencyContactRequest `json:"emergency_contact"`
	NationalID       *string                  `json:"national_id"`
	BankAccount      *bankAccountRequest      `json:"bank_account"`
	Notes            *string                  `json:"notes"`
}

type linkUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Create adds an employee record.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employees.Create(c.Request().Context(), auth.ShopID, ports.CreateEmployeeInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Position:  req.Position,
		Salary:    domain.Salary{Amount: req.Salary.Amount, Frequency: req.Salary.Frequency},
		StartDate: req.StartDate,
		Address:   req.Address.toDomain(),
		EmergencyContact: domain.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Phone:        req.EmergencyContact.Phone,
			Relationship: req.EmergencyContact.Relationship,
		},
		NationalID: req.NationalID,
		BankAccount: domain.BankAccount{
			AccountNumber: req.BankAccount.AccountNumber,
			BankName:      req.BankAccount.BankName,
			IBAN:          req.BankAccount.IBAN,
		},
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Get returns one employee.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee id"
// @Success      200  {object}  domain.Employee
// @Failure      404  {object}  map[string]string
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	employee, err := h.employees.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// List returns the shop's employees, optionally filtered.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        active    query     bool    false  "Active flag filter"
// @Param        position  query     string  false  "Position filter"
// @Success      200       {array}   domain.Employee
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	employees, err := h.employees.List(c.Request().Context(), ports.EmployeeFilter{
		ShopID:   auth.ShopID,
		IsActive: boolQueryParam(c, "active"),
		Position: c.QueryParam("position"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Update applies a partial employee update.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to change"
// @Success      200   {object}  domain.Employee
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.EmployeeUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		IsActive:   req.IsActive,
		NationalID: req.NationalID,
		Notes:      req.Notes,
	}
	if req.Salary != nil {
		update.Salary = &domain.Salary{Amount: req.Salary.Amount, Frequency: req.Salary.Frequency}
	}
	if req.Address != nil {
		addr := req.Address.toDomain()
		update.Address = &addr
	}
	if req.EmergencyContact != nil {
		update.EmergencyContact = &domain.EmergencyContact{
			Name:         req.EmergencyContact.Name,
			Phone:        req.EmergencyContact.Phone,
			Relationship: req.EmergencyContact.Relationship,
		}
	}
	if req.BankAccount != nil {
		update.BankAccount = &domain.BankAccount{
			AccountNumber: req.BankAccount.AccountNumber,
			BankName:      req.BankAccount.BankName,
			IBAN:          req.BankAccount.IBAN,
		}
	}

	employee, err := h.employees.Update(c.Request().Context(), c.Param("id"), auth.ShopID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// LinkUser attaches a user account to the employee; the account's role is set
// from the employee's position.
//
// @Summary      Link a user account to an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee id"
// @Param        body  body      linkUserRequest  true  "User to link"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employees/{id}/link-user [post]
func (h *EmployeeHandler) LinkUser(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req linkUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.employees.LinkUser(c.Request().Context(), c.Param("id"), auth.ShopID, req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "linked"})
}
