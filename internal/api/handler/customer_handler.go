package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// CustomerHandler handles customer contact records.
type CustomerHandler struct {
	customers ports.CustomerService
}

func NewCustomerHandler(customers ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

type createCustomerRequest struct {
	Name    string         `json:"name" validate:"required"`
	Email   string         `json:"email" validate:"omitempty,email"`
	Phone   string         `json:"phone"`
	Address addressRequest `json:"address"`
}

type updateCustomerRequest struct {
	Name     *string         `json:"name"`
	Email    *string         `json:"email" validate:"omitempty,email"`
	Phone    *string         `json:"phone"`
	Address  *addressRequest `json:"address"`
	IsActive *bool           `json:"is_active"`
}

// Create adds a customer.
//
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCustomerRequest  true  "Customer details"
// @Success      201   {object}  domain.Customer
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.Create(c.Request().Context(), auth.ShopID, ports.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address.toDomain(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Get returns one customer.
//
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      404  {object}  map[string]string
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	customer, err := h.customers.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// List returns the shop's customers, optionally filtered.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        active  query     bool    false  "Active flag filter"
// @Param        search  query     string  false  "Substring search on name/email/phone"
// @Success      200     {array}   domain.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	customers, err := h.customers.List(c.Request().Context(), ports.PartyFilter{
		ShopID:   auth.ShopID,
		IsActive: boolQueryParam(c, "active"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Update applies a partial customer update.
//
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Customer id"
// @Param        body  body      updateCustomerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Customer
// @Failure      404   {object}  map[string]string
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.CustomerUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	}
	if req.Address != nil {
		addr := req.Address.toDomain()
		update.Address = &addr
	}

	customer, err := h.customers.Update(c.Request().Context(), c.Param("id"), auth.ShopID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}
