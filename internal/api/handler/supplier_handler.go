package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// SupplierHandler handles supplier contact records.
type SupplierHandler struct {
	suppliers ports.SupplierService
}

func NewSupplierHandler(suppliers ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

type createSupplierRequest struct {
	Name          string         `json:"name" validate:"required"`
	Email         string         `json:"email" validate:"omitempty,email"`
	Phone         string         `json:"phone"`
	Address       addressRequest `json:"address"`
	ContactPerson string         `json:"contact_person"`
	PaymentTerms  string         `json:"payment_terms"`
}

type updateSupplierRequest struct {
	Name          *string         `json:"name"`
	Email         *string         `json:"email" validate:"omitempty,email"`
	Phone         *string         `json:"phone"`
	Address       *addressRequest `json:"address"`
	ContactPerson *string         `json:"contact_person"`
	PaymentTerms  *string         `json:"payment_terms"`
	IsActive      *bool           `json:"is_active"`
}

// Create adds a supplier.
//
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSupplierRequest  true  "Supplier details"
// @Success      201   {object}  domain.Supplier
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	supplier, err := h.suppliers.Create(c.Request().Context(), auth.ShopID, ports.CreateSupplierInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address.toDomain(),
		ContactPerson: req.ContactPerson,
		PaymentTerms:  req.PaymentTerms,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, supplier)
}

// Get returns one supplier.
//
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Supplier id"
// @Success      200  {object}  domain.Supplier
// @Failure      404  {object}  map[string]string
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	supplier, err := h.suppliers.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}

// List returns the shop's suppliers, optionally filtered.
//
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Param        active  query     bool    false  "Active flag filter"
// @Param        search  query     string  false  "Substring search on name/email/phone"
// @Success      200     {array}   domain.Supplier
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	suppliers, err := h.suppliers.List(c.Request().Context(), ports.PartyFilter{
		ShopID:   auth.ShopID,
		IsActive: boolQueryParam(c, "active"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suppliers)
}

// Update applies a partial supplier update.
//
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Supplier id"
// @Param        body  body      updateSupplierRequest  true  "Fields to change"
// @Success      200   {object}  domain.Supplier
// @Failure      404   {object}  map[string]string
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req updateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.SupplierUpdate{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  req.PaymentTerms,
		IsActive:      req.IsActive,
	}
	if req.Address != nil {
		addr := req.Address.toDomain()
		update.Address = &addr
	}

	supplier, err := h.suppliers.Update(c.Request().Context(), c.Param("id"), auth.ShopID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, supplier)
}
