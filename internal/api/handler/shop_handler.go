package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ShopHandler handles shop profile management.
type ShopHandler struct {
	shops ports.ShopService
}

func NewShopHandler(shops ports.ShopService) *ShopHandler {
	return &ShopHandler{shops: shops}
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

func (a *addressRequest) toDomain() domain.Address {
	return domain.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Country: a.Country,
		ZipCode: a.ZipCode,
	}
}

type createShopRequest struct {
	Name               string         `json:"name" validate:"required"`
	Description        string         `json:"description"`
	Address            addressRequest `json:"address"`
	Phone              string         `json:"phone"`
	Email              string         `json:"email" validate:"omitempty,email"`
	Website            string         `json:"website"`
	BusinessType       string         `json:"business_type" validate:"omitempty,oneof=retail wholesale service restaurant other"`
	Currency           string         `json:"currency"`
	TaxNumber          string         `json:"tax_number"`
	RegistrationNumber string         `json:"registration_number"`
}

type updateShopRequest struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	Address      *addressRequest `json:"address"`
	Phone        *string         `json:"phone"`
	Email        *string         `json:"email" validate:"omitempty,email"`
	Website      *string         `json:"website"`
	BusinessType *string         `json:"business_type" validate:"omitempty,oneof=retail wholesale service restaurant other"`
}

// Create opens a shop for the acting user and promotes them to owner. A user
// may own at most one shop.
//
// @Summary      Create a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShopRequest  true  "Shop details"
// @Success      201   {object}  domain.Shop
// @Failure      409   {object}  map[string]string
// @Router       /api/shops [post]
func (h *ShopHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, false)
	if err != nil {
		return err
	}

	var req createShopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shop, err := h.shops.Create(c.Request().Context(), auth.UserID, ports.CreateShopInput{
		Name:               req.Name,
		Description:        req.Description,
		Address:            req.Address.toDomain(),
		Phone:              req.Phone,
		Email:              req.Email,
		Website:            req.Website,
		BusinessType:       req.BusinessType,
		Currency:           req.Currency,
		TaxNumber:          req.TaxNumber,
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shop)
}

// Get returns a shop profile. Only the owner or a manager of that shop may
// read it.
//
// @Summary      Get a shop
// @Tags         shops
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Shop id"
// @Success      200  {object}  domain.Shop
// @Failure      404  {object}  map[string]string
// @Router       /api/shops/{id} [get]
func (h *ShopHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, false)
	if err != nil {
		return err
	}

	shop, err := h.shops.Get(c.Request().Context(), c.Param("id"), auth)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shop)
}

// Update changes a shop profile. Owner only.
//
// @Summary      Update a shop
// @Tags         shops
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Shop id"
// @Param        body  body      updateShopRequest  true  "Fields to change"
// @Success      200   {object}  domain.Shop
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/shops/{id} [put]
func (h *ShopHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, false)
	if err != nil {
		return err
	}

	var req updateShopRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := ports.ShopUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		BusinessType: req.BusinessType,
	}
	if req.Address != nil {
		addr := req.Address.toDomain()
		update.Address = &addr
	}

	shop, err := h.shops.Update(c.Request().Context(), c.Param("id"), auth.UserID, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shop)
}
