package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ProductHandler handles catalog management.
type ProductHandler struct {
	products ports.ProductService
}

func NewProductHandler(products ports.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	Cost          float64 `json:"cost" validate:"gte=0"`
	SKU           string  `json:"sku"`
	Category      string  `json:"category"`
	StockQuantity int64   `json:"stock_quantity" validate:"gte=0"`
	Unit          string  `json:"unit"`
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Cost          *float64 `json:"cost" validate:"omitempty,gte=0"`
	SKU           *string  `json:"sku"`
	Category      *string  `json:"category"`
	StockQuantity *int64   `json:"stock_quantity" validate:"omitempty,gte=0"`
	Unit          *string  `json:"unit"`
	IsActive      *bool    `json:"is_active"`
}

type adjustStockRequest struct {
	Action   string `json:"action" validate:"required,oneof=add subtract set"`
	Quantity int64  `json:"quantity" validate:"gte=0"`
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      409   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Create(c.Request().Context(), auth.ShopID, ports.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Cost:          req.Cost,
		SKU:           req.SKU,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Unit:          req.Unit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Get returns one product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	product, err := h.products.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// List returns the shop's catalog, optionally filtered.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Category filter"
// @Param        active    query     bool    false  "Active flag filter"
// @Param        search    query     string  false  "Substring search on name/description/sku"
// @Success      200       {array}   domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	filter := ports.ProductFilter{
		ShopID:   auth.ShopID,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		IsActive: boolQueryParam(c, "active"),
	}

	products, err := h.products.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Update applies a partial product update.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.Update(c.Request().Context(), c.Param("id"), auth.ShopID, ports.ProductUpdate{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Cost:          req.Cost,
		SKU:           req.SKU,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Unit:          req.Unit,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// AdjustStock applies an add/subtract/set stock adjustment.
//
// @Summary      Adjust product stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product id"
// @Param        body  body      adjustStockRequest  true  "Adjustment"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.products.AdjustStock(c.Request().Context(), c.Param("id"), auth.ShopID, req.Action, req.Quantity)
	if err != nil {
		return err
	}

	metrics.StockAdjustmentsTotal.WithLabelValues(req.Action).Inc()
	return c.JSON(http.StatusOK, product)
}

// boolQueryParam parses an optional boolean query parameter; absent or
// unparsable values yield nil.
func boolQueryParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
