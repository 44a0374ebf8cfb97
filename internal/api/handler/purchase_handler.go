package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// PurchaseHandler handles the restocking posting workflow.
type PurchaseHandler struct {
	purchases ports.PurchaseService
}

func NewPurchaseHandler(purchases ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

type createPurchaseRequest struct {
	SupplierID string        `json:"supplier_id" validate:"required"`
	Items      []lineRequest `json:"items" validate:"required,min=1,dive"`
	TaxAmount  float64       `json:"tax_amount" validate:"gte=0"`
	Notes      string        `json:"notes"`
}

// Create posts a purchase: the document and its expense ledger entry commit
// together.
//
// @Summary      Post a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPurchaseRequest  true  "Purchase details"
// @Success      201   {object}  domain.Purchase
// @Failure      404   {object}  map[string]string
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := h.purchases.Create(c.Request().Context(), auth, ports.CreatePurchaseInput{
		SupplierID: req.SupplierID,
		Items:      toLineInputs(req.Items),
		TaxAmount:  req.TaxAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.PurchasesPostedTotal.Inc()
	return c.JSON(http.StatusCreated, purchase)
}

// Get returns one purchase.
//
// @Summary      Get a purchase
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Purchase id"
// @Success      200  {object}  domain.Purchase
// @Failure      404  {object}  map[string]string
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	purchase, err := h.purchases.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}

// List returns the shop's purchases, optionally filtered.
//
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        supplier  query     string  false  "Supplier id filter"
// @Param        status    query     string  false  "Status filter"
// @Param        from      query     string  false  "Date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to        query     string  false  "Date upper bound (RFC3339 or YYYY-MM-DD)"
// @Success      200       {array}   domain.Purchase
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	purchases, err := h.purchases.List(c.Request().Context(), ports.DocumentFilter{
		ShopID:   auth.ShopID,
		PartyID:  c.QueryParam("supplier"),
		Status:   c.QueryParam("status"),
		DateFrom: timeQueryParam(c, "from"),
		DateTo:   timeQueryParam(c, "to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

// Update records a payment and/or sets the purchase status.
//
// @Summary      Update a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Purchase id"
// @Param        body  body      updateDocumentRequest  true  "Payment or status change"
// @Success      200   {object}  domain.Purchase
// @Failure      404   {object}  map[string]string
// @Router       /api/purchases/{id} [put]
func (h *PurchaseHandler) Update(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req updateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchase, err := h.purchases.Update(c.Request().Context(), c.Param("id"), auth.ShopID, ports.DocumentUpdate{
		AmountPaid: req.AmountPaid,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchase)
}
