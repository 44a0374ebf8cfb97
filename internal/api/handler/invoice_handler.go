package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// InvoiceHandler handles the sales posting workflow.
type InvoiceHandler struct {
	invoices ports.InvoiceService
}

func NewInvoiceHandler(invoices ports.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

type lineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}

type createInvoiceRequest struct {
	CustomerID string        `json:"customer_id" validate:"required"`
	Items      []lineRequest `json:"items" validate:"required,min=1,dive"`
	TaxAmount  float64       `json:"tax_amount" validate:"gte=0"`
	Notes      string        `json:"notes"`
}

type updateDocumentRequest struct {
	AmountPaid *float64 `json:"amount_paid" validate:"omitempty,gte=0"`
	Status     *string  `json:"status"`
}

func toLineInputs(lines []lineRequest) []ports.LineInput {
	items := make([]ports.LineInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, ports.LineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return items
}

// Create posts a sales invoice: the document, stock decrements and the income
// ledger entry commit together.
//
// @Summary      Post an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details"
// @Success      201   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invoice, err := h.invoices.Create(c.Request().Context(), auth, ports.CreateInvoiceInput{
		CustomerID: req.CustomerID,
		Items:      toLineInputs(req.Items),
		TaxAmount:  req.TaxAmount,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.StockRejectionsTotal.Inc()
		}
		return err
	}

	metrics.InvoicesPostedTotal.Inc()
	return c.JSON(http.StatusCreated, invoice)
}

// Get returns one invoice.
//
// @Summary      Get an invoice
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Invoice id"
// @Success      200  {object}  domain.Invoice
// @Failure      404  {object}  map[string]string
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	invoice, err := h.invoices.Get(c.Request().Context(), c.Param("id"), auth.ShopID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}

// List returns the shop's invoices, optionally filtered.
//
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        customer  query     string  false  "Customer id filter"
// @Param        status    query     string  false  "Status filter"
// @Param        from      query     string  false  "Date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to        query     string  false  "Date upper bound (RFC3339 or YYYY-MM-DD)"
// @Success      200       {array}   domain.Invoice
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	invoices, err := h.invoices.List(c.Request().Context(), ports.DocumentFilter{
		ShopID:   auth.ShopID,
		PartyID:  c.QueryParam("customer"),
		Status:   c.QueryParam("status"),
		DateFrom: timeQueryParam(c, "from"),
		DateTo:   timeQueryParam(c, "to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Update records a payment and/or sets the invoice status.
//
// @Summary      Update an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Invoice id"
// @Param        body  body      updateDocumentRequest  true  "Payment or status change"
// @Success      200   {object}  domain.Invoice
// @Failure      404   {object}  map[string]string
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c echo.Context) error {
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

	invoice, err := h.invoices.Update(c.Request().Context(), c.Param("id"), auth.ShopID, ports.DocumentUpdate{
		AmountPaid: req.AmountPaid,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoice)
}
