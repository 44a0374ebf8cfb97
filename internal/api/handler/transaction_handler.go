package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// TransactionHandler handles the free-form ledger.
type TransactionHandler struct {
	transactions ports.TransactionService
}

func NewTransactionHandler(transactions ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

type createTransactionRequest struct {
	Type              string  `json:"type" validate:"required,oneof=income expense"`
	Category          string  `json:"category" validate:"required"`
	Amount            float64 `json:"amount" validate:"gte=0"`
	Description       string  `json:"description"`
	PaymentMethod     string  `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer card cheque other"`
	RelatedInvoiceID  string  `json:"related_invoice_id"`
	RelatedPurchaseID string  `json:"related_purchase_id"`
	RelatedEmployeeID string  `json:"related_employee_id"`
}

// Create records a ledger entry.
//
// @Summary      Create a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTransactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	transaction, err := h.transactions.Create(c.Request().Context(), auth.ShopID, ports.CreateTransactionInput{
		Type:              req.Type,
		Category:          req.Category,
		Amount:            req.Amount,
		Description:       req.Description,
		PaymentMethod:     req.PaymentMethod,
		RelatedInvoiceID:  req.RelatedInvoiceID,
		RelatedPurchaseID: req.RelatedPurchaseID,
		RelatedEmployeeID: req.RelatedEmployeeID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, transaction)
}

// List returns the shop's ledger entries, optionally filtered.
//
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        type      query     string  false  "income or expense"
// @Param        category  query     string  false  "Category filter"
// @Param        from      query     string  false  "Date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to        query     string  false  "Date upper bound (RFC3339 or YYYY-MM-DD)"
// @Success      200       {array}   domain.Transaction
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	transactions, err := h.transactions.List(c.Request().Context(), ports.TransactionFilter{
		ShopID:   auth.ShopID,
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
		DateFrom: timeQueryParam(c, "from"),
		DateTo:   timeQueryParam(c, "to"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// Stats returns income/expense/balance totals over an optional date range.
//
// @Summary      Transaction statistics
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Date lower bound (RFC3339 or YYYY-MM-DD)"
// @Param        to    query     string  false  "Date upper bound (RFC3339 or YYYY-MM-DD)"
// @Success      200   {object}  domain.TransactionStats
// @Router       /api/transactions/stats [get]
func (h *TransactionHandler) Stats(c echo.Context) error {
	auth, err := ctxAuth(c, true)
	if err != nil {
		return err
	}

	stats, err := h.transactions.Stats(c.Request().Context(), auth.ShopID, timeQueryParam(c, "from"), timeQueryParam(c, "to"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// timeQueryParam parses an optional date query parameter, accepting RFC3339
// or a plain calendar date. Absent or unparsable values yield the zero time.
func timeQueryParam(c echo.Context, name string) time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}
