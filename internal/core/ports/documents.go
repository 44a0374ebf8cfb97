package ports

import (
	"context"
	"time"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// Document counter kinds.
const (
	CounterInvoice  = "invoice"
	CounterPurchase = "purchase"
)

// CounterRepository issues monotonically increasing per-shop sequence numbers.
// Next must be atomic: two concurrent calls for the same shop and kind never
// observe the same value.
type CounterRepository interface {
	Next(ctx context.Context, shopID, kind string) (int64, error)
}

// TxRunner executes fn inside a single storage transaction. Every write made
// through repositories with the given ctx commits or aborts together.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LineInput is one requested document line.
type LineInput struct {
	ProductID string
	Quantity  int64
}

// CreateInvoiceInput carries the invoice posting payload.
type CreateInvoiceInput struct {
	CustomerID string
	Items      []LineInput
	TaxAmount  float64
	Notes      string
}

// CreatePurchaseInput carries the purchase posting payload.
type CreatePurchaseInput struct {
	SupplierID string
	Items      []LineInput
	TaxAmount  float64
	Notes      string
}

// DocumentUpdate is the partial update accepted by invoice and purchase
// updates: an explicit status wins over the one derived from AmountPaid.
type DocumentUpdate struct {
	AmountPaid *float64
	Status     *string
}

// DocumentFilter carries the list query parameters for invoices/purchases.
// PartyID filters by customer or supplier depending on the document kind.
type DocumentFilter struct {
	ShopID   string
	PartyID  string
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}

// InvoiceRepository defines persistence for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Invoice, error)
	// SumPaidTotals sums total_amount over paid invoices in a date range.
	SumPaidTotals(ctx context.Context, shopID string, from, to time.Time) (float64, error)
	// ListPaidInRange returns paid invoices in a date range, oldest first.
	ListPaidInRange(ctx context.Context, shopID string, from, to time.Time) ([]*domain.Invoice, error)
}

// PurchaseRepository defines persistence for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Purchase, error)
	Update(ctx context.Context, p *domain.Purchase) error
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Purchase, error)
	// SumTotals sums total_amount over all purchases in a date range.
	SumTotals(ctx context.Context, shopID string, from, to time.Time) (float64, error)
}

// InvoiceService covers the sales posting workflow and invoice reads.
type InvoiceService interface {
	// Create posts an invoice: validates customer, products and stock,
	// allocates the next number, persists the document, decrements stock
	// and writes the income ledger entry, all inside one transaction.
	Create(ctx context.Context, actor *domain.AuthContext, input CreateInvoiceInput) (*domain.Invoice, error)
	Update(ctx context.Context, id, shopID string, update DocumentUpdate) (*domain.Invoice, error)
	Get(ctx context.Context, id, shopID string) (*domain.Invoice, error)
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Invoice, error)
}

// PurchaseService covers the restocking posting workflow and purchase reads.
type PurchaseService interface {
	Create(ctx context.Context, actor *domain.AuthContext, input CreatePurchaseInput) (*domain.Purchase, error)
	Update(ctx context.Context, id, shopID string, update DocumentUpdate) (*domain.Purchase, error)
	Get(ctx context.Context, id, shopID string) (*domain.Purchase, error)
	List(ctx context.Context, filter DocumentFilter) ([]*domain.Purchase, error)
}
