package ports

import (
	"context"
	"time"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// TransactionFilter carries the ledger list query parameters.
type TransactionFilter struct {
	ShopID   string
	Type     string
	Category string
	DateFrom time.Time
	DateTo   time.Time
}

// TransactionRepository defines persistence and aggregation for the ledger.
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
	// Stats sums income and expense amounts over an optional date range.
	Stats(ctx context.Context, shopID string, from, to time.Time) (*domain.TransactionStats, error)
	// ExpensesByCategory groups expense amounts by category over a range.
	ExpensesByCategory(ctx context.Context, shopID string, from, to time.Time) ([]domain.CategoryExpense, error)
	// ExpensesByMonth sums expense amounts per calendar month over a range,
	// ordered chronologically.
	ExpensesByMonth(ctx context.Context, shopID string, from, to time.Time) ([]domain.MonthlyExpense, error)
}

// CreateTransactionInput carries the ledger entry creation payload.
type CreateTransactionInput struct {
	Type              string
	Category          string
	Amount            float64
	Description       string
	PaymentMethod     string
	RelatedInvoiceID  string
	RelatedPurchaseID string
	RelatedEmployeeID string
}

// TransactionService covers free-form ledger entries and their stats view.
type TransactionService interface {
	Create(ctx context.Context, shopID string, input CreateTransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*domain.Transaction, error)
	Stats(ctx context.Context, shopID string, from, to time.Time) (*domain.TransactionStats, error)
}
