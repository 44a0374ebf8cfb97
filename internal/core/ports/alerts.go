package ports

import (
	"context"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// StockAlertRepository defines persistence for low-stock alerts.
type StockAlertRepository interface {
	Create(ctx context.Context, a *domain.StockAlert) error
}

// StockCheck asks the alert workers to re-read a product's stock level after
// a sale and raise an alert if it dropped below the reorder threshold.
type StockCheck struct {
	ShopID    string
	ProductID string
}

// StockAlertNotifier accepts stock checks for asynchronous processing.
// Implementations must never block the posting request path.
type StockAlertNotifier interface {
	NotifySale(checks []StockCheck)
}
