package ports

import (
	"context"
	"time"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// ReportFilter carries the report list query parameters. The date range
// filters on generation time, not the reported period.
type ReportFilter struct {
	ShopID        string
	ReportType    string
	GeneratedFrom time.Time
	GeneratedTo   time.Time
}

// ReportRepository defines persistence for report snapshots. Reports are
// write-once: there is deliberately no Update.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	FindByID(ctx context.Context, id, shopID string) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]*domain.Report, error)
}

// ReportCache caches generated report payloads keyed by shop, type and range.
// A miss returns (nil, nil).
type ReportCache interface {
	Get(ctx context.Context, shopID string, reportType domain.ReportType, from, to time.Time) ([]byte, error)
	Set(ctx context.Context, shopID string, reportType domain.ReportType, from, to time.Time, payload []byte) error
}

// CreateReportInput carries the report generation payload.
type CreateReportInput struct {
	ReportType domain.ReportType
	StartDate  time.Time
	EndDate    time.Time
}

// ReportService generates and serves immutable report snapshots.
type ReportService interface {
	Create(ctx context.Context, actor *domain.AuthContext, input CreateReportInput) (*domain.Report, error)
	Get(ctx context.Context, id, shopID string) (*domain.Report, error)
	List(ctx context.Context, filter ReportFilter) ([]*domain.Report, error)
}
