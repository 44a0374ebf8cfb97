package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ReportService generates report snapshots from the document and ledger
// stores. Generated payloads are cached; the persisted Report record is the
// immutable source of truth.
type ReportService struct {
	reports      ports.ReportRepository
	invoices     ports.InvoiceRepository
	purchases    ports.PurchaseRepository
	transactions ports.TransactionRepository
	products     ports.ProductRepository
	cache        ports.ReportCache
	logger       zerolog.Logger
}

func NewReportService(
	reports ports.ReportRepository,
	invoices ports.InvoiceRepository,
	purchases ports.PurchaseRepository,
	transactions ports.TransactionRepository,
	products ports.ProductRepository,
	cache ports.ReportCache,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		reports:      reports,
		invoices:     invoices,
		purchases:    purchases,
		transactions: transactions,
		products:     products,
		cache:        cache,
		logger:       logger,
	}
}

// Create generates the requested aggregation and persists it as a write-once
// report. Generation failures surface as a generic report error; the cause is
// kept in the logs only.
func (s *ReportService) Create(ctx context.Context, actor *domain.AuthContext, input ports.CreateReportInput) (*domain.Report, error) {
	data, err := s.generate(ctx, actor.ShopID, input)
	if err != nil {
		if err == domain.ErrUnknownReportType {
			return nil, err
		}
		s.logger.Error().Err(err).
			Str("shop_id", actor.ShopID).
			Str("report_type", string(input.ReportType)).
			Msg("report generation failed")
		return nil, domain.ErrReportGeneration
	}

	report := &domain.Report{
		ShopID:      actor.ShopID,
		ReportType:  input.ReportType,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		GeneratedAt: time.Now().UTC(),
		Data:        data,
		GeneratedBy: actor.UserID,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Get(ctx context.Context, id, shopID string) (*domain.Report, error) {
	return s.reports.FindByID(ctx, id, shopID)
}

func (s *ReportService) List(ctx context.Context, filter ports.ReportFilter) ([]*domain.Report, error) {
	return s.reports.List(ctx, filter)
}

func (s *ReportService) generate(ctx context.Context, shopID string, input ports.CreateReportInput) (any, error) {
	if cached := s.fromCache(ctx, shopID, input); cached != nil {
		return cached, nil
	}

	var (
		data any
		err  error
	)
	switch input.ReportType {
	case domain.ReportProfitLoss:
		data, err = s.profitLoss(ctx, shopID, input.StartDate, input.EndDate)
	case domain.ReportSalesByProduct:
		data, err = s.salesByProduct(ctx, shopID, input.StartDate, input.EndDate)
	case domain.ReportExpensesByCategory:
		data, err = s.expensesByCategory(ctx, shopID, input.StartDate, input.EndDate)
	default:
		return nil, domain.ErrUnknownReportType
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, shopID, input, data)
	return data, nil
}

func (s *ReportService) profitLoss(ctx context.Context, shopID string, from, to time.Time) (*domain.ProfitLossData, error) {
	totalSales, err := s.invoices.SumPaidTotals(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum paid invoices: %w", err)
	}
	totalPurchases, err := s.purchases.SumTotals(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum purchases: %w", err)
	}

	net := totalSales - totalPurchases
	var margin float64
	if totalSales > 0 {
		margin = net / totalSales * 100
	}
	return &domain.ProfitLossData{
		TotalSales:     totalSales,
		TotalPurchases: totalPurchases,
		NetProfit:      net,
		ProfitMargin:   margin,
	}, nil
}

func (s *ReportService) salesByProduct(ctx context.Context, shopID string, from, to time.Time) (*domain.SalesData, error) {
	invoices, err := s.invoices.ListPaidInRange(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list paid invoices: %w", err)
	}

	data := &domain.SalesData{
		TotalInvoices:  int64(len(invoices)),
		SalesByProduct: make(map[string]domain.ProductSales),
		DailySales:     make(map[string]float64),
	}
	names := make(map[string]string)

	for _, inv := range invoices {
		day := inv.Date.UTC().Format("2006-01-02")
		data.DailySales[day] += inv.TotalAmount
		data.TotalSales += inv.TotalAmount

		for _, item := range inv.Items {
			name, ok := names[item.ProductID]
			if !ok {
				if product, err := s.products.FindByID(ctx, item.ProductID, shopID); err == nil {
					name = product.Name
				}
				names[item.ProductID] = name
			}
			entry := data.SalesByProduct[item.ProductID]
			entry.Name = name
			entry.Quantity += item.Quantity
			entry.Total += float64(item.Quantity) * item.PriceAtSale
			data.SalesByProduct[item.ProductID] = entry
		}
	}
	return data, nil
}

func (s *ReportService) expensesByCategory(ctx context.Context, shopID string, from, to time.Time) (*domain.ExpensesData, error) {
	byCategory, err := s.transactions.ExpensesByCategory(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("group expenses by category: %w", err)
	}
	byMonth, err := s.transactions.ExpensesByMonth(ctx, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("group expenses by month: %w", err)
	}

	var total float64
	for _, row := range byCategory {
		total += row.Total
	}
	return &domain.ExpensesData{
		TotalExpenses:      total,
		ExpensesByCategory: byCategory,
		MonthlyExpenses:    byMonth,
	}, nil
}

// fromCache returns a previously generated payload for the same shop, type
// and range, or nil. Cache failures are treated as misses.
func (s *ReportService) fromCache(ctx context.Context, shopID string, input ports.CreateReportInput) any {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, shopID, input.ReportType, input.StartDate, input.EndDate)
	if err != nil || payload == nil {
		return nil
	}

	var data any
	switch input.ReportType {
	case domain.ReportProfitLoss:
		data = &domain.ProfitLossData{}
	case domain.ReportSalesByProduct:
		data = &domain.SalesData{}
	case domain.ReportExpensesByCategory:
		data = &domain.ExpensesData{}
	default:
		return nil
	}
	if err := json.Unmarshal(payload, data); err != nil {
		s.logger.Warn().Err(err).Str("shop_id", shopID).Msg("discarding corrupt cached report")
		return nil
	}
	return data
}

func (s *ReportService) toCache(ctx context.Context, shopID string, input ports.CreateReportInput, data any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, shopID, input.ReportType, input.StartDate, input.EndDate, payload); err != nil {
		s.logger.Warn().Err(err).Str("shop_id", shopID).Msg("failed to cache report payload")
	}
}
