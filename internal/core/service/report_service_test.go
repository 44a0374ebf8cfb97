package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

type reportFixture struct {
	service   *ReportService
	reports   *stubReportRepo
	invoices  *stubInvoiceRepo
	purchases *stubPurchaseRepo
	ledger    *stubTransactionRepo
	products  *stubProductRepo
	cache     *stubReportCache
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		reports:   newStubReportRepo(),
		invoices:  newStubInvoiceRepo(),
		purchases: newStubPurchaseRepo(),
		ledger:    newStubTransactionRepo(),
		products:  newStubProductRepo(),
		cache:     newStubReportCache(),
	}
	f.service = NewReportService(f.reports, f.invoices, f.purchases, f.ledger, f.products, f.cache, discardLogger)
	return f
}

var (
	reportFrom = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reportTo   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func (f *reportFixture) seedPaidInvoice(shopID string, date time.Time, total float64, items ...domain.InvoiceItem) {
	_ = f.invoices.Create(context.Background(), &domain.Invoice{
		ShopID:      shopID,
		Date:        date,
		Items:       items,
		TotalAmount: total,
		Status:      domain.InvoicePaid,
	})
}

func reportInput(reportType domain.ReportType) ports.CreateReportInput {
	return ports.CreateReportInput{
		ReportType: reportType,
		StartDate:  reportFrom,
		EndDate:    reportTo,
	}
}

func TestReportProfitLoss(t *testing.T) {
	f := newReportFixture()
	mid := reportFrom.AddDate(0, 1, 0)

	f.seedPaidInvoice("shop-a", mid, 200)
	f.seedPaidInvoice("shop-a", mid, 100)
	_ = f.purchases.Create(context.Background(), &domain.Purchase{
		ShopID:      "shop-a",
		Date:        mid,
		TotalAmount: 120,
	})

	report, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	data, ok := report.Data.(*domain.ProfitLossData)
	if !ok {
		t.Fatalf("expected ProfitLossData payload, got %T", report.Data)
	}
	if data.TotalSales != 300 {
		t.Errorf("expected total sales 300, got %v", data.TotalSales)
	}
	if data.TotalPurchases != 120 {
		t.Errorf("expected total purchases 120, got %v", data.TotalPurchases)
	}
	if data.NetProfit != 180 {
		t.Errorf("expected net profit 180, got %v", data.NetProfit)
	}
	if data.ProfitMargin != 60 {
		t.Errorf("expected margin 60, got %v", data.ProfitMargin)
	}
	if report.GeneratedBy != "user-1" {
		t.Errorf("expected generated_by user-1, got %q", report.GeneratedBy)
	}
}

func TestReportProfitLossZeroSales(t *testing.T) {
	f := newReportFixture()

	report, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	data := report.Data.(*domain.ProfitLossData)
	if data.ProfitMargin != 0 {
		t.Errorf("expected margin 0 with no sales, got %v", data.ProfitMargin)
	}
}

func TestReportSalesByProduct(t *testing.T) {
	f := newReportFixture()
	day1 := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 2, 11, 9, 0, 0, 0, time.UTC)

	tea := &domain.Product{ShopID: "shop-a", Name: "Green Tea"}
	_ = f.products.Create(context.Background(), tea)

	f.seedPaidInvoice("shop-a", day1, 30, domain.InvoiceItem{ProductID: tea.ID, Quantity: 3, PriceAtSale: 10})
	f.seedPaidInvoice("shop-a", day2, 20, domain.InvoiceItem{ProductID: tea.ID, Quantity: 2, PriceAtSale: 10})

	report, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportSalesByProduct))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	data, ok := report.Data.(*domain.SalesData)
	if !ok {
		t.Fatalf("expected SalesData payload, got %T", report.Data)
	}
	if data.TotalInvoices != 2 {
		t.Errorf("expected 2 invoices, got %d", data.TotalInvoices)
	}
	if data.TotalSales != 50 {
		t.Errorf("expected total sales 50, got %v", data.TotalSales)
	}

	entry := data.SalesByProduct[tea.ID]
	if entry.Name != "Green Tea" {
		t.Errorf("expected product name resolved, got %q", entry.Name)
	}
	if entry.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", entry.Quantity)
	}
	if entry.Total != 50 {
		t.Errorf("expected product total 50, got %v", entry.Total)
	}

	if data.DailySales["2024-02-10"] != 30 {
		t.Errorf("expected 30 on 2024-02-10, got %v", data.DailySales["2024-02-10"])
	}
	if data.DailySales["2024-02-11"] != 20 {
		t.Errorf("expected 20 on 2024-02-11, got %v", data.DailySales["2024-02-11"])
	}
}

func TestReportExpensesByCategory(t *testing.T) {
	f := newReportFixture()
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	for _, tx := range []*domain.Transaction{
		{ShopID: "shop-a", Type: domain.TransactionExpense, Category: "rent", Amount: 500, Date: jan},
		{ShopID: "shop-a", Type: domain.TransactionExpense, Category: "rent", Amount: 500, Date: feb},
		{ShopID: "shop-a", Type: domain.TransactionExpense, Category: "utilities", Amount: 80, Date: feb},
		{ShopID: "shop-a", Type: domain.TransactionIncome, Category: "sale", Amount: 999, Date: feb},
	} {
		_ = f.ledger.Create(context.Background(), tx)
	}

	report, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportExpensesByCategory))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	data, ok := report.Data.(*domain.ExpensesData)
	if !ok {
		t.Fatalf("expected ExpensesData payload, got %T", report.Data)
	}
	if data.TotalExpenses != 1080 {
		t.Errorf("expected total expenses 1080, got %v", data.TotalExpenses)
	}
	if len(data.ExpensesByCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(data.ExpensesByCategory))
	}
	if len(data.MonthlyExpenses) != 2 {
		t.Fatalf("expected 2 months, got %d", len(data.MonthlyExpenses))
	}
}

func TestReportUnknownType(t *testing.T) {
	f := newReportFixture()

	_, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput("inventory_valuation"))
	if !errors.Is(err, domain.ErrUnknownReportType) {
		t.Fatalf("expected ErrUnknownReportType, got %v", err)
	}
	if len(f.reports.byID) != 0 {
		t.Errorf("expected no report persisted, got %d", len(f.reports.byID))
	}
}

func TestReportGenerationFailureIsOpaque(t *testing.T) {
	f := newReportFixture()
	f.invoices.sumErr = errors.New("store unavailable")

	_, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss))
	if !errors.Is(err, domain.ErrReportGeneration) {
		t.Fatalf("expected ErrReportGeneration, got %v", err)
	}
}

func TestReportSecondRunServedFromCache(t *testing.T) {
	f := newReportFixture()
	f.seedPaidInvoice("shop-a", reportFrom.AddDate(0, 1, 0), 200)

	first, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss))
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	// Data written after the first run must not leak into the cached result.
	f.invoices.sumErr = errors.New("store unavailable")

	second, err := f.service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss))
	if err != nil {
		t.Fatalf("second Create returned error: %v", err)
	}
	if f.cache.hits != 1 {
		t.Errorf("expected one cache hit, got %d", f.cache.hits)
	}

	firstData := first.Data.(*domain.ProfitLossData)
	secondData := second.Data.(*domain.ProfitLossData)
	if secondData.TotalSales != firstData.TotalSales {
		t.Errorf("expected cached payload %v, got %v", firstData.TotalSales, secondData.TotalSales)
	}
}

func TestReportNilCache(t *testing.T) {
	f := newReportFixture()
	service := NewReportService(f.reports, f.invoices, f.purchases, f.ledger, f.products, nil, discardLogger)

	if _, err := service.Create(context.Background(), actorFor("shop-a"), reportInput(domain.ReportProfitLoss)); err != nil {
		t.Fatalf("Create with nil cache returned error: %v", err)
	}
}
