package domain

import "time"

// ReportType selects the aggregation a report runs.
type ReportType string

const (
	ReportProfitLoss         ReportType = "profit_loss"
	ReportSalesByProduct     ReportType = "sales_by_product"
	ReportExpensesByCategory ReportType = "expenses_by_category"
)

// Report is a write-once snapshot of an aggregation run. There is no update
// operation; regenerating produces a new record.
type Report struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	ShopID      string     `json:"shop_id" bson:"shop_id"`
	ReportType  ReportType `json:"report_type" bson:"report_type"`
	StartDate   time.Time  `json:"start_date" bson:"start_date"`
	EndDate     time.Time  `json:"end_date" bson:"end_date"`
	GeneratedAt time.Time  `json:"generated_at" bson:"generated_at"`
	Data        any        `json:"data" bson:"data"`
	GeneratedBy string     `json:"generated_by" bson:"generated_by"`
}

// ProfitLossData is the payload of a profit_loss report.
type ProfitLossData struct {
	TotalSales     float64 `json:"total_sales" bson:"total_sales"`
	TotalPurchases float64 `json:"total_purchases" bson:"total_purchases"`
	NetProfit      float64 `json:"net_profit" bson:"net_profit"`
	ProfitMargin   float64 `json:"profit_margin" bson:"profit_margin"`
}

// ProductSales is the per-product slice of a sales_by_product report.
type ProductSales struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Total    float64 `json:"total" bson:"total"`
}

// SalesData is the payload of a sales_by_product report.
type SalesData struct {
	TotalSales     float64                 `json:"total_sales" bson:"total_sales"`
	TotalInvoices  int64                   `json:"total_invoices" bson:"total_invoices"`
	SalesByProduct map[string]ProductSales `json:"sales_by_product" bson:"sales_by_product"`
	DailySales     map[string]float64      `json:"daily_sales" bson:"daily_sales"`
}

// CategoryExpense is one row of an expenses_by_category report.
type CategoryExpense struct {
	Category string  `json:"category" bson:"category"`
	Total    float64 `json:"total" bson:"total"`
}

// MonthlyExpense is one month's expense total, Month formatted "YYYY-M".
type MonthlyExpense struct {
	Month string  `json:"month" bson:"month"`
	Total float64 `json:"total" bson:"total"`
}

// ExpensesData is the payload of an expenses_by_category report.
type ExpensesData struct {
	TotalExpenses      float64           `json:"total_expenses" bson:"total_expenses"`
	ExpensesByCategory []CategoryExpense `json:"expenses_by_category" bson:"expenses_by_category"`
	MonthlyExpenses    []MonthlyExpense  `json:"monthly_expenses" bson:"monthly_expenses"`
}
