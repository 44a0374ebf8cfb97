package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. Each stub mirrors
// the filters and error mapping of the real Mongo repository.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	if u.ID == "" {
		r.seq++
		u.ID = fmt.Sprintf("user-%d", r.seq)
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range r.byID {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

type stubShopRepo struct {
	byID map[string]*domain.Shop
	seq  int
}

func newStubShopRepo() *stubShopRepo {
	return &stubShopRepo{byID: make(map[string]*domain.Shop)}
}

func (r *stubShopRepo) Create(_ context.Context, s *domain.Shop) error {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("shop-%d", r.seq)
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubShopRepo) FindByID(_ context.Context, id string) (*domain.Shop, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrShopNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubShopRepo) FindByOwner(_ context.Context, ownerID string) (*domain.Shop, error) {
	for _, s := range r.byID {
		if s.OwnerID == ownerID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrShopNotFound
}

func (r *stubShopRepo) Update(_ context.Context, s *domain.Shop) error {
	if _, ok := r.byID[s.ID]; !ok {
		return domain.ErrShopNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

type stubProductRepo struct {
	byID map[string]*domain.Product
	seq  int
	// beforeDecrement runs at the top of DecrementStock. Tests use it to
	// mutate stock between a service's availability read and its write.
	beforeDecrement func()
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

// Create enforces SKU uniqueness across all shops, mirroring the real unique
// index.
func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if p.SKU != "" {
		for _, existing := range r.byID {
			if existing.SKU == p.SKU {
				return domain.ErrDuplicateSKU
			}
		}
	}
	if p.ID == "" {
		r.seq++
		p.ID = fmt.Sprintf("product-%d", r.seq)
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id, shopID string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok || p.ShopID != shopID {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	stored, ok := r.byID[p.ID]
	if !ok || stored.ShopID != p.ShopID {
		return domain.ErrProductNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, error) {
	var matched []*domain.Product
	for _, p := range r.byID {
		if p.ShopID != f.ShopID {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.IsActive != nil && p.IsActive != *f.IsActive {
			continue
		}
		if f.Search != "" {
			s := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), s) &&
				!strings.Contains(strings.ToLower(p.Description), s) &&
				!strings.Contains(strings.ToLower(p.SKU), s) {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}
	return matched, nil
}

// DecrementStock refuses to take stock below zero, mirroring the guarded
// conditional update in the real repository.
func (r *stubProductRepo) DecrementStock(_ context.Context, id string, quantity int64) error {
	if r.beforeDecrement != nil {
		r.beforeDecrement()
	}
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if p.StockQuantity < quantity {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	return nil
}

type stubCustomerRepo struct {
	byID map[string]*domain.Customer
	seq  int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{byID: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if c.ID == "" {
		r.seq++
		c.ID = fmt.Sprintf("customer-%d", r.seq)
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id, shopID string) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok || c.ShopID != shopID {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	stored, ok := r.byID[c.ID]
	if !ok || stored.ShopID != c.ShopID {
		return domain.ErrCustomerNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context, f ports.PartyFilter) ([]*domain.Customer, error) {
	var matched []*domain.Customer
	for _, c := range r.byID {
		if c.ShopID != f.ShopID {
			continue
		}
		if f.IsActive != nil && c.IsActive != *f.IsActive {
			continue
		}
		clone := *c
		matched = append(matched, &clone)
	}
	return matched, nil
}

type stubSupplierRepo struct {
	byID map[string]*domain.Supplier
	seq  int
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{byID: make(map[string]*domain.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *domain.Supplier) error {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("supplier-%d", r.seq)
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id, shopID string) (*domain.Supplier, error) {
	s, ok := r.byID[id]
	if !ok || s.ShopID != shopID {
		return nil, domain.ErrSupplierNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *domain.Supplier) error {
	stored, ok := r.byID[s.ID]
	if !ok || stored.ShopID != s.ShopID {
		return domain.ErrSupplierNotFound
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubSupplierRepo) List(_ context.Context, f ports.PartyFilter) ([]*domain.Supplier, error) {
	var matched []*domain.Supplier
	for _, s := range r.byID {
		if s.ShopID != f.ShopID {
			continue
		}
		if f.IsActive != nil && s.IsActive != *f.IsActive {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	return matched, nil
}

type stubEmployeeRepo struct {
	byID map[string]*domain.Employee
	seq  int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: make(map[string]*domain.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	if e.ID == "" {
		r.seq++
		e.ID = fmt.Sprintf("employee-%d", r.seq)
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id, shopID string) (*domain.Employee, error) {
	e, ok := r.byID[id]
	if !ok || e.ShopID != shopID {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) FindByUser(_ context.Context, userID string) (*domain.Employee, error) {
	for _, e := range r.byID {
		if e.UserID == userID {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	stored, ok := r.byID[e.ID]
	if !ok || stored.ShopID != e.ShopID {
		return domain.ErrEmployeeNotFound
	}
	clone := *e
	r.byID[e.ID] = &clone
	return nil
}

func (r *stubEmployeeRepo) List(_ context.Context, f ports.EmployeeFilter) ([]*domain.Employee, error) {
	var matched []*domain.Employee
	for _, e := range r.byID {
		if e.ShopID != f.ShopID {
			continue
		}
		if f.IsActive != nil && e.IsActive != *f.IsActive {
			continue
		}
		if f.Position != "" && e.Position != f.Position {
			continue
		}
		clone := *e
		matched = append(matched, &clone)
	}
	return matched, nil
}

type stubTransactionRepo struct {
	entries   []*domain.Transaction
	seq       int
	createErr error
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{}
}

func (r *stubTransactionRepo) Create(_ context.Context, t *domain.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	if t.ID == "" {
		r.seq++
		t.ID = fmt.Sprintf("transaction-%d", r.seq)
	}
	clone := *t
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *stubTransactionRepo) List(_ context.Context, f ports.TransactionFilter) ([]*domain.Transaction, error) {
	var matched []*domain.Transaction
	for _, t := range r.entries {
		if t.ShopID != f.ShopID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if !f.DateFrom.IsZero() && t.Date.Before(f.DateFrom) {
			continue
		}
		if !f.DateTo.IsZero() && t.Date.After(f.DateTo) {
			continue
		}
		clone := *t
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubTransactionRepo) Stats(_ context.Context, shopID string, from, to time.Time) (*domain.TransactionStats, error) {
	stats := &domain.TransactionStats{}
	for _, t := range r.entries {
		if t.ShopID != shopID {
			continue
		}
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			stats.Income += t.Amount
		case domain.TransactionExpense:
			stats.Expense += t.Amount
		}
		stats.TotalTransactions++
	}
	stats.Balance = stats.Income - stats.Expense
	return stats, nil
}

func (r *stubTransactionRepo) ExpensesByCategory(_ context.Context, shopID string, from, to time.Time) ([]domain.CategoryExpense, error) {
	totals := make(map[string]float64)
	var order []string
	for _, t := range r.entries {
		if t.ShopID != shopID || t.Type != domain.TransactionExpense {
			continue
		}
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}
	var rows []domain.CategoryExpense
	for _, cat := range order {
		rows = append(rows, domain.CategoryExpense{Category: cat, Total: totals[cat]})
	}
	return rows, nil
}

func (r *stubTransactionRepo) ExpensesByMonth(_ context.Context, shopID string, from, to time.Time) ([]domain.MonthlyExpense, error) {
	totals := make(map[string]float64)
	var order []string
	for _, t := range r.entries {
		if t.ShopID != shopID || t.Type != domain.TransactionExpense {
			continue
		}
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		key := fmt.Sprintf("%d-%d", t.Date.Year(), int(t.Date.Month()))
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += t.Amount
	}
	var rows []domain.MonthlyExpense
	for _, month := range order {
		rows = append(rows, domain.MonthlyExpense{Month: month, Total: totals[month]})
	}
	return rows, nil
}

type stubInvoiceRepo struct {
	byID      map[string]*domain.Invoice
	seq       int
	createErr error
	sumErr    error
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{byID: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	if inv.ID == "" {
		r.seq++
		inv.ID = fmt.Sprintf("invoice-%d", r.seq)
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id, shopID string) (*domain.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok || inv.ShopID != shopID {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *domain.Invoice) error {
	stored, ok := r.byID[inv.ID]
	if !ok || stored.ShopID != inv.ShopID {
		return domain.ErrInvoiceNotFound
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *stubInvoiceRepo) List(_ context.Context, f ports.DocumentFilter) ([]*domain.Invoice, error) {
	var matched []*domain.Invoice
	for _, inv := range r.byID {
		if inv.ShopID != f.ShopID {
			continue
		}
		if f.PartyID != "" && inv.CustomerID != f.PartyID {
			continue
		}
		if f.Status != "" && string(inv.Status) != f.Status {
			continue
		}
		clone := *inv
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubInvoiceRepo) SumPaidTotals(_ context.Context, shopID string, from, to time.Time) (float64, error) {
	if r.sumErr != nil {
		return 0, r.sumErr
	}
	var total float64
	for _, inv := range r.byID {
		if inv.ShopID != shopID || inv.Status != domain.InvoicePaid {
			continue
		}
		if !from.IsZero() && inv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && inv.Date.After(to) {
			continue
		}
		total += inv.TotalAmount
	}
	return total, nil
}

func (r *stubInvoiceRepo) ListPaidInRange(_ context.Context, shopID string, from, to time.Time) ([]*domain.Invoice, error) {
	var matched []*domain.Invoice
	for _, inv := range r.byID {
		if inv.ShopID != shopID || inv.Status != domain.InvoicePaid {
			continue
		}
		if !from.IsZero() && inv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && inv.Date.After(to) {
			continue
		}
		clone := *inv
		matched = append(matched, &clone)
	}
	return matched, nil
}

type stubPurchaseRepo struct {
	byID map[string]*domain.Purchase
	seq  int
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{byID: make(map[string]*domain.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *domain.Purchase) error {
	if p.ID == "" {
		r.seq++
		p.ID = fmt.Sprintf("purchase-%d", r.seq)
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id, shopID string) (*domain.Purchase, error) {
	p, ok := r.byID[id]
	if !ok || p.ShopID != shopID {
		return nil, domain.ErrPurchaseNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPurchaseRepo) Update(_ context.Context, p *domain.Purchase) error {
	stored, ok := r.byID[p.ID]
	if !ok || stored.ShopID != p.ShopID {
		return domain.ErrPurchaseNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPurchaseRepo) List(_ context.Context, f ports.DocumentFilter) ([]*domain.Purchase, error) {
	var matched []*domain.Purchase
	for _, p := range r.byID {
		if p.ShopID != f.ShopID {
			continue
		}
		if f.PartyID != "" && p.SupplierID != f.PartyID {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	return matched, nil
}

func (r *stubPurchaseRepo) SumTotals(_ context.Context, shopID string, from, to time.Time) (float64, error) {
	var total float64
	for _, p := range r.byID {
		if p.ShopID != shopID {
			continue
		}
		if !from.IsZero() && p.Date.Before(from) {
			continue
		}
		if !to.IsZero() && p.Date.After(to) {
			continue
		}
		total += p.TotalAmount
	}
	return total, nil
}

type stubCounterRepo struct {
	counts  map[string]int64
	nextErr error
}

func newStubCounterRepo() *stubCounterRepo {
	return &stubCounterRepo{counts: make(map[string]int64)}
}

func (r *stubCounterRepo) Next(_ context.Context, shopID, kind string) (int64, error) {
	if r.nextErr != nil {
		return 0, r.nextErr
	}
	key := shopID + "/" + kind
	r.counts[key]++
	return r.counts[key], nil
}

// stubTxRunner executes the callback directly; abort semantics are covered by
// the error-propagation tests.
type stubTxRunner struct {
	calls int
}

func (t *stubTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type stubReportRepo struct {
	byID map[string]*domain.Report
	seq  int
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{byID: make(map[string]*domain.Report)}
}

func (r *stubReportRepo) Create(_ context.Context, report *domain.Report) error {
	if report.ID == "" {
		r.seq++
		report.ID = fmt.Sprintf("report-%d", r.seq)
	}
	clone := *report
	r.byID[report.ID] = &clone
	return nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id, shopID string) (*domain.Report, error) {
	report, ok := r.byID[id]
	if !ok || report.ShopID != shopID {
		return nil, domain.ErrReportNotFound
	}
	clone := *report
	return &clone, nil
}

func (r *stubReportRepo) List(_ context.Context, f ports.ReportFilter) ([]*domain.Report, error) {
	var matched []*domain.Report
	for _, report := range r.byID {
		if report.ShopID != f.ShopID {
			continue
		}
		if f.ReportType != "" && string(report.ReportType) != f.ReportType {
			continue
		}
		clone := *report
		matched = append(matched, &clone)
	}
	return matched, nil
}

type stubReportCache struct {
	store map[string][]byte
	gets  int
	hits  int
}

func newStubReportCache() *stubReportCache {
	return &stubReportCache{store: make(map[string][]byte)}
}

func (c *stubReportCache) cacheKey(shopID string, reportType domain.ReportType, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%d:%d", shopID, reportType, from.Unix(), to.Unix())
}

func (c *stubReportCache) Get(_ context.Context, shopID string, reportType domain.ReportType, from, to time.Time) ([]byte, error) {
	c.gets++
	payload, ok := c.store[c.cacheKey(shopID, reportType, from, to)]
	if !ok {
		return nil, nil
	}
	c.hits++
	return payload, nil
}

func (c *stubReportCache) Set(_ context.Context, shopID string, reportType domain.ReportType, from, to time.Time, payload []byte) error {
	c.store[c.cacheKey(shopID, reportType, from, to)] = payload
	return nil
}

// stubNotifier records the stock checks handed to it.
type stubNotifier struct {
	checks []ports.StockCheck
}

func (n *stubNotifier) NotifySale(checks []ports.StockCheck) {
	n.checks = append(n.checks, checks...)
}
