package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

const documentDueDays = 30

// InvoiceService implements the sales posting workflow: one invoice, its
// stock decrements, and the income ledger entry commit as a unit.
type InvoiceService struct {
	invoices     ports.InvoiceRepository
	customers    ports.CustomerRepository
	products     ports.ProductRepository
	transactions ports.TransactionRepository
	counters     ports.CounterRepository
	tx           ports.TxRunner
	alerts       ports.StockAlertNotifier
	logger       zerolog.Logger
}

func NewInvoiceService(
	invoices ports.InvoiceRepository,
	customers ports.CustomerRepository,
	products ports.ProductRepository,
	transactions ports.TransactionRepository,
	counters ports.CounterRepository,
	tx ports.TxRunner,
	alerts ports.StockAlertNotifier,
	logger zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoices:     invoices,
		customers:    customers,
		products:     products,
		transactions: transactions,
		counters:     counters,
		tx:           tx,
		alerts:       alerts,
		logger:       logger,
	}
}

// Create posts an invoice. Preconditions are checked in order before any
// write: the customer must exist in the acting shop, every product must exist
// in the acting shop, and every line's quantity must be covered by stock.
// The invoice, the stock decrements and the ledger entry are then written
// inside a single transaction; a failure anywhere aborts everything.
func (s *InvoiceService) Create(ctx context.Context, actor *domain.AuthContext, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID, actor.ShopID)
	if err != nil {
		return nil, err
	}

	lineProducts := make([]*domain.Product, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.products.FindByID(ctx, line.ProductID, actor.ShopID)
		if err != nil {
			return nil, err
		}
		if product.StockQuantity < line.Quantity {
			return nil, fmt.Errorf("%w: product %s has %d, requested %d",
				domain.ErrInsufficientStock, product.Name, product.StockQuantity, line.Quantity)
		}
		lineProducts = append(lineProducts, product)
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ShopID:     actor.ShopID,
		CustomerID: customer.ID,
		Date:       now,
		DueDate:    now.AddDate(0, 0, documentDueDays),
		TaxAmount:  input.TaxAmount,
		Status:     domain.InvoiceDraft,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, line := range input.Items {
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			PriceAtSale: lineProducts[i].Price,
		})
	}
	invoice.Recalculate()

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seq, err := s.counters.Next(ctx, actor.ShopID, ports.CounterInvoice)
		if err != nil {
			return fmt.Errorf("allocate invoice number: %w", err)
		}
		invoice.InvoiceNumber = formatDocumentNumber(invoicePrefix, seq)

		if err := s.invoices.Create(ctx, invoice); err != nil {
			return err
		}
		for _, line := range input.Items {
			if err := s.products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				return fmt.Errorf("decrement stock for %s: %w", line.ProductID, err)
			}
		}
		ledger := &domain.Transaction{
			ShopID:            actor.ShopID,
			Type:              domain.TransactionIncome,
			Category:          "sale",
			Amount:            invoice.TotalAmount,
			Description:       fmt.Sprintf("sales invoice %s for %s", invoice.InvoiceNumber, customer.Name),
			Date:              now,
			RelatedInvoiceID:  invoice.ID,
			RelatedEmployeeID: actor.EmployeeID,
			PaymentMethod:     domain.PaymentCash,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return s.transactions.Create(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	if s.alerts != nil {
		checks := make([]ports.StockCheck, 0, len(input.Items))
		for _, line := range input.Items {
			checks = append(checks, ports.StockCheck{ShopID: actor.ShopID, ProductID: line.ProductID})
		}
		s.alerts.NotifySale(checks)
	}

	s.logger.Info().
		Str("invoice_number", invoice.InvoiceNumber).
		Str("shop_id", actor.ShopID).
		Float64("total", invoice.TotalAmount).
		Msg("invoice posted")
	return invoice, nil
}

// Update records a payment and/or sets the status. An explicitly supplied
// status overrides the one derived from the amount paid. No stock or ledger
// side effects.
func (s *InvoiceService) Update(ctx context.Context, id, shopID string, update ports.DocumentUpdate) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.AmountPaid != nil {
		invoice.ApplyPayment(*update.AmountPaid)
	}
	if update.Status != nil && *update.Status != "" {
		invoice.Status = domain.InvoiceStatus(*update.Status)
	}
	invoice.Recalculate()
	invoice.UpdatedAt = time.Now().UTC()

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, id, shopID string) (*domain.Invoice, error) {
	return s.invoices.FindByID(ctx, id, shopID)
}

func (s *InvoiceService) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Invoice, error) {
	return s.invoices.List(ctx, filter)
}
