package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// PurchaseService implements the restocking posting workflow. It mirrors the
// invoice workflow with a supplier in place of a customer, no stock
// precondition, and an expense ledger entry.
type PurchaseService struct {
	purchases    ports.PurchaseRepository
	suppliers    ports.SupplierRepository
	products     ports.ProductRepository
	transactions ports.TransactionRepository
	counters     ports.CounterRepository
	tx           ports.TxRunner
	logger       zerolog.Logger
}

func NewPurchaseService(
	purchases ports.PurchaseRepository,
	suppliers ports.SupplierRepository,
	products ports.ProductRepository,
	transactions ports.TransactionRepository,
	counters ports.CounterRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *PurchaseService {
	return &PurchaseService{
		purchases:    purchases,
		suppliers:    suppliers,
		products:     products,
		transactions: transactions,
		counters:     counters,
		tx:           tx,
		logger:       logger,
	}
}

// Create posts a purchase. The supplier and every product must exist in the
// acting shop. Stock is intentionally not incremented; see the note on
// domain.Purchase. The document and its expense ledger entry commit together.
func (s *PurchaseService) Create(ctx context.Context, actor *domain.AuthContext, input ports.CreatePurchaseInput) (*domain.Purchase, error) {
	supplier, err := s.suppliers.FindByID(ctx, input.SupplierID, actor.ShopID)
	if err != nil {
		return nil, err
	}

	lineProducts := make([]*domain.Product, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.products.FindByID(ctx, line.ProductID, actor.ShopID)
		if err != nil {
			return nil, err
		}
		lineProducts = append(lineProducts, product)
	}

	now := time.Now().UTC()
	purchase := &domain.Purchase{
		ShopID:     actor.ShopID,
		SupplierID: supplier.ID,
		Date:       now,
		DueDate:    now.AddDate(0, 0, documentDueDays),
		TaxAmount:  input.TaxAmount,
		Status:     domain.PurchaseDraft,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i, line := range input.Items {
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			CostAtPurchase: lineProducts[i].Cost,
		})
	}
	purchase.Recalculate()

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seq, err := s.counters.Next(ctx, actor.ShopID, ports.CounterPurchase)
		if err != nil {
			return fmt.Errorf("allocate purchase number: %w", err)
		}
		purchase.PurchaseNumber = formatDocumentNumber(purchasePrefix, seq)

		if err := s.purchases.Create(ctx, purchase); err != nil {
			return err
		}
		ledger := &domain.Transaction{
			ShopID:            actor.ShopID,
			Type:              domain.TransactionExpense,
			Category:          "purchase",
			Amount:            purchase.TotalAmount,
			Description:       fmt.Sprintf("purchase %s from %s", purchase.PurchaseNumber, supplier.Name),
			Date:              now,
			RelatedPurchaseID: purchase.ID,
			PaymentMethod:     domain.PaymentBankTransfer,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return s.transactions.Create(ctx, ledger)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("purchase_number", purchase.PurchaseNumber).
		Str("shop_id", actor.ShopID).
		Float64("total", purchase.TotalAmount).
		Msg("purchase posted")
	return purchase, nil
}

// Update records a payment and/or sets the status, mirroring invoice updates.
func (s *PurchaseService) Update(ctx context.Context, id, shopID string, update ports.DocumentUpdate) (*domain.Purchase, error) {
	purchase, err := s.purchases.FindByID(ctx, id, shopID)
	if err != nil {
		return nil, err
	}

	if update.AmountPaid != nil {
		purchase.ApplyPayment(*update.AmountPaid)
	}
	if update.Status != nil && *update.Status != "" {
		purchase.Status = domain.PurchaseStatus(*update.Status)
	}
	purchase.Recalculate()
	purchase.UpdatedAt = time.Now().UTC()

	if err := s.purchases.Update(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *PurchaseService) Get(ctx context.Context, id, shopID string) (*domain.Purchase, error) {
	return s.purchases.FindByID(ctx, id, shopID)
}

func (s *PurchaseService) List(ctx context.Context, filter ports.DocumentFilter) ([]*domain.Purchase, error) {
	return s.purchases.List(ctx, filter)
}
