package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// TransactionService implements free-form ledger entries and stats.
type TransactionService struct {
	transactions ports.TransactionRepository
	shops        ports.ShopRepository
	logger       zerolog.Logger
}

func NewTransactionService(transactions ports.TransactionRepository, shops ports.ShopRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{transactions: transactions, shops: shops, logger: logger}
}

func (s *TransactionService) Create(ctx context.Context, shopID string, input ports.CreateTransactionInput) (*domain.Transaction, error) {
	if _, err := s.shops.FindByID(ctx, shopID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx := &domain.Transaction{
		ShopID:            shopID,
		Type:              input.Type,
		Category:          input.Category,
		Amount:            input.Amount,
		Description:       input.Description,
		Date:              now,
		RelatedInvoiceID:  input.RelatedInvoiceID,
		RelatedPurchaseID: input.RelatedPurchaseID,
		RelatedEmployeeID: input.RelatedEmployeeID,
		PaymentMethod:     input.PaymentMethod,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if tx.PaymentMethod == "" {
		tx.PaymentMethod = domain.PaymentCash
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, filter ports.TransactionFilter) ([]*domain.Transaction, error) {
	return s.transactions.List(ctx, filter)
}

func (s *TransactionService) Stats(ctx context.Context, shopID string, from, to time.Time) (*domain.TransactionStats, error) {
	return s.transactions.Stats(ctx, shopID, from, to)
}
