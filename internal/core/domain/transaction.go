package domain

import "time"

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Payment methods.
const (
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
	PaymentCard         = "card"
	PaymentCheque       = "cheque"
	PaymentOther        = "other"
)

// Transaction is a free-form ledger entry, optionally linked to the document
// or employee that produced it.
type Transaction struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	ShopID            string    `json:"shop_id" bson:"shop_id"`
	Type              string    `json:"type" bson:"type"`
	Category          string    `json:"category" bson:"category"`
	Amount            float64   `json:"amount" bson:"amount"`
	Description       string    `json:"description,omitempty" bson:"description,omitempty"`
	Date              time.Time `json:"date" bson:"date"`
	RelatedInvoiceID  string    `json:"related_invoice_id,omitempty" bson:"related_invoice_id,omitempty"`
	RelatedPurchaseID string    `json:"related_purchase_id,omitempty" bson:"related_purchase_id,omitempty"`
	RelatedEmployeeID string    `json:"related_employee_id,omitempty" bson:"related_employee_id,omitempty"`
	PaymentMethod     string    `json:"payment_method" bson:"payment_method"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// TransactionStats is the aggregate view served by the stats endpoint.
type TransactionStats struct {
	Income            float64 `json:"income"`
	Expense           float64 `json:"expense"`
	Balance           float64 `json:"balance"`
	TotalTransactions int64   `json:"total_transactions"`
}
