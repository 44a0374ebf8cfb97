package domain

import "time"

// InvoiceStatus is the payment/delivery state of a sales invoice.
type InvoiceStatus string

const (
	InvoiceDraft         InvoiceStatus = "draft"
	InvoiceSent          InvoiceStatus = "sent"
	InvoicePaid          InvoiceStatus = "paid"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

// InvoiceItem is an embedded line on an invoice. Lines are owned by their
// document and not independently addressable.
type InvoiceItem struct {
	ProductID   string  `json:"product_id" bson:"product_id"`
	Quantity    int64   `json:"quantity" bson:"quantity"`
	PriceAtSale float64 `json:"price_at_sale" bson:"price_at_sale"`
}

// Invoice is a sales document. SubTotal, TotalAmount and BalanceDue are
// derived fields: call Recalculate before every persist.
type Invoice struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	ShopID        string        `json:"shop_id" bson:"shop_id"`
	CustomerID    string        `json:"customer_id" bson:"customer_id"`
	InvoiceNumber string        `json:"invoice_number" bson:"invoice_number"`
	Date          time.Time     `json:"date" bson:"date"`
	DueDate       time.Time     `json:"due_date" bson:"due_date"`
	Items         []InvoiceItem `json:"items" bson:"items"`
	SubTotal      float64       `json:"sub_total" bson:"sub_total"`
	TaxAmount     float64       `json:"tax_amount" bson:"tax_amount"`
	TotalAmount   float64       `json:"total_amount" bson:"total_amount"`
	AmountPaid    float64       `json:"amount_paid" bson:"amount_paid"`
	BalanceDue    float64       `json:"balance_due" bson:"balance_due"`
	Status        InvoiceStatus `json:"status" bson:"status"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// Recalculate recomputes the derived money fields from the line items:
// subtotal = Σ(quantity × price), total = subtotal + tax, balance = total − paid.
func (i *Invoice) Recalculate() {
	var sub float64
	for _, item := range i.Items {
		sub += float64(item.Quantity) * item.PriceAtSale
	}
	i.SubTotal = sub
	i.TotalAmount = i.SubTotal + i.TaxAmount
	i.BalanceDue = i.TotalAmount - i.AmountPaid
}

// ApplyPayment records a payment and derives the status: paid when fully
// covered, partially_paid when partially, otherwise the status is untouched.
func (i *Invoice) ApplyPayment(amountPaid float64) {
	i.AmountPaid = amountPaid
	i.BalanceDue = i.TotalAmount - amountPaid
	switch {
	case amountPaid >= i.TotalAmount:
		i.Status = InvoicePaid
	case amountPaid > 0:
		i.Status = InvoicePartiallyPaid
	}
}
