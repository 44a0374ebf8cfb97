package domain

import "time"

// PurchaseStatus is the state of a restocking purchase order.
type PurchaseStatus string

const (
	PurchaseDraft         PurchaseStatus = "draft"
	PurchaseOrdered       PurchaseStatus = "ordered"
	PurchaseReceived      PurchaseStatus = "received"
	PurchasePaid          PurchaseStatus = "paid"
	PurchasePartiallyPaid PurchaseStatus = "partially_paid"
	PurchaseOverdue       PurchaseStatus = "overdue"
	PurchaseCancelled     PurchaseStatus = "cancelled"
)

// PurchaseItem is an embedded line on a purchase.
type PurchaseItem struct {
	ProductID      string  `json:"product_id" bson:"product_id"`
	Quantity       int64   `json:"quantity" bson:"quantity"`
	CostAtPurchase float64 `json:"cost_at_purchase" bson:"cost_at_purchase"`
}

// Purchase mirrors Invoice with a supplier in place of a customer and cost in
// place of sale price. Same derived-field rules.
//
// Posting a purchase does NOT increase product stock. The original system
// never did, and the gap is preserved pending a product decision; restocking
// happens through the explicit stock-adjust endpoint.
type Purchase struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	ShopID         string         `json:"shop_id" bson:"shop_id"`
	SupplierID     string         `json:"supplier_id" bson:"supplier_id"`
	PurchaseNumber string         `json:"purchase_number" bson:"purchase_number"`
	Date           time.Time      `json:"date" bson:"date"`
	DueDate        time.Time      `json:"due_date" bson:"due_date"`
	Items          []PurchaseItem `json:"items" bson:"items"`
	SubTotal       float64        `json:"sub_total" bson:"sub_total"`
	TaxAmount      float64        `json:"tax_amount" bson:"tax_amount"`
	TotalAmount    float64        `json:"total_amount" bson:"total_amount"`
	AmountPaid     float64        `json:"amount_paid" bson:"amount_paid"`
	BalanceDue     float64        `json:"balance_due" bson:"balance_due"`
	Status         PurchaseStatus `json:"status" bson:"status"`
	Notes          string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// Recalculate recomputes the derived money fields from the line items.
func (p *Purchase) Recalculate() {
	var sub float64
	for _, item := range p.Items {
		sub += float64(item.Quantity) * item.CostAtPurchase
	}
	p.SubTotal = sub
	p.TotalAmount = p.SubTotal + p.TaxAmount
	p.BalanceDue = p.TotalAmount - p.AmountPaid
}

// ApplyPayment records a payment and derives the status.
func (p *Purchase) ApplyPayment(amountPaid float64) {
	p.AmountPaid = amountPaid
	p.BalanceDue = p.TotalAmount - amountPaid
	switch {
	case amountPaid >= p.TotalAmount:
		p.Status = PurchasePaid
	case amountPaid > 0:
		p.Status = PurchasePartiallyPaid
	}
}
