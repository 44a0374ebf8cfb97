package domain

import "time"

// Stock adjustment actions accepted by the stock endpoint.
const (
	StockActionAdd      = "add"
	StockActionSubtract = "subtract"
	StockActionSet      = "set"
)

// DefaultReorderLevel is the stock quantity below which a low-stock alert is
// raised when a sale drains inventory.
const DefaultReorderLevel = 5

// Product is a catalog entry with on-hand stock. SKU is unique store-wide,
// not per shop; see the cross-tenant collision note in DESIGN.md.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	ShopID        string    `json:"shop_id" bson:"shop_id"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Price         float64   `json:"price" bson:"price"`
	Cost          float64   `json:"cost,omitempty" bson:"cost,omitempty"`
	SKU           string    `json:"sku,omitempty" bson:"sku,omitempty"`
	Category      string    `json:"category,omitempty" bson:"category,omitempty"`
	StockQuantity int64     `json:"stock_quantity" bson:"stock_quantity"`
	Unit          string    `json:"unit" bson:"unit"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// AdjustStock applies a stock action. Subtracting below zero clamps to zero.
func (p *Product) AdjustStock(action string, quantity int64) error {
	switch action {
	case StockActionAdd:
		p.StockQuantity += quantity
	case StockActionSubtract:
		p.StockQuantity -= quantity
		if p.StockQuantity < 0 {
			p.StockQuantity = 0
		}
	case StockActionSet:
		p.StockQuantity = quantity
	default:
		return ErrInvalidStockAction
	}
	return nil
}
