package domain

import "time"

// StockAlert records that a product's on-hand quantity fell below its reorder
// level after a sale. Alerts are produced asynchronously by the alert workers.
type StockAlert struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ShopID    string    `json:"shop_id" bson:"shop_id"`
	ProductID string    `json:"product_id" bson:"product_id"`
	Name      string    `json:"name" bson:"name"`
	Quantity  int64     `json:"quantity" bson:"quantity"`
	Threshold int64     `json:"threshold" bson:"threshold"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
