package domain

import "time"

// Customer is a shop-scoped buyer contact record.
type Customer struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ShopID    string    `json:"shop_id" bson:"shop_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   Address   `json:"address" bson:"address"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
