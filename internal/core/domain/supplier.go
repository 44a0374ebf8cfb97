package domain

import "time"

// Payment terms a supplier can be set up with.
const DefaultPaymentTerms = "net 30"

// Supplier is a shop-scoped vendor contact record. Shape mirrors Customer
// plus procurement fields.
type Supplier struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	ShopID        string    `json:"shop_id" bson:"shop_id"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       Address   `json:"address" bson:"address"`
	ContactPerson string    `json:"contact_person,omitempty" bson:"contact_person,omitempty"`
	PaymentTerms  string    `json:"payment_terms" bson:"payment_terms"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
