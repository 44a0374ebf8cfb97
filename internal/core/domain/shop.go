package domain

import "time"

// Business types a shop can declare.
const (
	BusinessRetail     = "retail"
	BusinessWholesale  = "wholesale"
	BusinessService    = "service"
	BusinessRestaurant = "restaurant"
	BusinessOther      = "other"
)

// Address is a nested postal address shared by shops, parties and employees.
type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
}

// Subscription tracks the shop's plan state.
type Subscription struct {
	Plan      string    `json:"plan" bson:"plan"`
	Status    string    `json:"status" bson:"status"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
}

// Shop is the tenant: every other entity except User hangs off a shop and is
// invisible outside it.
type Shop struct {
	ID                 string       `json:"id" bson:"_id,omitempty"`
	Name               string       `json:"name" bson:"name"`
	OwnerID            string       `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	Description        string       `json:"description,omitempty" bson:"description,omitempty"`
	Address            Address      `json:"address" bson:"address"`
	Phone              string       `json:"phone,omitempty" bson:"phone,omitempty"`
	Email              string       `json:"email,omitempty" bson:"email,omitempty"`
	Website            string       `json:"website,omitempty" bson:"website,omitempty"`
	Logo               string       `json:"logo,omitempty" bson:"logo,omitempty"`
	Currency           string       `json:"currency" bson:"currency"`
	Timezone           string       `json:"timezone" bson:"timezone"`
	BusinessType       string       `json:"business_type" bson:"business_type"`
	TaxNumber          string       `json:"tax_number,omitempty" bson:"tax_number,omitempty"`
	RegistrationNumber string       `json:"registration_number,omitempty" bson:"registration_number,omitempty"`
	IsActive           bool         `json:"is_active" bson:"is_active"`
	Subscription       Subscription `json:"subscription" bson:"subscription"`
	CreatedAt          time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at" bson:"updated_at"`
}
