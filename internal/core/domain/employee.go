package domain

import "time"

// Employee positions.
const (
	PositionCashier        = "cashier"
	PositionSalesAssociate = "sales_associate"
	PositionManager        = "manager"
	PositionAccountant     = "accountant"
	PositionSecurity       = "security"
	PositionCleaner        = "cleaner"
	PositionOther          = "other"
)

// Salary frequencies.
const (
	SalaryHourly  = "hourly"
	SalaryDaily   = "daily"
	SalaryWeekly  = "weekly"
	SalaryMonthly = "monthly"
)

// Salary is an amount paid at a frequency.
type Salary struct {
	Amount    float64 `json:"amount" bson:"amount"`
	Frequency string  `json:"frequency" bson:"frequency"`
}

// EmergencyContact is who to call about an employee.
type EmergencyContact struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
}

// BankAccount holds payroll banking details.
type BankAccount struct {
	AccountNumber string `json:"account_number,omitempty" bson:"account_number,omitempty"`
	BankName      string `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
	IBAN          string `json:"iban,omitempty" bson:"iban,omitempty"`
}

// Employee is a personnel record. It can exist without a user account;
// linking one sets the account's role based on the position.
type Employee struct {
	ID               string           `json:"id" bson:"_id,omitempty"`
	ShopID           string           `json:"shop_id" bson:"shop_id"`
	Name             string           `json:"name" bson:"name"`
	Email            string           `json:"email,omitempty" bson:"email,omitempty"`
	Phone            string           `json:"phone" bson:"phone"`
	Position         string           `json:"position" bson:"position"`
	Salary           Salary           `json:"salary" bson:"salary"`
	StartDate        time.Time        `json:"start_date" bson:"start_date"`
	EndDate          time.Time        `json:"end_date,omitempty" bson:"end_date,omitempty"`
	IsActive         bool             `json:"is_active" bson:"is_active"`
	Address          Address          `json:"address" bson:"address"`
	EmergencyContact EmergencyContact `json:"emergency_contact" bson:"emergency_contact"`
	NationalID       string           `json:"national_id,omitempty" bson:"national_id,omitempty"`
	BankAccount      BankAccount      `json:"bank_account" bson:"bank_account"`
	Notes            string           `json:"notes,omitempty" bson:"notes,omitempty"`
	UserID           string           `json:"user_id,omitempty" bson:"user_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" bson:"updated_at"`
}

// AccountRole maps the employee's position to the role a linked user account
// should carry.
func (e *Employee) AccountRole() string {
	if e.Position == PositionManager {
		return RoleManager
	}
	return RoleEmployee
}
