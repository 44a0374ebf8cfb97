package domain

import "time"

// Roles supported by the three-tier access model. A user's role decides how
// the shop scope is resolved: owners through the shop they own, managers and
// employees through their employee record.
const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User is an account that can authenticate. It is the only entity not scoped
// to a shop; the shop reference is set once the user owns or works for one.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar       string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role         string    `json:"role" bson:"role"`
	ShopID       string    `json:"shop_id,omitempty" bson:"shop_id,omitempty"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
	LastLogin    time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// AuthContext is the resolved identity of a request: who is acting, with what
// role, against which shop. EmployeeID is set only for manager/employee roles.
type AuthContext struct {
	UserID     string
	Role       string
	ShopID     string
	EmployeeID string
}
