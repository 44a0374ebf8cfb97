package ports

import (
	"context"

	"github.com/tajer/shop-finance-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
}

// RegisterInput carries the public registration payload. ShopName is required
// when Role is owner: registration then creates the shop as well.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
	ShopName string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService covers registration, login, and per-request identity resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Resolve walks from a verified user id to the acting shop scope:
	// owners through the shop they own, manager/employee roles through
	// their employee record.
	Resolve(ctx context.Context, userID string) (*domain.AuthContext, error)
}

// UserUpdate is a partial update: nil means "leave unchanged", a non-nil
// pointer overwrites even with a zero value.
type UserUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Avatar   *string
	Role     *string
	IsActive *bool
}

// UserService covers profile and admin user management.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateSelf(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	UpdateByAdmin(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
}
