package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// AuthService implements registration, login and identity resolution.
type AuthService struct {
	users     ports.UserRepository
	shops     ports.ShopRepository
	employees ports.EmployeeRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	shops ports.ShopRepository,
	employees ports.EmployeeRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		shops:     shops,
		employees: employees,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a user account. Owners must supply a shop name; the shop
// is created alongside and linked both ways.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}

	var shop *domain.Shop
	now := time.Now().UTC()
	if role == domain.RoleOwner {
		if input.ShopName == "" {
			return nil, domain.ErrShopNameRequired
		}
		shop = &domain.Shop{
			Name:         input.ShopName,
			Currency:     "LYD",
			Timezone:     "Africa/Tripoli",
			BusinessType: domain.BusinessRetail,
			IsActive:     true,
			Subscription: domain.Subscription{Plan: "basic", Status: "active", StartDate: now},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.shops.Create(ctx, shop); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if shop != nil {
		user.ShopID = shop.ID
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if shop != nil {
		shop.OwnerID = user.ID
		if err := s.shops.Update(ctx, shop); err != nil {
			return nil, err
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Login verifies credentials, stamps the last login time, and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user.LastLogin = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Resolve produces the acting scope for a verified user id. Owners resolve to
// the shop they own; managers and employees resolve through their employee
// record. Users without a scope still resolve, with an empty ShopID.
func (s *AuthService) Resolve(ctx context.Context, userID string) (*domain.AuthContext, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	actx := &domain.AuthContext{UserID: user.ID, Role: user.Role}
	switch user.Role {
	case domain.RoleOwner:
		if shop, err := s.shops.FindByOwner(ctx, user.ID); err == nil {
			actx.ShopID = shop.ID
		}
	case domain.RoleManager, domain.RoleEmployee:
		if emp, err := s.employees.FindByUser(ctx, user.ID); err == nil {
			actx.ShopID = emp.ShopID
			actx.EmployeeID = emp.ID
		}
	}
	return actx, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
