package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// ShopService implements shop profile management.
type ShopService struct {
	shops  ports.ShopRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewShopService(shops ports.ShopRepository, users ports.UserRepository, logger zerolog.Logger) *ShopService {
	return &ShopService{shops: shops, users: users, logger: logger}
}

// Create opens a shop for a user who does not own one yet and promotes the
// user to owner.
func (s *ShopService) Create(ctx context.Context, ownerID string, input ports.CreateShopInput) (*domain.Shop, error) {
	if existing, err := s.shops.FindByOwner(ctx, ownerID); err == nil && existing != nil {
		return nil, domain.ErrShopExists
	}

	now := time.Now().UTC()
	shop := &domain.Shop{
		Name:               input.Name,
		OwnerID:            ownerID,
		Description:        input.Description,
		Address:            input.Address,
		Phone:              input.Phone,
		Email:              input.Email,
		Website:            input.Website,
		Currency:           input.Currency,
		Timezone:           "Africa/Tripoli",
		BusinessType:       input.BusinessType,
		TaxNumber:          input.TaxNumber,
		RegistrationNumber: input.RegistrationNumber,
		IsActive:           true,
		Subscription:       domain.Subscription{Plan: "basic", Status: "active", StartDate: now},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if shop.Currency == "" {
		shop.Currency = "LYD"
	}
	if shop.BusinessType == "" {
		shop.BusinessType = domain.BusinessRetail
	}
	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, ownerID)
	if err == nil {
		owner.Role = domain.RoleOwner
		owner.ShopID = shop.ID
		if err := s.users.Update(ctx, owner); err != nil {
			s.logger.Warn().Err(err).Str("user_id", ownerID).Msg("failed to promote shop creator")
		}
	}

	s.logger.Info().Str("shop_id", shop.ID).Str("owner_id", ownerID).Msg("shop created")
	return shop, nil
}

// Update applies a partial update. Only the shop's owner may modify it.
func (s *ShopService) Update(ctx context.Context, id, actingUserID string, update ports.ShopUpdate) (*domain.Shop, error) {
	shop, err := s.shops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != actingUserID {
		return nil, domain.ErrForbidden
	}

	if update.Name != nil {
		shop.Name = *update.Name
	}
	if update.Description != nil {
		shop.Description = *update.Description
	}
	if update.Address != nil {
		shop.Address = *update.Address
	}
	if update.Phone != nil {
		shop.Phone = *update.Phone
	}
	if update.Email != nil {
		shop.Email = *update.Email
	}
	if update.Website != nil {
		shop.Website = *update.Website
	}
	if update.BusinessType != nil {
		shop.BusinessType = *update.BusinessType
	}
	shop.UpdatedAt = time.Now().UTC()

	if err := s.shops.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

// Get returns the shop when the actor owns it or manages within it.
func (s *ShopService) Get(ctx context.Context, id string, actor *domain.AuthContext) (*domain.Shop, error) {
	shop, err := s.shops.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop.OwnerID != actor.UserID && !(actor.Role == domain.RoleManager && actor.ShopID == shop.ID) {
		return nil, domain.ErrForbidden
	}
	return shop, nil
}
