package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

// UserService implements profile and admin user management.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateSelf applies a partial profile update. Role and active-flag changes
// are reserved for admin updates and ignored here.
func (s *UserService) UpdateSelf(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	update.Role = nil
	update.IsActive = nil
	return s.apply(ctx, id, update)
}

// Deactivate flips the account off; the user keeps their data but can no
// longer authenticate actions.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	inactive := false
	_, err := s.apply(ctx, id, ports.UserUpdate{IsActive: &inactive})
	return err
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateByAdmin applies a partial update including role and active flag.
func (s *UserService) UpdateByAdmin(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	return s.apply(ctx, id, update)
}

// apply merges only the supplied fields onto the stored user. A non-nil
// pointer always overwrites, zero values included.
func (s *UserService) apply(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
