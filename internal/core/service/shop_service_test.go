package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

type shopFixture struct {
	service *ShopService
	shops   *stubShopRepo
	users   *stubUserRepo
}

func newShopFixture() *shopFixture {
	f := &shopFixture{
		shops: newStubShopRepo(),
		users: newStubUserRepo(),
	}
	f.service = NewShopService(f.shops, f.users, discardLogger)
	return f
}

func TestShopCreatePromotesCreator(t *testing.T) {
	f := newShopFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	shop, err := f.service.Create(context.Background(), user.ID, ports.CreateShopInput{Name: "Misrata Market"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if shop.OwnerID != user.ID {
		t.Errorf("expected owner %s, got %s", user.ID, shop.OwnerID)
	}
	if shop.Currency != "LYD" {
		t.Errorf("expected default currency LYD, got %q", shop.Currency)
	}
	if shop.BusinessType != domain.BusinessRetail {
		t.Errorf("expected default business type retail, got %q", shop.BusinessType)
	}

	stored, _ := f.users.FindByID(context.Background(), user.ID)
	if stored.Role != domain.RoleOwner {
		t.Errorf("expected creator promoted to owner, got %q", stored.Role)
	}
	if stored.ShopID != shop.ID {
		t.Errorf("expected creator linked to shop %s, got %q", shop.ID, stored.ShopID)
	}
}

func TestShopCreateSecondShopRejected(t *testing.T) {
	f := newShopFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	if _, err := f.service.Create(context.Background(), user.ID, ports.CreateShopInput{Name: "First"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err := f.service.Create(context.Background(), user.ID, ports.CreateShopInput{Name: "Second"})
	if !errors.Is(err, domain.ErrShopExists) {
		t.Fatalf("expected ErrShopExists, got %v", err)
	}
}

func TestShopUpdateOwnerOnly(t *testing.T) {
	f := newShopFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	shop, err := f.service.Create(context.Background(), user.ID, ports.CreateShopInput{Name: "Misrata Market"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	name := "Misrata Megamart"
	updated, err := f.service.Update(context.Background(), shop.ID, user.ID, ports.ShopUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Misrata Megamart" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}

	_, err = f.service.Update(context.Background(), shop.ID, "someone-else", ports.ShopUpdate{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
}

func TestShopGetScope(t *testing.T) {
	f := newShopFixture()
	user := seedUser(t, f.users, domain.RoleEmployee)

	shop, err := f.service.Create(context.Background(), user.ID, ports.CreateShopInput{Name: "Misrata Market"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := f.service.Get(context.Background(), shop.ID, &domain.AuthContext{
		UserID: user.ID, Role: domain.RoleOwner, ShopID: shop.ID,
	}); err != nil {
		t.Errorf("expected owner read to succeed, got %v", err)
	}

	if _, err := f.service.Get(context.Background(), shop.ID, &domain.AuthContext{
		UserID: "manager-1", Role: domain.RoleManager, ShopID: shop.ID,
	}); err != nil {
		t.Errorf("expected same-shop manager read to succeed, got %v", err)
	}

	_, err = f.service.Get(context.Background(), shop.ID, &domain.AuthContext{
		UserID: "manager-2", Role: domain.RoleManager, ShopID: "other-shop",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for foreign manager, got %v", err)
	}

	_, err = f.service.Get(context.Background(), shop.ID, &domain.AuthContext{
		UserID: "employee-9", Role: domain.RoleEmployee, ShopID: shop.ID,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for employee, got %v", err)
	}
}
