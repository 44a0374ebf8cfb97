package queue

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

type productStoreStub struct {
	products map[string]*domain.Product
}

func (s *productStoreStub) Create(_ context.Context, p *domain.Product) error {
	s.products[p.ID] = p
	return nil
}

func (s *productStoreStub) FindByID(_ context.Context, id, shopID string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok || p.ShopID != shopID {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *productStoreStub) Update(_ context.Context, p *domain.Product) error {
	s.products[p.ID] = p
	return nil
}

func (s *productStoreStub) List(context.Context, ports.ProductFilter) ([]*domain.Product, error) {
	return nil, nil
}

func (s *productStoreStub) DecrementStock(_ context.Context, id string, quantity int64) error {
	s.products[id].StockQuantity -= quantity
	return nil
}

type alertStoreStub struct {
	alerts []*domain.StockAlert
}

func (s *alertStoreStub) Create(_ context.Context, a *domain.StockAlert) error {
	s.alerts = append(s.alerts, a)
	return nil
}

func newTestDispatcher(products map[string]*domain.Product) (*Dispatcher, *alertStoreStub) {
	alerts := &alertStoreStub{}
	d := NewDispatcher(4, &productStoreStub{products: products}, alerts, discardLogger)
	return d, alerts
}

func TestProcessRaisesAlertBelowThreshold(t *testing.T) {
	d, alerts := newTestDispatcher(map[string]*domain.Product{
		"p1": {ID: "p1", ShopID: "shop-a", Name: "Green Tea", StockQuantity: 2},
	})

	if err := d.process(context.Background(), ports.StockCheck{ShopID: "shop-a", ProductID: "p1"}); err != nil {
		t.Fatalf("process returned error: %v", err)
	}

	if len(alerts.alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(alerts.alerts))
	}
	alert := alerts.alerts[0]
	if alert.ProductID != "p1" || alert.Quantity != 2 {
		t.Errorf("unexpected alert payload: %+v", alert)
	}
	if alert.Threshold != domain.DefaultReorderLevel {
		t.Errorf("expected threshold %d, got %d", domain.DefaultReorderLevel, alert.Threshold)
	}
}

func TestProcessSkipsHealthyStock(t *testing.T) {
	d, alerts := newTestDispatcher(map[string]*domain.Product{
		"p1": {ID: "p1", ShopID: "shop-a", StockQuantity: domain.DefaultReorderLevel},
	})

	if err := d.process(context.Background(), ports.StockCheck{ShopID: "shop-a", ProductID: "p1"}); err != nil {
		t.Fatalf("process returned error: %v", err)
	}
	if len(alerts.alerts) != 0 {
		t.Errorf("expected no alert at the threshold, got %d", len(alerts.alerts))
	}
}

func TestProcessUnknownProduct(t *testing.T) {
	d, _ := newTestDispatcher(map[string]*domain.Product{})

	err := d.process(context.Background(), ports.StockCheck{ShopID: "shop-a", ProductID: "missing"})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestShardIndexIsStable(t *testing.T) {
	d, _ := newTestDispatcher(nil)

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("product-%d", i)
		first := d.shardIndex(id)
		if first < 0 || first >= len(d.workers) {
			t.Fatalf("shard index %d out of range for %s", first, id)
		}
		if second := d.shardIndex(id); second != first {
			t.Fatalf("shard index not stable for %s: %d then %d", id, first, second)
		}
	}
}

func TestNotifySaleDoesNotBlockWhenFull(t *testing.T) {
	d, _ := newTestDispatcher(nil)

	// Workers are not started, so channels only fill. Overflow past the
	// buffer must drop instead of blocking.
	check := ports.StockCheck{ShopID: "shop-a", ProductID: "p1"}
	for i := 0; i < channelBuffer+10; i++ {
		d.NotifySale([]ports.StockCheck{check})
	}

	idx := d.shardIndex("p1")
	if got := len(d.workers[idx]); got != channelBuffer {
		t.Errorf("expected worker channel at capacity %d, got %d", channelBuffer, got)
	}
}
