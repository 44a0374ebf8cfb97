package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/tajer/shop-finance-api/internal/api/metrics"
	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes post-sale stock checks to a fixed set of workers using
// consistent hashing on the product id, so checks for the same product are
// processed in order. Each worker re-reads the product's stock level and
// raises a low-stock alert when it fell below the reorder threshold.
type Dispatcher struct {
	workers  []chan ports.StockCheck
	products ports.ProductRepository
	alerts   ports.StockAlertRepository
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, products ports.ProductRepository, alerts ports.StockAlertRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.StockCheck, numWorkers),
		products: products,
		alerts:   alerts,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StockCheck, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// NotifySale enqueues stock checks for the sold products. The call never
// blocks: checks that would overflow a worker channel are dropped and counted.
func (d *Dispatcher) NotifySale(checks []ports.StockCheck) {
	for _, check := range checks {
		idx := d.shardIndex(check.ProductID)
		select {
		case d.workers[idx] <- check:
			metrics.AlertQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		default:
			metrics.AlertChecksDroppedTotal.Inc()
			d.log.Warn().
				Str("product_id", check.ProductID).
				Int("worker_id", idx).
				Msg("stock check dropped, worker channel full")
		}
	}
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StockCheck) {
	for {
		select {
		case <-ctx.Done():
			return
		case check, ok := <-ch:
			if !ok {
				return
			}
			metrics.AlertQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.process(ctx, check); err != nil {
				d.log.Error().Err(err).
					Str("product_id", check.ProductID).
					Int("worker_id", id).
					Msg("stock check failed")
			}
		}
	}
}

// process re-reads the product and raises an alert when its stock fell below
// the reorder level.
func (d *Dispatcher) process(ctx context.Context, check ports.StockCheck) error {
	product, err := d.products.FindByID(ctx, check.ProductID, check.ShopID)
	if err != nil {
		return err
	}
	if product.StockQuantity >= domain.DefaultReorderLevel {
		return nil
	}

	alert := &domain.StockAlert{
		ShopID:    product.ShopID,
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  product.StockQuantity,
		Threshold: domain.DefaultReorderLevel,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.alerts.Create(ctx, alert); err != nil {
		return err
	}

	metrics.StockAlertsRaisedTotal.Inc()
	d.log.Warn().
		Str("product_id", product.ID).
		Str("shop_id", product.ShopID).
		Int64("stock_quantity", product.StockQuantity).
		Msg("low stock alert raised")
	return nil
}
