// Package metrics defines and registers all custom Prometheus metrics for the
// shop finance API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopfinance"

// ── Document metrics ──────────────────────────────────────────────────────────

// InvoicesPostedTotal counts successfully posted sales invoices.
var InvoicesPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_posted_total",
		Help:      "Total number of sales invoices posted.",
	},
)

// PurchasesPostedTotal counts successfully posted purchases.
var PurchasesPostedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_posted_total",
		Help:      "Total number of purchases posted.",
	},
)

// StockRejectionsTotal counts invoice postings rejected for insufficient stock.
var StockRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_rejections_total",
		Help:      "Total number of invoice postings rejected for insufficient stock.",
	},
)

// StockAdjustmentsTotal counts manual stock adjustments.
// Label:
//   - action: "add", "subtract" or "set"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of manual stock adjustments, by action.",
	},
	[]string{"action"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts generated reports.
// Label:
//   - report_type: "profit_loss", "sales_by_product" or "expenses_by_category"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports generated, by type.",
	},
	[]string{"report_type"},
)

// ReportCacheTotal counts report cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (regenerated)
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of report cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Alert metrics ─────────────────────────────────────────────────────────────

// StockAlertsRaisedTotal counts low-stock alerts raised by the alert workers.
var StockAlertsRaisedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_alerts_raised_total",
		Help:      "Total number of low-stock alerts raised.",
	},
)

// AlertQueueDepth tracks the number of stock checks pending in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AlertQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alert_queue_depth",
		Help:      "Current number of stock checks pending in each alert worker channel.",
	},
	[]string{"worker_id"},
)

// AlertChecksDroppedTotal counts stock checks dropped because a worker channel
// was full.
var AlertChecksDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "alert_checks_dropped_total",
		Help:      "Total number of stock checks dropped due to a full worker channel.",
	},
)
