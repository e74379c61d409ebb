// Package metrics defines the custom Prometheus metrics of the devicehub API.
// Metric names, labels and help strings live here and nowhere else.
//
// All metrics register with the default registry on package init through
// promauto; /metrics serves them with promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "devicehub"

// ── Auth ──────────────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Inventory and access ──────────────────────────────────────────────────────

// DevicesRegisteredTotal counts devices added to the inventory.
// Label:
//   - source: "api" for single registrations, "import" for bulk imports
var DevicesRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "devices_registered_total",
		Help:      "Total number of devices registered, by source.",
	},
	[]string{"source"},
)

// ImportRowsSkippedTotal counts bulk import lines that were not imported.
var ImportRowsSkippedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_skipped_total",
		Help:      "Total number of bulk import rows skipped.",
	},
)

// AccessTogglesTotal counts access grant toggles.
// Label:
//   - result: "granted" or "revoked"
var AccessTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_toggles_total",
		Help:      "Total number of access toggles, by resulting state.",
	},
	[]string{"result"},
)

// ── Billing ───────────────────────────────────────────────────────────────────

// PaymentsRecordedTotal counts recorded payments.
var PaymentsRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of payments recorded.",
	},
)

// PaymentAmountTotal sums recorded payment amounts.
// Label:
//   - currency: ISO code from configuration (e.g. "USD")
var PaymentAmountTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_amount_total",
		Help:      "Sum of recorded payment amounts.",
	},
	[]string{"currency"},
)

// DeviceBlockTogglesTotal counts billing block toggles.
// Label:
//   - state: "blocked" or "unblocked"
var DeviceBlockTogglesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "device_block_toggles_total",
		Help:      "Total number of device block toggles, by resulting state.",
	},
	[]string{"state"},
)

// ── Audit dispatcher ──────────────────────────────────────────────────────────

// AuditQueueDepth tracks the events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditWriteDuration measures a single ledger write.
// Label:
//   - result: "ok" or "error"
var AuditWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_write_duration_seconds",
		Help:      "Duration of audit ledger writes.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// AuditErrorsTotal counts audit events that never reached the ledger.
// Label:
//   - reason: "write_failed" or "dispatcher_stopped"
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events lost, by reason.",
	},
	[]string{"reason"},
)
