// Package metrics defines and registers all custom Prometheus metrics for
// the storefront API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// SessionRejectionsTotal counts requests turned away by the session gate.
// Label:
//   - reason: "missing_cookie", "invalid_token", "revoked", or "forbidden"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests rejected by the session middleware.",
	},
	[]string{"reason"},
)

// ── Inquiry metrics ───────────────────────────────────────────────────────────

// InquiriesReceivedTotal counts accepted contact-form submissions.
// Label:
//   - source: "contact_form" or "team_store"
var InquiriesReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_received_total",
		Help:      "Total number of contact inquiries accepted, by source.",
	},
	[]string{"source"},
)

// InquiryDedupTotal counts deduplication decisions on the contact form.
// Label:
//   - result: "hit" (duplicate, dropped) or "miss" (new, accepted)
var InquiryDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiry_dedup_total",
		Help:      "Total number of contact-form dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrderStatusUpdatesTotal counts admin order status changes.
// Label:
//   - status: the new order status (e.g. "SHIPPED")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of order status transitions applied, by new status.",
	},
	[]string{"status"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsGeneratedTotal counts CSV report exports.
// Label:
//   - report_type: "revenue", "customers", "products", "projects", "inquiries"
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of CSV reports generated, by report type.",
	},
	[]string{"report_type"},
)
