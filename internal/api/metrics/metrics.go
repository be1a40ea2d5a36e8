// Package metrics defines and registers all custom Prometheus metrics for
// the acquisitions API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "acquisitions"

// ── Auth flow metrics ─────────────────────────────────────────────────────────

// SignupsTotal counts sign-up attempts.
// Label:
//   - result: "created", "conflict", or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SigninsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid_password", "not_found", "throttled", or "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts session tokens minted across sign-up and sign-in.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of session tokens issued.",
	},
)

// SigninDuration measures the end-to-end sign-in latency. The slow bcrypt
// comparison dominates, so the buckets skew higher than default HTTP ones.
var SigninDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "signin_duration_seconds",
		Help:      "Duration of sign-in processing including password verification.",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
	},
)

// ── Audit trail metrics ───────────────────────────────────────────────────────

// AuditEventsTotal counts auth events accepted for asynchronous recording.
// Label:
//   - action: "sign_up", "sign_in", "sign_in_failed", "sign_out"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of auth events enqueued for the audit trail.",
	},
	[]string{"action"},
)

// AuditQueueDepth tracks the current number of events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
