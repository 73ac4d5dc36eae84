// Package metrics defines all custom Prometheus metrics for the restaurant
// backend. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "user_not_found",
//     "user_inactive", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success", "duplicate", "invalid", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// MesaStatusChangesTotal counts applied table status transitions.
// Label:
//   - estado: resulting status name ("Disponible", "Ocupada", "Reservada")
var MesaStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mesa_status_changes_total",
		Help:      "Total number of table status transitions applied, by resulting status.",
	},
	[]string{"estado"},
)

// StatsCacheTotal counts statistics cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of statistics cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit events by processing outcome.
// Labels:
//   - action: audit action name (e.g. "mesa_cambio_estado", "login")
//   - result: "processed" or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events handled by the dispatcher workers.",
	},
	[]string{"action", "result"},
)

// AuditQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
