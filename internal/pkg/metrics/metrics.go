// Package metrics defines the custom Prometheus metrics of the catalog API.
// All metrics are registered with the default registry through promauto, which
// is also the registry served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Course metrics ────────────────────────────────────────────────────────────

// CourseMutationsTotal counts successful catalog mutations.
// Label:
//   - action: "create", "update" or "delete"
var CourseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_mutations_total",
		Help:      "Total number of successful course mutations, by action.",
	},
	[]string{"action"},
)

// CourseValidationErrorsTotal counts rejected course payloads.
// Label:
//   - reason: "missing_fields" or "invalid_credits"
var CourseValidationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "course_validation_errors_total",
		Help:      "Total number of course payloads rejected by validation.",
	},
	[]string{"reason"},
)

// ── Schedule metrics ──────────────────────────────────────────────────────────

// ScheduleChangesTotal counts enroll/drop operations that reached the store.
// Label:
//   - action: "enroll" or "drop"
var ScheduleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "schedule_changes_total",
		Help:      "Total number of schedule changes, by action.",
	},
	[]string{"action"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Mutation queue metrics ────────────────────────────────────────────────────

// MutationQueueDepth tracks mutations waiting in each serializer worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MutationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mutation_queue_depth",
		Help:      "Current number of mutations pending in each serializer worker channel.",
	},
	[]string{"worker_id"},
)

// MutationDuration measures how long a mutation takes from dequeue to completion.
var MutationDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mutation_duration_seconds",
		Help:      "Duration of serialized mutations from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
)
