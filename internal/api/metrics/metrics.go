// Package metrics defines and registers all custom Prometheus metrics for the
// result API. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resultapi"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "ok", "duplicate", or "invalid"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected" (invalid credentials — deliberately a single
//     bucket so the metric cannot become a username-enumeration side channel)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts access-guard decisions.
// Label:
//   - result: "ok", "missing", or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer-token validations, labelled by result.",
	},
	[]string{"result"},
)

// ── Result metrics ────────────────────────────────────────────────────────────

// ResultsIngestedTotal counts persisted result rows.
// Label:
//   - outcome: "PASS", "FAIL", or "ABSENT"
var ResultsIngestedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "results_ingested_total",
		Help:      "Total number of result rows persisted, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ResultsIngestErrorsTotal counts batches that failed ingestion.
// Label:
//   - reason: short description of the failure (e.g. "validation", "insert_failed")
var ResultsIngestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "results_ingest_errors_total",
		Help:      "Total number of result batches that failed ingestion.",
	},
	[]string{"reason"},
)

// SummaryCacheTotal counts summary cache lookups.
// Label:
//   - result: "hit" or "miss"
var SummaryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_cache_total",
		Help:      "Total number of summary cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// IngestQueueDepth tracks the number of batches waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IngestQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingest_queue_depth",
		Help:      "Current number of result batches pending in each ingest worker channel.",
	},
	[]string{"worker_id"},
)
