// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

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

// TokenValidationsTotal counts bearer-token validations at the middleware.
// Label:
//   - result: "valid", "expired", or "invalid"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures how long a single bcrypt hash takes.
// Hashing is deliberately slow; this histogram makes cost changes visible.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly registered stock records.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ProductCacheTotal counts read-through cache decisions on product lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (fell through to the store)
var ProductCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_total",
		Help:      "Total number of product cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
