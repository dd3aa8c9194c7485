// Package metrics defines and registers the custom Prometheus metrics for
// the Bloggie web front end. It is the single source of truth for metric
// names, labels, and help strings; registration happens on import via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bloggie"

// ── Auth workflow metrics ─────────────────────────────────────────────────────

// LoginsTotal counts login submissions.
// Label:
//   - result: "success", "invalid" (blocked by local validation), or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login submissions, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration submissions.
// Label:
//   - result: "success", "invalid", or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration submissions, by result.",
	},
	[]string{"result"},
)

// ── Feed workflow metrics ─────────────────────────────────────────────────────

// PostActionsTotal counts post mutations initiated from the feed.
// Labels:
//   - action: "create", "update", or "delete"
//   - result: "success", "invalid", or "failure"
var PostActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_actions_total",
		Help:      "Total number of post create/update/delete attempts, by result.",
	},
	[]string{"action", "result"},
)

// ── Upstream API metrics ──────────────────────────────────────────────────────

// UpstreamRequestDuration measures one round trip to the Bloggie API.
// Label:
//   - operation: "login", "register", "logout", "list_posts", "create_post",
//     "update_post", "delete_post"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of HTTP calls to the Bloggie API, by operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
