// Package metrics defines all custom Prometheus metrics for the mentorship
// API. It is the single source of truth for metric names, labels, and help
// strings; counters register themselves with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentorship"

// LoginsTotal counts login attempts.
// Labels:
//   - role: the role named in the attempt ("admin", "mentor", "mentee")
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SessionsLoggedTotal counts session records created by mentors.
var SessionsLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_logged_total",
		Help:      "Total number of mentoring session records created.",
	},
)

// TodosCreatedTotal counts to-dos assigned by mentors.
var TodosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_created_total",
		Help:      "Total number of to-dos assigned.",
	},
)

// TodosToggledTotal counts completed-flag flips.
// Label:
//   - completed: "true" when the flip marked the todo done, "false" otherwise
var TodosToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_toggled_total",
		Help:      "Total number of to-do completion toggles.",
	},
	[]string{"completed"},
)

// ResourcesUploadedTotal counts accepted resource uploads.
var ResourcesUploadedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_uploaded_total",
		Help:      "Total number of resources uploaded.",
	},
)
