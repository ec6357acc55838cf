// Package metrics holds the Prometheus instruments shared by the HTTP
// server and the import job.  Everything registers on the default
// registry; the server exposes it at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventQueries counts executed event listing searches.
	EventQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uitjes_event_queries_total",
		Help: "Number of event search queries served.",
	})

	// FeedbackReceived counts accepted feedback submissions.
	FeedbackReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uitjes_feedback_received_total",
		Help: "Number of feedback submissions stored.",
	})

	// ImportRows counts import row outcomes, labelled by result.
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uitjes_import_rows_total",
		Help: "Import row outcomes by result (created/updated/skipped/error).",
	}, []string{"result"})
)
