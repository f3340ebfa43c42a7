// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// The scraper is a batch job rather than a long-lived service, so there is no
// scrape endpoint to expose. Instead the backend collects everything in a
// private Registry and pushes it to a Pushgateway when Flush is called, once
// per run.
//
// The package contains all Prometheus-specific dependencies so that the rest
// of the project depends only on the metrics.Backend abstraction and can swap
// to alternative backends (e.g. Datadog) without changes to the pipeline.
package prompush

import (
	"fmt"

	"github.com/DataFrosch/scraper-fts/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	// Year-level metrics
	yearCounter  *prometheus.CounterVec // "fts_years_total"
	yearDuration *prometheus.SummaryVec // "fts_year_duration_seconds" (summary)

	// Volume metrics
	rowCounter   prometheus.Counter // "fts_rows_total"
	batchCounter prometheus.Counter // "fts_batches_total"
}

// NewBackend constructs a Prometheus Pushgateway backend.
// jobName: the Pushgateway "job" name; defaults to "scraper-fts" when empty.
// gatewayURL: base URL of the Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "scraper-fts"
	}

	reg := prometheus.NewRegistry()

	yearCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fts_years_total",
			Help: "Total number of dataset years handled, partitioned by outcome status.",
		},
		[]string{"status"},
	)
	yearDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "fts_year_duration_seconds",
			Help:       "Wall time spent per dataset year in seconds, partitioned by outcome status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"status"},
	)

	rowCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fts_rows_total",
			Help: "Total number of rows inserted into the destination table.",
		},
	)
	batchCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fts_batches_total",
			Help: "Total number of committed insert batches.",
		},
	)

	if err := reg.Register(yearCounter); err != nil {
		return nil, fmt.Errorf("prompush: register year counter: %w", err)
	}
	if err := reg.Register(yearDuration); err != nil {
		return nil, fmt.Errorf("prompush: register year summary: %w", err)
	}
	if err := reg.Register(rowCounter); err != nil {
		return nil, fmt.Errorf("prompush: register row counter: %w", err)
	}
	if err := reg.Register(batchCounter); err != nil {
		return nil, fmt.Errorf("prompush: register batch counter: %w", err)
	}

	return &Backend{
		gatewayURL:   gatewayURL,
		jobName:      jobName,
		reg:          reg,
		yearCounter:  yearCounter,
		yearDuration: yearDuration,
		rowCounter:   rowCounter,
		batchCounter: batchCounter,
	}, nil
}

func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "fts_years_total":
		if b.yearCounter == nil {
			return
		}
		b.yearCounter.WithLabelValues(labels["status"]).Add(delta)

	case "fts_rows_total":
		if b.rowCounter == nil {
			return
		}
		b.rowCounter.Add(delta)

	case "fts_batches_total":
		if b.batchCounter == nil {
			return
		}
		b.batchCounter.Add(delta)

	default:
		// unknown metric name: ignore
	}
}

func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "fts_year_duration_seconds" || b.yearDuration == nil {
		return
	}
	b.yearDuration.WithLabelValues(labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}
