// Package metric provides Prometheus metrics for otpowner.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "otpowner"

// Lookup outcome labels.
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultInvalid = "invalid"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	lookups      *prometheus.CounterVec
	loadDuration prometheus.Histogram
	loadFailures prometheus.Counter
	snapshot     *SnapshotCollector
}

// NewRegistry creates a registry with the lookup, load and snapshot metrics
// plus the Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Lookups by direction and outcome.",
		}, []string{"direction", "result"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "table_load_duration_seconds",
			Help:      "Time spent loading the token table.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		loadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "table_load_failures_total",
			Help:      "Token table loads that failed.",
		}),
		snapshot: NewSnapshotCollector(),
	}

	r.reg.MustRegister(
		r.lookups,
		r.loadDuration,
		r.loadFailures,
		r.snapshot,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveLookup counts one lookup. A nil Registry records nothing.
func (r *Registry) ObserveLookup(direction, result string) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(direction, result).Inc()
}

// ObserveLoad records a table load attempt.
func (r *Registry) ObserveLoad(d time.Duration, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.loadFailures.Inc()
		return
	}
	r.loadDuration.Observe(d.Seconds())
}

// TrackSnapshot points the snapshot collector at the loaded table.
func (r *Registry) TrackSnapshot(s SnapshotStats) {
	if r == nil {
		return
	}
	r.snapshot.Track(s)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
