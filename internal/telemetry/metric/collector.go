// Package metric provides Prometheus metrics for otpowner.
package metric

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SnapshotStats is the view of a loaded table the collector reports.
type SnapshotStats interface {
	Len() int
	Skipped() int
	LoadedAt() time.Time
}

// SnapshotCollector reports the rows of the loaded table.
// Nothing is reported until Track is called.
type SnapshotCollector struct {
	mu    sync.RWMutex
	stats SnapshotStats

	rows     *prometheus.Desc
	skipped  *prometheus.Desc
	loadedAt *prometheus.Desc
}

// NewSnapshotCollector creates an idle collector.
func NewSnapshotCollector() *SnapshotCollector {
	return &SnapshotCollector{
		rows: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "table", "rows"),
			"Usable rows in the loaded token table.", nil, nil),
		skipped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "table", "skipped_rows"),
			"Rows skipped for having too few fields.", nil, nil),
		loadedAt: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "table", "loaded_timestamp_seconds"),
			"Unix time the token table was loaded.", nil, nil),
	}
}

// Track sets the table to report.
func (c *SnapshotCollector) Track(s SnapshotStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = s
}

// Describe implements prometheus.Collector.
func (c *SnapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.rows
	ch <- c.skipped
	ch <- c.loadedAt
}

// Collect implements prometheus.Collector.
func (c *SnapshotCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	s := c.stats
	c.mu.RUnlock()

	if s == nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.rows, prometheus.GaugeValue, float64(s.Len()))
	ch <- prometheus.MustNewConstMetric(c.skipped, prometheus.GaugeValue, float64(s.Skipped()))
	ch <- prometheus.MustNewConstMetric(c.loadedAt, prometheus.GaugeValue, float64(s.LoadedAt().Unix()))
}
