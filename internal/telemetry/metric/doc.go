// Package metric provides Prometheus metrics for otpowner.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: registry with lookup counters and load histogram
//   - collector.go: snapshot collector reporting the loaded table
//   - server.go: optional /metrics HTTP endpoint
//
// Metrics use a private prometheus.Registry so tests can build as many
// registries as they need.
package metric
