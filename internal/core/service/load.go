// Package service provides the lookup service for otpowner.
package service

import (
	"context"
	"time"

	"github.com/yndnr/otpowner/internal/storage/registry"
	"github.com/yndnr/otpowner/internal/storage/source"
	"github.com/yndnr/otpowner/internal/telemetry/metric"
)

// LoadRecorder receives table load observations.
type LoadRecorder interface {
	ObserveLoad(d time.Duration, err error)
	TrackSnapshot(s metric.SnapshotStats)
}

// LoadTable opens location through opener and loads it as a registry.
// rec may be nil.
func LoadTable(ctx context.Context, opener source.Opener, location string, rec LoadRecorder, opts ...registry.Option) (*registry.Registry, error) {
	start := time.Now()
	reg, err := registry.LoadSource(ctx, opener, location, opts...)
	if rec != nil {
		rec.ObserveLoad(time.Since(start), err)
	}
	if err != nil {
		return nil, err
	}

	if rec != nil {
		rec.TrackSnapshot(reg)
	}
	return reg, nil
}
