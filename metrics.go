package simclust

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordStep is called after each refinement step.
	// changed is the number of rows whose cluster changed, err is nil if successful.
	RecordStep(changed int, duration time.Duration, err error)

	// RecordFit is called after each Fit loop.
	RecordFit(steps int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordFit(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	StepErrors     atomic.Int64
	StepTotalNanos atomic.Int64
	ChangedRows    atomic.Int64
	FitCount       atomic.Int64
	FitConverged   atomic.Int64
	FitErrors      atomic.Int64
	FitSteps       atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(changed int, duration time.Duration, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	b.ChangedRows.Add(int64(changed))
	if err != nil {
		b.StepErrors.Add(1)
	}
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(steps int, converged bool, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitSteps.Add(int64(steps))
	if converged {
		b.FitConverged.Add(1)
	}
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:    b.StepCount.Load(),
		StepErrors:   b.StepErrors.Load(),
		StepAvgNanos: b.getAvgStepNanos(),
		ChangedRows:  b.ChangedRows.Load(),
		FitCount:     b.FitCount.Load(),
		FitConverged: b.FitConverged.Load(),
		FitErrors:    b.FitErrors.Load(),
		FitSteps:     b.FitSteps.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount    int64
	StepErrors   int64
	StepAvgNanos int64
	ChangedRows  int64
	FitCount     int64
	FitConverged int64
	FitErrors    int64
	FitSteps     int64
}
