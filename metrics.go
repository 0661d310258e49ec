package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see the promcollector package).
type MetricsCollector interface {
	// RecordStep is called after each partition/update step.
	// converged reports whether every centroid was stable.
	RecordStep(duration time.Duration, converged bool)

	// RecordRun is called when Run returns.
	// steps is the number of steps performed, err is nil if successful.
	RecordRun(steps int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(time.Duration, bool)            {}
func (NoopMetricsCollector) RecordRun(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount      atomic.Int64
	ConvergedSteps atomic.Int64
	StepTotalNanos atomic.Int64
	RunCount       atomic.Int64
	RunSteps       atomic.Int64
	ConvergedRuns  atomic.Int64
	RunErrors      atomic.Int64
	RunTotalNanos  atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, converged bool) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if converged {
		b.ConvergedSteps.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(steps int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunSteps.Add(int64(steps))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if converged {
		b.ConvergedRuns.Add(1)
	}
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:      b.StepCount.Load(),
		ConvergedSteps: b.ConvergedSteps.Load(),
		StepAvgNanos:   b.getAvgStepNanos(),
		RunCount:       b.RunCount.Load(),
		RunSteps:       b.RunSteps.Load(),
		ConvergedRuns:  b.ConvergedRuns.Load(),
		RunErrors:      b.RunErrors.Load(),
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
	StepCount      int64
	ConvergedSteps int64
	StepAvgNanos   int64
	RunCount       int64
	RunSteps       int64
	ConvergedRuns  int64
	RunErrors      int64
}
