package promcollector

import (
	"strconv"
	"time"

	"github.com/hupe1980/kmeans"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kmeans"

// Collector implements kmeans.MetricsCollector with Prometheus metrics.
type Collector struct {
	stepLatency prometheus.Histogram
	steps       *prometheus.CounterVec
	runLatency  *prometheus.HistogramVec
	runSteps    prometheus.Histogram
}

var _ kmeans.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// If reg is nil, prometheus.DefaultRegisterer is used.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		stepLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Latency of a single partition/update step",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Total steps performed, by convergence outcome",
		}, []string{"converged"}),
		runLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Latency of engine runs",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		runSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Number of steps performed per run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	for _, m := range []prometheus.Collector{c.stepLatency, c.steps, c.runLatency, c.runSteps} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordStep implements kmeans.MetricsCollector.
func (c *Collector) RecordStep(duration time.Duration, converged bool) {
	c.stepLatency.Observe(duration.Seconds())
	c.steps.WithLabelValues(strconv.FormatBool(converged)).Inc()
}

// RecordRun implements kmeans.MetricsCollector.
func (c *Collector) RecordRun(steps int, converged bool, duration time.Duration, err error) {
	status := "exhausted"
	switch {
	case err != nil:
		status = "error"
	case converged:
		status = "converged"
	}
	c.runLatency.WithLabelValues(status).Observe(duration.Seconds())
	c.runSteps.Observe(float64(steps))
}
