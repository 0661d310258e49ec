package kmeans

import (
	"log/slog"
	"math/rand/v2"

	"github.com/hupe1980/kmeans/internal/centroid"
)

type options struct {
	seeds            []int
	seeded           bool
	source           rand.Source
	relTol           float64
	absTol           float64
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		relTol:           centroid.DefaultRelTol,
		absTol:           centroid.DefaultAbsTol,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures Engine constructor behavior.
type Option func(*options)

// WithSeeds selects the dataset indices whose points become the initial centroids.
//
// The seeds must be exactly k distinct indices into the dataset (see ValidSeeds).
// One cluster is created per seed, in seed order. Without this option the initial
// centroids are sampled uniformly at random without replacement.
func WithSeeds(seeds ...int) Option {
	return func(o *options) {
		o.seeds = append([]int(nil), seeds...)
		o.seeded = true
	}
}

// WithSource configures the random source used to sample initial centroids.
// If nil is passed, the process-wide generator of math/rand/v2 is used.
//
// Example with a reproducible source:
//
//	eng, _ := kmeans.NewEngine(ds, 3, kmeans.WithSource(rand.NewPCG(1, 2)))
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithTolerance configures the stability check of centroid updates.
// A centroid coordinate is considered unchanged when it moved by at most absTol
// or by at most relTol relative to its magnitude.
func WithTolerance(relTol, absTol float64) Option {
	return func(o *options) {
		o.relTol = relTol
		o.absTol = absTol
	}
}

// WithLogger configures structured logging for engine operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelDebug)
//	eng, _ := kmeans.NewEngine(ds, 3, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring steps and runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	eng, _ := kmeans.NewEngine(ds, 3, kmeans.WithMetricsCollector(metrics))
//	// ... eng.Run(ctx, 100) ...
//	stats := metrics.GetStats()
//	fmt.Printf("Steps: %d, Avg step: %dns\n", stats.StepCount, stats.StepAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
