package kmeans

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/centroid"
)

// RunStats describes the outcome of Engine.Run.
type RunStats struct {
	// Steps is the number of steps performed.
	Steps int
	// Converged reports whether the last step found every centroid stable.
	Converged bool
}

// Engine runs the k-means algorithm over a dataset.
//
// Step performs one partition/update cycle. Run repeats Step until the
// centroids converge or a step budget is exhausted. The engine stays usable
// after convergence; a further Step re-partitions against the stable centroids.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	id       uuid.UUID
	ds       *Dataset
	clusters []*Cluster
	steps    int
	logger   *Logger
	metrics  MetricsCollector
}

// NewEngine creates an engine that partitions ds into k clusters.
//
// k must be in (0, ds.Size()]. The initial centroids are the points at the
// indices given by WithSeeds, or k distinct points sampled uniformly at random.
func NewEngine(ds *Dataset, k int, opts ...Option) (*Engine, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if k <= 0 || k > ds.Size() {
		return nil, fmt.Errorf("%w: k=%d, size=%d", ErrInvalidK, k, ds.Size())
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !validTolerance(o.relTol) || !validTolerance(o.absTol) {
		return nil, fmt.Errorf("%w: invalid tolerance (rel=%v, abs=%v)", ErrContractViolation, o.relTol, o.absTol)
	}

	seeds := o.seeds
	if o.seeded {
		if !ValidSeeds(seeds, ds.Size()) {
			return nil, fmt.Errorf("%w: %v for size %d", ErrInvalidSeeds, seeds, ds.Size())
		}
		if len(seeds) != k {
			return nil, fmt.Errorf("%w: got %d seeds for k=%d", ErrInvalidSeeds, len(seeds), k)
		}
	} else {
		seeds = centroid.Sample(ds.Size(), k, o.source)
	}

	clusters := make([]*Cluster, 0, k)
	for _, seed := range seeds {
		c, err := NewCluster(ds, ds.at(seed))
		if err != nil {
			return nil, err
		}
		c.relTol = o.relTol
		c.absTol = o.absTol
		clusters = append(clusters, c)
	}

	id := uuid.New()

	return &Engine{
		id:       id,
		ds:       ds,
		clusters: clusters,
		logger:   o.logger.WithEngine(id).WithK(k).WithDimension(ds.Dimension()),
		metrics:  o.metricsCollector,
	}, nil
}

func validTolerance(tol float64) bool {
	return tol >= 0 && !math.IsNaN(tol) && !math.IsInf(tol, 0)
}

// ID returns the engine ID used to correlate log output.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// K returns the number of clusters.
func (e *Engine) K() int {
	return len(e.clusters)
}

// Dataset returns the dataset being clustered.
func (e *Engine) Dataset() *Dataset {
	return e.ds
}

// Clusters returns the engine's clusters in order.
//
// The returned slice is a copy, but the clusters are the engine's own:
// changes made through them affect the next step.
func (e *Engine) Clusters() []*Cluster {
	out := make([]*Cluster, len(e.clusters))
	copy(out, e.clusters)
	return out
}

// Nearest returns the cluster whose centroid is closest to p.
//
// Ties are broken in favor of clusters occurring earlier in Clusters().
func (e *Engine) Nearest(p Point) (*Cluster, error) {
	if err := checkDimension(p, e.ds.Dimension()); err != nil {
		return nil, err
	}
	return e.clusters[centroid.Nearest(p, e.centroids(), distance.Euclidean)], nil
}

func (e *Engine) centroids() [][]float64 {
	out := make([][]float64, len(e.clusters))
	for j, c := range e.clusters {
		out[j] = c.centroid
	}
	return out
}

// partition assigns every dataset point to exactly one cluster.
func (e *Engine) partition() {
	for _, c := range e.clusters {
		c.Clear()
	}

	cents := e.centroids()
	for i := range e.ds.Size() {
		j := centroid.Nearest(e.ds.at(i), cents, distance.Euclidean)
		e.clusters[j].insert(i)
	}
}

// update recomputes every centroid and reports whether all of them were stable.
func (e *Engine) update() bool {
	stable := true
	for _, c := range e.clusters {
		if !c.Update() {
			stable = false
		}
	}
	return stable
}

// Step performs one cycle of the algorithm: every point is assigned to its
// nearest cluster, then every centroid is recomputed.
//
// It reports true if the algorithm converged, i.e. no centroid changed.
func (e *Engine) Step() bool {
	start := time.Now()

	e.partition()
	converged := e.update()
	e.steps++

	e.metrics.RecordStep(time.Since(start), converged)
	if e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.LogStep(context.Background(), e.steps, converged, e.sizes())
	}

	return converged
}

func (e *Engine) sizes() []int {
	out := make([]int, len(e.clusters))
	for j, c := range e.clusters {
		out[j] = c.Len()
	}
	return out
}

// Run calls Step until the algorithm converges or maxSteps steps have been performed.
//
// Run(ctx, 0) performs no steps. The context is checked before every step;
// on cancellation the stats so far are returned together with ctx.Err().
func (e *Engine) Run(ctx context.Context, maxSteps int) (RunStats, error) {
	if maxSteps < 0 {
		return RunStats{}, fmt.Errorf("%w: maxSteps must be >= 0, got %d", ErrContractViolation, maxSteps)
	}

	start := time.Now()

	var (
		stats RunStats
		err   error
	)
	for range maxSteps {
		if err = ctx.Err(); err != nil {
			break
		}
		stats.Steps++
		if e.Step() {
			stats.Converged = true
			break
		}
	}

	e.metrics.RecordRun(stats.Steps, stats.Converged, time.Since(start), err)
	e.logger.LogRun(ctx, stats, err)

	return stats, err
}
