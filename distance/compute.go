// SPDX-License-Identifier: MIT
package distance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/activeplan/bfs"
	"github.com/katalvlaran/activeplan/core"
)

var (
	tracer = otel.Tracer("activeplan.distance")
	meter  = otel.Meter("activeplan.distance")
)

var (
	computeLatency metric.Float64Histogram
	metricsOnce    sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		var err error
		computeLatency, err = meter.Float64Histogram(
			"activeplan.distance.compute.duration",
			metric.WithDescription("Duration of distance table construction"),
			metric.WithUnit("s"),
		)
		if err != nil {
			computeLatency = nil
		}
	})
}

// Option configures Compute.
type Option func(*Options)

// Options holds Compute parameters.
type Options struct {
	// Concurrency bounds parallel searches; 1 runs them sequentially.
	Concurrency int

	err error
}

// DefaultOptions returns sequential settings.
func DefaultOptions() Options {
	return Options{Concurrency: 1}
}

// WithConcurrency runs up to n searches at once. n < 1 is rejected.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}

// Compute builds the travel-time table of a frozen graph.
//
// Implementation:
//   - Stage 1: Index the start node, then every reward node except the start.
//   - Stage 2: Run one BFS per indexed node; row i only reads depths of the
//     search rooted at i, so rows are filled without locking.
//   - Stage 3: Fan out through errgroup, bounded by Concurrency. The first
//     failure (including ctx cancellation) cancels the rest.
//
// Errors:
//   - ErrNilGraph, ErrNotFrozen, ErrOptionViolation.
//   - ctx.Err() (wrapped by bfs) on cancellation.
//
// Complexity:
//   - Time O(K·(V+E)) for K reward nodes. Space O(K² + V).
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, ErrNotFrozen
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	initMetrics()
	began := time.Now()
	ctx, span := tracer.Start(ctx, "distance.Compute",
		trace.WithAttributes(
			attribute.Int("graph.node_count", g.NodeCount()),
			attribute.Int("graph.edge_count", g.EdgeCount()),
			attribute.Int("distance.concurrency", o.Concurrency),
		),
	)
	defer span.End()

	start := g.Start()
	ids := []string{start}
	for _, id := range g.RewardNodes() {
		if id != start {
			ids = append(ids, id)
		}
	}
	rates := make([]int64, len(ids))
	for i, id := range ids {
		r, err := g.Rate(id)
		if err != nil {
			return nil, err
		}
		rates[i] = r
	}
	t := newTable(ids, rates)
	n := len(ids)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Concurrency)
	for i := 0; i < n; i++ {
		row := i
		eg.Go(func() error {
			res, err := bfs.BFS(g, ids[row], bfs.WithContext(egCtx), bfs.WithTargets(ids...))
			if err != nil {
				return fmt.Errorf("distance: from %q: %w", ids[row], err)
			}
			for j, to := range ids {
				if d, ok := res.Distance(to); ok {
					t.dist[row*n+j] = int64(d)
				} else {
					t.dist[row*n+j] = Unreachable
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("distance.table_size", n))
	if computeLatency != nil {
		computeLatency.Record(ctx, time.Since(began).Seconds(),
			metric.WithAttributes(attribute.Int("distance.table_size", n)))
	}

	return t, nil
}
