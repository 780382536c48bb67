package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failed neighbor lookup.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal. Invalid values are recorded and reported
// as ErrOptionViolation by BFS.
type Option func(*Options)

// Options customizes a traversal.
type Options struct {
	// Ctx cancels the traversal between visits.
	Ctx context.Context

	// OnVisit runs for every dequeued node; an error aborts the traversal.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops expansion beyond that many tunnels.
	MaxDepth int

	// Targets, when non-empty, ends the traversal once every listed node
	// has been reached. Nodes absent from the graph are never reached.
	Targets []string

	err error
}

// DefaultOptions returns an unbounded traversal with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. Nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d tunnels from the start; 0 means no
// limit and negative values are rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithTargets stops the traversal as soon as all ids have been reached.
// Depths of targets are exact; other nodes may be left unexplored.
func WithTargets(ids ...string) Option {
	return func(o *Options) {
		o.Targets = append(o.Targets[:0:0], ids...)
	}
}

// Result holds a traversal outcome.
type Result struct {
	// Order lists reached nodes in discovery order.
	Order []string
	// Depth maps each reached node to its tunnel count from the start.
	Depth map[string]int
	// Parent maps each reached node except the start to its predecessor.
	Parent map[string]string
}

// Distance returns the tunnel count from the start to id and whether id was reached.
func (r *Result) Distance(id string) (int, bool) {
	d, ok := r.Depth[id]
	return d, ok
}

// PathTo returns the node sequence from the start to dest, both inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
