package bfs

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

// frontier entry
type hop struct {
	id    string
	depth int
}

// walker is the state of one traversal. Depth doubles as the visited set.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []hop
	head    int
	pending map[string]struct{} // targets not yet reached
	res     *Result
}

// BFS runs breadth-first search on g from startID.
//
// Errors:
//   - ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation.
//   - ErrNeighbors (wrapped) when the graph rejects a lookup.
//   - ctx.Err() on cancellation; OnVisit errors wrapped with the node ID.
//
// On error the partial Result is still returned.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]hop, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	if len(o.Targets) > 0 {
		w.pending = make(map[string]struct{}, len(o.Targets))
		for _, id := range o.Targets {
			w.pending[id] = struct{}{}
		}
	}

	w.reach(startID, 0, "")

	return w.res, w.run()
}

// reach records id at depth d and queues it.
func (w *walker) reach(id string, d int, parent string) {
	w.res.Depth[id] = d
	w.res.Order = append(w.res.Order, id)
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, hop{id: id, depth: d})
	delete(w.pending, id)
}

func (w *walker) done() bool {
	return w.pending != nil && len(w.pending) == 0
}

func (w *walker) run() error {
	for w.head < len(w.queue) && !w.done() {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		cur := w.queue[w.head]
		w.head++
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", cur.id, err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}

		nbrs, err := w.graph.NeighborIDs(cur.id)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrNeighbors, cur.id, err)
		}
		for _, nb := range nbrs {
			if _, seen := w.res.Depth[nb]; !seen {
				w.reach(nb, cur.depth+1, cur.id)
			}
		}
	}

	return nil
}
