package builder

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

// builderErrorf prefixes an error with the constructor name. The format may
// carry %w so sentinel causes stay visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// addNodes inserts nodes 0..n-1 and returns their IDs in index order.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		id, err := cfg.addNode(g, method, i)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// addTunnel links u and v, wrapping failures with method context.
func addTunnel(g *core.Graph, method, u, v string) error {
	if err := g.AddTunnel(u, v); err != nil {
		return builderErrorf(method, "AddTunnel(%s→%s): %w", u, v, err)
	}

	return nil
}
