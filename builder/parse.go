// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// parse.go - text front end turning node descriptions into a frozen core.Graph.
//
// Grammar (one node per line, blank lines and '#' comments ignored):
//
//	Valve <ID> has flow rate=<N>; tunnels lead to valves <ID>, <ID>, ...
//	Valve <ID> has flow rate=<N>; tunnel leads to valve <ID>
//
// Contract:
//   - Every referenced neighbor must be described somewhere in the input;
//     forward references are allowed.
//   - Rates must parse as non-negative base-10 integers.
//   - The result is frozen; any invariant violation surfaces as *ParseError.
//
// Complexity:
//   - Time O(L + E) over L input bytes and E tunnels; Space O(V + E).

package builder

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/activeplan/core"
)

const (
	valvePrefix   = "Valve "
	ratePrefix    = " has flow rate="
	tunnelsPlural = "; tunnels lead to valves "
	tunnelSingle  = "; tunnel leads to valve "
	commentPrefix = "#"
)

// ParseOption customizes Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	start    string
	directed bool
}

// WithStart overrides the start node (default core.DefaultStart).
func WithStart(id string) ParseOption {
	if id == "" {
		panic("builder: WithStart(\"\")")
	}
	return func(c *parseConfig) { c.start = id }
}

// WithDirectedTunnels keeps tunnels one-way exactly as listed.
func WithDirectedTunnels() ParseOption {
	return func(c *parseConfig) { c.directed = true }
}

// Parse reads node descriptions from r and returns a frozen graph.
func Parse(r io.Reader, opts ...ParseOption) (*core.Graph, error) {
	cfg := parseConfig{start: core.DefaultStart}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph(core.WithDirected(cfg.directed), core.WithStart(cfg.start))
	seen := make(map[string]int)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		id, rate, nbrs, err := parseLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[id]; dup {
			return nil, parseErrorf(lineNo, text, ErrDuplicateNode, "%q first described on line %d", id, first)
		}
		seen[id] = lineNo
		if err = g.AddNode(id, rate); err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		for _, nb := range nbrs {
			if err = g.AddTunnel(id, nb); err != nil {
				return nil, &ParseError{Line: lineNo, Text: text, Err: err}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Err: err}
	}
	if err := g.Freeze(); err != nil {
		return nil, &ParseError{Err: err}
	}

	return g, nil
}

// ParseString is Parse over an in-memory description.
func ParseString(s string, opts ...ParseOption) (*core.Graph, error) {
	return Parse(strings.NewReader(s), opts...)
}

// parseLine splits one description into ID, rate and neighbor IDs.
func parseLine(lineNo int, text string) (string, int64, []string, error) {
	rest, ok := strings.CutPrefix(text, valvePrefix)
	if !ok {
		return "", 0, nil, parseErrorf(lineNo, text, ErrMalformedLine, "missing %q prefix", strings.TrimSpace(valvePrefix))
	}
	id, rest, ok := strings.Cut(rest, ratePrefix)
	if !ok || !validID(id) {
		return "", 0, nil, parseErrorf(lineNo, text, ErrMalformedLine, "missing node ID or rate clause")
	}

	var rateText, list string
	if i := strings.IndexByte(rest, ';'); i >= 0 {
		rateText = rest[:i]
		tail := rest[i:]
		switch {
		case strings.HasPrefix(tail, tunnelsPlural):
			list = tail[len(tunnelsPlural):]
		case strings.HasPrefix(tail, tunnelSingle):
			list = tail[len(tunnelSingle):]
		default:
			return "", 0, nil, parseErrorf(lineNo, text, ErrMalformedLine, "unrecognized tunnel clause")
		}
	} else {
		// A node without tunnels is legal; it is simply isolated.
		rateText = rest
	}

	rate, err := strconv.ParseInt(strings.TrimSpace(rateText), 10, 64)
	if err != nil || rate < 0 {
		if err == nil {
			err = errors.New("negative")
		}
		return "", 0, nil, parseErrorf(lineNo, text, ErrBadRate, "%q: %v", rateText, err)
	}

	var nbrs []string
	if strings.TrimSpace(list) != "" {
		for _, part := range strings.Split(list, ",") {
			nb := strings.TrimSpace(part)
			if !validID(nb) {
				return "", 0, nil, parseErrorf(lineNo, text, ErrMalformedLine, "bad neighbor %q", nb)
			}
			if nb == id {
				return "", 0, nil, parseErrorf(lineNo, text, ErrMalformedLine, "%q lists itself as neighbor", id)
			}
			nbrs = append(nbrs, nb)
		}
	}

	return id, rate, nbrs, nil
}

// validID accepts non-empty IDs without separators or whitespace.
func validID(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, " \t,;=")
}
