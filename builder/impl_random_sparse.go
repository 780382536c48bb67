// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomConnected(n, p).
//
// Canonical model:
//   - RandomSparse: include each unordered pair {i,j}, i<j, with prob p
//     (ordered pairs (i,j), i≠j, on directed graphs).
//   - RandomConnected: first a random spanning tree (node i links to a
//     uniformly chosen earlier node), then RandomSparse-style extra tunnels.
//
// Contract:
//   - n ≥ 1 for RandomSparse, n ≥ 2 for RandomConnected (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when sampling actually happens (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/activeplan/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomSparseNodes  = 1
	minRandomConnected    = 2
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like cave
// system over n nodes with independent tunnel probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if err := checkProbability(methodRandomSparse, p, cfg.rng, p > probMin && p < probMax); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		return sampleTunnels(g, cfg.rng, methodRandomSparse, ids, p)
	}
}

// RandomConnected returns a Constructor like RandomSparse whose result is
// guaranteed to be connected from node 0.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnected {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomConnected, ErrTooFewNodes)
		}
		// The spanning tree always samples, so the RNG is mandatory.
		if err := checkProbability(methodRandomConnected, p, cfg.rng, true); err != nil {
			return err
		}
		ids, err := addNodes(g, cfg, methodRandomConnected, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addTunnel(g, methodRandomConnected, ids[cfg.rng.Intn(i)], ids[i]); err != nil {
				return err
			}
			if g.Directed() {
				if err = addTunnel(g, methodRandomConnected, ids[i], ids[cfg.rng.Intn(i)]); err != nil {
					return err
				}
			}
		}

		return sampleTunnels(g, cfg.rng, methodRandomConnected, ids, p)
	}
}

func checkProbability(method string, p float64, rng *rand.Rand, needRNG bool) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if needRNG && rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleTunnels runs one Bernoulli trial per admissible pair. With p ∈ {0,1}
// and no RNG the outcome is decided without sampling.
func sampleTunnels(g *core.Graph, rng *rand.Rand, method string, ids []string, p float64) error {
	n := len(ids)
	directed := g.Directed()
	for i := 0; i < n; i++ {
		j0 := i + 1
		if directed {
			j0 = 0
		}
		for j := j0; j < n; j++ {
			if i == j {
				continue
			}
			var keep bool
			if rng == nil {
				keep = p == probMax
			} else {
				keep = rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err := addTunnel(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
