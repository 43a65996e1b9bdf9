// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Model: Erdős–Rényi G(n,p). Each admissible pair is included independently
// with probability p.
//   - Symmetric mode: unordered pairs {i,j}, i<j, stored both ways.
//   - Directed mode: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required only for 0 < p < 1 (else ErrNeedRandSource).
//   - Trial order is fixed (i asc, j asc), so a seed fully determines the graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		// include decides one trial; p ∈ {0,1} never consumes randomness.
		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !include() {
					continue
				}
				if err := link(g, cfg, first+i, first+j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodRandomSparse, first+i, first+j, err)
				}
			}
		}

		return nil
	}
}
