// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_bipartite.go - CompleteBipartite(a, b).
//
// Contract:
//   - a ≥ 1 and b ≥ 1 (else ErrTooFewVertices).
//   - Left side is first..first+a-1, right side follows immediately.
//   - Emits every cross pair L_i→R_j (i asc, then j asc); mirrored unless directed.
//
// Complexity: O(a+b) vertices + O(a·b) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		left, err := addBlock(g, cfg, a+b)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCompleteBipartite, err)
		}
		right := left + a
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := link(g, cfg, left+i, right+j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", methodCompleteBipartite, left+i, right+j, err)
				}
			}
		}

		return nil
	}
}
