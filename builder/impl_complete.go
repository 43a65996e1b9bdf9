// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_complete.go - Complete(n) and CompleteReflexive(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Complete emits every pair {i,j}, i<j, in lexicographic order.
//   - CompleteReflexive additionally adds every loop (i,i); with the
//     default symmetric mode it is the full relation [0,n)×[0,n).
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodComplete          = "Complete"
	methodCompleteReflexive = "CompleteReflexive"
	minCompleteNodes        = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return complete(methodComplete, n, false)
}

// CompleteReflexive returns a Constructor for K_n with a loop on every vertex.
func CompleteReflexive(n int) Constructor {
	return complete(methodCompleteReflexive, n, true)
}

func complete(method string, n int, reflexive bool) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minCompleteNodes, ErrTooFewVertices)
		}
		first, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		for i := first; i < first+n; i++ {
			if reflexive {
				if err := g.AddEdge(i, i); err != nil {
					return fmt.Errorf("%s: loop %d: %w", method, i, err)
				}
			}
			for j := i + 1; j < first+n; j++ {
				if err := link(g, cfg, i, j); err != nil {
					return fmt.Errorf("%s: edge %d→%d: %w", method, i, j, err)
				}
			}
		}

		return nil
	}
}
