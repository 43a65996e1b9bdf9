// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_path.go - Path(n), Cycle(n), Star(n) and Isolated(n).
//
// Contract:
//   - Vertices are appended as one block first..first+n-1.
//   - Path emits i→i+1, Cycle additionally closes n-1→0, Star links
//     the first vertex of the block to every other vertex.
//   - Without WithDirected every edge is stored in both orientations.
//
// Complexity: O(n) vertices + O(n) edges for all four.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodIsolated = "Isolated"

	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor for the path P_n on n ≥ 1 vertices.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		first, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, first+i, first+i+1); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodPath, first+i, first+i+1, err)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the cycle C_n on n ≥ 3 vertices.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		first, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			u, v := first+i, first+(i+1)%n
			if err := link(g, cfg, u, v); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor for the star K_{1,n-1}; the hub is the first
// vertex of the block.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := link(g, cfg, hub, leaf); err != nil {
				return fmt.Errorf("%s: edge %d→%d: %w", methodStar, hub, leaf, err)
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n ≥ 0 vertices and no edges
// (apart from loops under WithLoops).
func Isolated(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", methodIsolated, n, ErrTooFewVertices)
		}
		if _, err := addBlock(g, cfg, n); err != nil {
			return fmt.Errorf("%s: %w", methodIsolated, err)
		}

		return nil
	}
}
