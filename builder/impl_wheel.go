// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_wheel.go - Wheel(n).
//
// The wheel W_n is a hub joined to every vertex of a rim cycle C_{n-1}.
// The hub is the first vertex of the block; the rim follows in order.
//
// Contract: n ≥ 4 (else ErrTooFewVertices).
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for W_n on n vertices.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub, err := addBlock(g, cfg, n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := hub+1+i, hub+1+(i+1)%rim
			if err := link(g, cfg, u, v); err != nil {
				return fmt.Errorf("%s: rim %d→%d: %w", methodWheel, u, v, err)
			}
			if err := link(g, cfg, hub, u); err != nil {
				return fmt.Errorf("%s: spoke %d→%d: %w", methodWheel, hub, u, err)
			}
		}

		return nil
	}
}
