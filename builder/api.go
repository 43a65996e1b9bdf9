// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty graph,
//     resolves the config, runs constructors in order.
//   - Every constructor appends a fresh block of vertices, so a list of
//     constructors produces their disjoint union with stable vertex numbering.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

// Constructor appends one block of vertices and its edges to g.
// Constructors MUST validate parameters before touching g.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies every constructor in order.
// The first constructor error is wrapped as "BuildGraph: %w" and returned;
// the partially built graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g, err := graph.New(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link emits the edge u→v, and v→u unless the config is directed.
func link(g *graph.Graph, cfg builderConfig, u, v int) error {
	if cfg.directed {
		return g.AddEdge(u, v)
	}

	return g.AddUndirectedEdge(u, v)
}

// addBlock appends n vertices, adding a self-loop on each when cfg.loops is set.
// It returns the index of the first new vertex.
func addBlock(g *graph.Graph, cfg builderConfig, n int) (int, error) {
	first := g.AddVertices(n)
	if cfg.loops {
		for v := first; v < first+n; v++ {
			if err := g.AddEdge(v, v); err != nil {
				return 0, err
			}
		}
	}

	return first, nil
}
