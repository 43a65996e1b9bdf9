// File: types.go
// Role: Graph, Edge, sentinel errors and constructors.
// Concurrency:
//   - mu guards n and edges; every exported method takes it.
//   - Adjacency snapshots are immutable and need no lock.

package graph

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNegativeVertexCount indicates a negative vertex count was requested.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside the declared range [0,n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrDuplicateVertex indicates a vertex listed twice where a set was expected.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")
)

// Edge is an ordered pair (From, To) of vertex indices.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "(u,v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.From, e.To)
}

// Graph is a finite directed relation over the vertex range [0,n).
//
// The zero value is not usable; construct with New or FromEdges.
type Graph struct {
	mu sync.RWMutex // guards n and edges

	n     int               // vertex count; vertices are 0..n-1
	edges map[Edge]struct{} // edge set
}

// New returns an edgeless Graph over [0,n).
// Complexity: O(1).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}

	return &Graph{n: n, edges: make(map[Edge]struct{})}, nil
}

// FromEdges returns a Graph over [0,n) holding the given edges.
// The first edge with an endpoint outside [0,n) aborts construction
// with ErrVertexOutOfRange.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// Complete returns the complete relation on [0,m): every ordered pair (i,j)
// with i≠j, plus every (i,i) when loops is true.
// Complexity: O(m²).
func Complete(m int, loops bool) (*Graph, error) {
	g, err := New(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j && !loops {
				continue
			}
			g.edges[Edge{From: i, To: j}] = struct{}{}
		}
	}

	return g, nil
}
