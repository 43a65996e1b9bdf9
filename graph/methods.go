// File: methods.go
// Role: vertex/edge lifecycle and queries.
// Determinism:
//   - Edges() returns edges sorted by (From, To) so verification order is stable.

package graph

import (
	"fmt"
	"sort"
)

// VertexCount returns n, the size of the vertex range.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// EdgeCount returns the number of distinct ordered pairs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AddVertices grows the range by k vertices and returns the index of the
// first new vertex. k ≤ 0 is a no-op that returns the current count.
func (g *Graph) AddVertices(k int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := g.n
	if k > 0 {
		g.n += k
	}

	return first
}

// AddEdge inserts the ordered pair (u,v). Re-adding an existing pair is a no-op.
// Returns ErrVertexOutOfRange if either endpoint lies outside [0,n).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkRange(u, v); err != nil {
		return err
	}
	g.edges[Edge{From: u, To: v}] = struct{}{}

	return nil
}

// AddUndirectedEdge inserts both (u,v) and (v,u); a loop (u,u) is stored once.
func (g *Graph) AddUndirectedEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkRange(u, v); err != nil {
		return err
	}
	g.edges[Edge{From: u, To: v}] = struct{}{}
	g.edges[Edge{From: v, To: u}] = struct{}{}

	return nil
}

// HasEdge reports whether (u,v) is in the edge set. Out-of-range endpoints
// simply report false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Edge{From: u, To: v}]

	return ok
}

// Edges returns a sorted copy of the edge set, ordered by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{n: g.n, edges: make(map[Edge]struct{}, len(g.edges))}
	for e := range g.edges {
		c.edges[e] = struct{}{}
	}

	return c
}

// Induced returns the subgraph induced by vertices, relabelled so that
// vertices[i] becomes vertex i. Edges with an endpoint outside the set are dropped.
func (g *Graph) Induced(vertices []int) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	index := make(map[int]int, len(vertices))
	for i, v := range vertices {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("%w: vertex %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, v)
		}
		index[v] = i
	}

	sub := &Graph{n: len(vertices), edges: make(map[Edge]struct{})}
	for e := range g.edges {
		from, okFrom := index[e.From]
		to, okTo := index[e.To]
		if okFrom && okTo {
			sub.edges[Edge{From: from, To: to}] = struct{}{}
		}
	}

	return sub, nil
}

// checkRange validates both endpoints; caller holds mu.
func (g *Graph) checkRange(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: edge (%d,%d) not in [0,%d)", ErrVertexOutOfRange, u, v, g.n)
	}

	return nil
}
