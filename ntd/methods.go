// File: methods.go
// Role: read-only accessors and graph-facing queries on Decomposition.

package ntd

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/homcount/graph"
)

// NodeCount returns the number of tree nodes.
func (d *Decomposition) NodeCount() int { return len(d.nodes) }

// VertexCount returns 1 + the largest vertex in any bag (0 if all bags are empty).
func (d *Decomposition) VertexCount() int { return d.nVerts }

// Width returns the largest bag size minus one (-1 if all bags are empty).
func (d *Decomposition) Width() int { return d.width }

// Root returns the root node.
func (d *Decomposition) Root() int { return d.root }

// Bag returns a sorted copy of p's bag, or nil for an unknown node.
func (d *Decomposition) Bag(p int) []int {
	if p < 0 || p >= len(d.nodes) {
		return nil
	}
	out := make([]int, len(d.nodes[p].Bag))
	copy(out, d.nodes[p].Bag)
	return out
}

// Type returns the node type of p.
func (d *Decomposition) Type(p int) (NodeType, bool) {
	if p < 0 || p >= len(d.nodes) {
		return 0, false
	}
	return d.nodes[p].Type, true
}

// Children returns p's children in insertion order.
func (d *Decomposition) Children(p int) []int { return d.tree.Children(p) }

// Parent returns p's parent; the root has none.
func (d *Decomposition) Parent(p int) (int, bool) { return d.tree.Parent(p) }

// UniqueChild returns the only child of an Introduce or Forget node.
func (d *Decomposition) UniqueChild(p int) (int, bool) {
	t, ok := d.Type(p)
	if !ok || (t != Introduce && t != Forget) {
		return -1, false
	}
	return d.tree.children[p][0], true
}

// UniqueVertex returns the introduced, forgotten or leaf vertex of p.
// Join nodes and empty leaves have none.
func (d *Decomposition) UniqueVertex(p int) (int, bool) {
	if p < 0 || p >= len(d.unique) || d.unique[p] < 0 {
		return -1, false
	}
	return d.unique[p], true
}

// StingyOrdering returns a copy of the precomputed processing order.
// Every node appears after all of its descendants; the root is last.
func (d *Decomposition) StingyOrdering() []int {
	return append([]int(nil), d.order...)
}

// Decomposes reports, as a wrapped ErrNotDecomposition, the first violated
// decomposition property for g. Bags may not mention vertices outside g.
// Complexity: O(N·w² + |E(G)|·N).
func (d *Decomposition) Decomposes(g *graph.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrNotDecomposition)
	}
	n := g.VertexCount()
	if d.nVerts > n {
		return fmt.Errorf("%w: bag vertex %d outside graph of %d vertices",
			ErrNotDecomposition, d.nVerts-1, n)
	}

	// tops[v] counts nodes containing v whose parent does not; exactly one
	// such node means the occurrences of v are connected.
	tops := make([]int, n)
	for p, nd := range d.nodes {
		par, hasParent := d.tree.Parent(p)
		for _, v := range nd.Bag {
			if !hasParent || !containsSorted(d.nodes[par].Bag, v) {
				tops[v]++
			}
		}
	}
	for v, c := range tops {
		switch {
		case c == 0:
			return fmt.Errorf("%w: vertex %d is in no bag", ErrNotDecomposition, v)
		case c > 1:
			return fmt.Errorf("%w: bags containing vertex %d are disconnected", ErrNotDecomposition, v)
		}
	}

	covered := d.coveredPairs()
	for _, e := range g.Edges() {
		if _, ok := covered[orderedPair(e.From, e.To)]; !ok {
			return fmt.Errorf("%w: edge %v not covered by any bag", ErrNotDecomposition, e)
		}
	}

	return nil
}

// PossibleEdges returns every unordered pair {u,v} (u ≤ v, loops included)
// that shares a bag, as edges with From ≤ To in lexicographic order.
func (d *Decomposition) PossibleEdges() []graph.Edge {
	covered := d.coveredPairs()
	out := make([]graph.Edge, 0, len(covered))
	for e := range covered {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// ForEachGraph calls fn once for every symmetric graph on VertexCount()
// vertices whose edge set is a subset of PossibleEdges. Subsets are visited
// in increasing bitmask order, bit i selecting PossibleEdges()[i]; the empty
// graph comes first. Iteration stops at the first error from fn, which is
// returned unchanged.
// Returns ErrTooManyEdges when more than 62 possible edges exist.
func (d *Decomposition) ForEachGraph(fn func(g *graph.Graph) error) error {
	possible := d.PossibleEdges()
	if len(possible) > maxFamilyEdges {
		return fmt.Errorf("%w: %d > %d", ErrTooManyEdges, len(possible), maxFamilyEdges)
	}

	total := uint64(1) << uint(len(possible))
	for mask := uint64(0); mask < total; mask++ {
		g, err := graph.New(d.nVerts)
		if err != nil {
			return err
		}
		for i, e := range possible {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			if err := g.AddUndirectedEdge(e.From, e.To); err != nil {
				return err
			}
		}
		if err := fn(g); err != nil {
			return err
		}
	}

	return nil
}

// coveredPairs collects every ordered-low-high pair sharing a bag.
func (d *Decomposition) coveredPairs() map[graph.Edge]struct{} {
	covered := make(map[graph.Edge]struct{})
	for _, nd := range d.nodes {
		for i, u := range nd.Bag {
			for _, v := range nd.Bag[i:] {
				covered[graph.Edge{From: u, To: v}] = struct{}{}
			}
		}
	}
	return covered
}

func orderedPair(u, v int) graph.Edge {
	if u > v {
		u, v = v, u
	}
	return graph.Edge{From: u, To: v}
}

func containsSorted(a []int, v int) bool {
	i := sort.SearchInts(a, v)
	return i < len(a) && a[i] == v
}
