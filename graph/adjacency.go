package graph

import "math/bits"

// wordBits is the width of one bitmap word.
const wordBits = 64

// denseWordsPerEdge bounds the bitmap size relative to the edge count: a
// snapshot uses the n×n bitmap only while it needs at most this many words
// per edge (plus one per vertex).
const denseWordsPerEdge = 4

// Adjacency is an immutable membership snapshot taken from a Graph. Dense
// snapshots are an n×n bitmap, row u column v set iff (u,v) is an edge;
// sparse snapshots keep one set of heads per tail. It is safe for concurrent
// reads.
type Adjacency struct {
	n      int
	bits   []uint64           // dense form, nil when sparse
	sparse []map[int]struct{} // sparse form: sparse[u] holds every v with (u,v)
}

// Adjacency snapshots the current edge set. The bitmap is chosen when it is
// not much larger than the edge list; otherwise the snapshot is sparse.
// Complexity: O(min(n²/64, n + E)) time and space; Has is O(1) either way
// (average case for sparse snapshots).
func (g *Graph) Adjacency() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a := &Adjacency{n: g.n}
	if words, ok := denseWords(g.n, len(g.edges)); ok {
		a.bits = make([]uint64, words)
		for e := range g.edges {
			i := uint64(e.From)*uint64(g.n) + uint64(e.To)
			a.bits[i/wordBits] |= 1 << (i % wordBits)
		}
		return a
	}

	a.sparse = make([]map[int]struct{}, g.n)
	for e := range g.edges {
		if a.sparse[e.From] == nil {
			a.sparse[e.From] = make(map[int]struct{})
		}
		a.sparse[e.From][e.To] = struct{}{}
	}

	return a
}

// denseWords returns the bitmap length for n vertices and whether the
// bitmap should be used for a graph with e edges.
func denseWords(n, e int) (uint64, bool) {
	hi, cells := bits.Mul64(uint64(n), uint64(n))
	if hi != 0 {
		return 0, false
	}
	words := cells/wordBits + 1
	if cells%wordBits == 0 {
		words--
	}
	return words, words <= denseWordsPerEdge*uint64(e+n)+1
}

// N returns the vertex count the snapshot was taken over.
func (a *Adjacency) N() int { return a.n }

// Dense reports whether the snapshot is the n×n bitmap.
func (a *Adjacency) Dense() bool { return a.sparse == nil }

// Has reports whether (u,v) is an edge. Out-of-range endpoints report false.
func (a *Adjacency) Has(u, v int) bool {
	if u < 0 || v < 0 || u >= a.n || v >= a.n {
		return false
	}
	if a.sparse != nil {
		_, ok := a.sparse[u][v]
		return ok
	}
	i := uint64(u)*uint64(a.n) + uint64(v)

	return a.bits[i/wordBits]&(1<<(i%wordBits)) != 0
}
