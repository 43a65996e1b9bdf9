// Package graph provides the finite directed relation used as both the source
// and the target of a homomorphism count.
//
// A Graph G = (V,E) has a contiguous vertex range V = [0,n) and an edge set
// E ⊆ V×V of ordered pairs:
//
//   - Self-loops are allowed.
//   - Duplicate edges collapse (set semantics), so EdgeCount counts distinct pairs.
//   - An undirected edge {u,v} is stored as the two ordered pairs (u,v) and (v,u).
//   - Every endpoint is validated against the declared range; an edge that
//     leaves [0,n) is rejected with ErrVertexOutOfRange, never silently dropped.
//
// Mutation goes through a sync.RWMutex, so a Graph can be assembled from
// several goroutines. Counting algorithms never query the Graph in their hot
// loop; they take an Adjacency snapshot first:
//
//	adj := g.Adjacency() // bitmap or per-row sets, immutable
//	adj.Has(u, v)        // O(1), lock-free, safe to share across workers
//
// Core Methods:
//
//	New(n) / FromEdges(n, edges)      // construction, O(n) / O(n+|E|)
//	AddVertices(k) (first int)        // grow the range, O(1)
//	AddEdge(u, v) / AddUndirectedEdge // O(1) amortized
//	HasEdge(u, v) bool                // O(1)
//	Edges() []Edge                    // sorted by (From, To), O(E log E)
//	Components() [][]int              // weakly connected components, O(V+E)
//	Induced(vertices) (*Graph, error) // relabelled induced subgraph
//	Complete(m, loops)                // complete relation on [0,m)
//
// Errors:
//
//	ErrNegativeVertexCount – n < 0
//	ErrVertexOutOfRange    – an edge endpoint outside [0,n)
//	ErrDuplicateVertex     – Induced got the same vertex twice
package graph
