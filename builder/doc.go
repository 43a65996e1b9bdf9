// Package builder provides deterministic, functional-options style constructors
// for the small pattern and target graphs that homomorphism counting works on.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates an empty graph.Graph and runs constructors in order.
//     – Constructor:  appends one block of vertices and its edges.
//   - Configuration primitives (BuilderOption):
//     – WithSeed, WithRand:  randomness for stochastic constructors.
//     – WithDirected:        emit a single orientation per edge.
//     – WithLoops:           add a self-loop on every created vertex.
//   - Constructors:
//     – Path, Cycle, Star, Wheel, Grid:     sparse, low-treewidth patterns.
//     – Complete, CompleteReflexive:        typical targets (K_m, K_m with loops).
//     – CompleteBipartite, Isolated:        structural extremes.
//     – RandomSparse:                       Erdős–Rényi G(n,p).
//
// Guarantees:
//
//   - Composition: each constructor appends a fresh disjoint block, so
//     BuildGraph(nil, Path(3), Cycle(4)) is P_3 ⊔ C_4 on vertices 0..6.
//   - Symmetric by default: every edge is stored in both orientations, which
//     matches how an undirected graph is read by the hom package.
//   - Fast-fail: invalid parameters surface as sentinel errors wrapped with the
//     constructor name (e.g. "Cycle: n=2 < min=3: builder: parameter too small").
//   - Determinism: with a fixed seed the output is reproducible bit-for-bit.
//
// See the individual constructors for exact vertex numbering and complexity.
package builder
