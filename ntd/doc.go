// Package ntd models nice tree decompositions of small pattern graphs.
//
// A nice tree decomposition is a rooted tree whose nodes carry bags of
// pattern vertices and one of four node types:
//
//	Leaf       - no children, bag of at most one vertex.
//	Introduce  - one child; bag = child bag ∪ {v}.
//	Forget     - one child; bag = child bag \ {v}.
//	Join       - two children with bags equal to its own.
//
// The vertex v of an Introduce or Forget node (and the single vertex of a
// non-empty Leaf) is the node's unique vertex.
//
// New validates the structure once and precomputes the stingy ordering: a
// post-order in which, at every Join, the child subtree with the larger
// branch number (number of Join nodes) is processed first. Dynamic programs
// that free child tables as soon as the parent is built keep the fewest
// tables alive when following this order.
//
// Decomposes checks the three decomposition properties against a concrete
// pattern graph:
//
//  1. every vertex appears in some bag,
//  2. every edge has both endpoints in a common bag,
//  3. the nodes containing a vertex form a connected subtree.
//
// PossibleEdges and ForEachGraph enumerate the family of graphs that a fixed
// decomposition decomposes, which is how counting methods are compared on
// all patterns of a given shape.
//
// PathDecomposition and CompleteDecomposition build the two canonical shapes
// used for benchmarks: the path P_n with width 1 and the complete graph K_n
// with width n-1.
package ntd
