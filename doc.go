// Package homcount counts homomorphisms between finite directed graphs.
//
// A homomorphism from G to H is a map f of G's vertices to H's vertices such
// that every edge (u,v) of G lands on an edge (f(u), f(v)) of H. Self-loops
// are ordinary edges: a looped vertex of G can only go to a looped vertex of H.
//
// Everything is organized under these subpackages:
//
//	graph/     Graph, Edge and the dense Adjacency snapshot used for O(1) checks
//	builder/   composable constructors: path, cycle, star, complete, wheel, grid, random
//	mapping/   base-m integer encoding of vertex assignments
//	product/   lazy, seekable, splittable Cartesian product of assignments
//	ntd/       nice tree decompositions, stingy ordering, graph families
//	hom/       brute force, per-component, tree-decomposition and family counters
//	catalog/   badger-backed store of computed counts with an LRU front
//	config/    YAML and TOML job files
//	cmd/       homcount, the command-line driver
//
// Quick ASCII example:
//
//	1───2───4          0───1
//	                   │   │
//	0   3              3───2
//
// maps into the 4-cycle in 4·4·4·2·2 = 256 ways: the isolated vertices 0 and 3
// go anywhere, 2 goes anywhere, and 1 and 4 each pick one of 2's neighbours.
//
//	go get github.com/katalvlaran/homcount
package homcount
