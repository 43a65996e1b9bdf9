// Package hom counts graph homomorphisms between small directed graphs.
//
// A homomorphism from a pattern G on vertices [0,n) to a target H on
// vertices [0,m) is a total map f with (f(u), f(v)) ∈ E(H) for every
// (u, v) ∈ E(G). Maps need not be injective or surjective.
//
// Counters:
//
//	Count                   - exhaustive enumeration of all m^n candidates in
//	                          lexicographic order, short-circuiting per edge;
//	                          optionally partitioned across workers.
//	CountHomomorphisms      - Count over literal edge lists.
//	CountByComponents       - product of Count over weakly connected components.
//	CountTreeDecomposition  - dynamic program over a nice tree decomposition,
//	                          O(N·m^(w+1)) for width w.
//	CountFamily             - counts for every graph a decomposition admits,
//	                          one graph at a time or in a single
//	                          equivalence-class dynamic program.
//
// All counters agree on every input they accept. Degenerate inputs are
// explicit: an empty pattern (n = 0) has exactly one homomorphism, and a
// non-empty pattern has none into an empty target (m = 0).
//
// Options (functional, as WithX):
//
//   - WithContext: cancellation; checked between candidates, nodes and
//     family members. Context errors are returned unwrapped.
//   - WithWorkers: split the candidate space into contiguous rank ranges,
//     one goroutine each, with per-worker counters summed at the end.
//   - WithCheckInterval: candidates between cancellation checks.
//   - WithOnCandidate: observe each candidate and its verdict (single worker only).
//   - WithLogger: logrus.FieldLogger for debug and trace records.
//   - WithMaxTableEntries: memory bound for dynamic-programming tables.
//
// Errors:
//
//   - ErrGraphNil               if a graph or decomposition is nil.
//   - ErrInvalidAssignment      if Verify receives a malformed candidate.
//   - ErrOptionViolation        for invalid options or combinations.
//   - ErrSpaceTooLarge          if m^n or a count does not fit in uint64.
//   - ErrTableTooLarge          if a table exceeds MaxTableEntries.
//   - ErrDecompositionMismatch  if a decomposition does not fit the pattern.
//   - ErrUnknownMethod          for unrecognised Method values.
//
// Out-of-range edge endpoints are rejected when graphs are built
// (graph.ErrVertexOutOfRange); they are never silently dropped from a count.
package hom
