// Package product provides a lazy, restartable iterator over the Cartesian
// product {0..m-1}^n in lexicographic order.
//
// What
//
//   - Each element is a tuple t of length n with t[i] ∈ [0,m).
//   - Tuples are produced in lexicographic order: position 0 is the most
//     significant, position n-1 varies fastest. This matches the order of
//     nested loops over positions 0..n-1.
//   - Every tuple has a rank in [0, m^n); Seek jumps to a rank in O(n).
//   - Range restricts iteration to ranks [lo,hi) and Split partitions the
//     whole space into contiguous ranges, which is how the counting workers
//     divide the candidate space without materialising it.
//
// Degenerate spaces
//
//   - n = 0: exactly one tuple, the empty one (for any m ≥ 0).
//   - m = 0 and n > 0: no tuples.
//
// Memory
//
//	Next returns the same backing slice on every call; copy it if you need
//	to keep a tuple. A Product is not safe for concurrent use; give each
//	goroutine its own Range.
//
// Errors
//
//   - ErrNegativeArity   if n < 0 or m < 0.
//   - ErrSpaceTooLarge   if m^n does not fit in a uint64.
//   - ErrRankOutOfRange  if Seek or Range receive ranks outside the space.
package product
