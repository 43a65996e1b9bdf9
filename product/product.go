package product

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/homcount/mapping"
)

// Sentinel errors for product iteration.
var (
	// ErrNegativeArity is returned when n or m is negative.
	ErrNegativeArity = errors.New("product: negative arity")

	// ErrSpaceTooLarge is returned when m^n overflows uint64.
	ErrSpaceTooLarge = errors.New("product: space too large")

	// ErrRankOutOfRange is returned for a rank outside the iterable range.
	ErrRankOutOfRange = errors.New("product: rank out of range")
)

// Bounds is a half-open rank interval [Lo, Hi).
type Bounds struct {
	Lo uint64
	Hi uint64
}

// Len returns Hi-Lo.
func (b Bounds) Len() uint64 { return b.Hi - b.Lo }

// Product iterates tuples of {0..m-1}^n with ranks in [lo,hi).
type Product struct {
	n, m  int
	total uint64 // m^n

	lo, hi  uint64
	rank    uint64 // rank of the tuple the next call to Next yields
	cur     []int  // tuple of the current position
	pending bool   // cur still holds the tuple of rank-1 and must be advanced
}

// New returns an iterator over the full space {0..m-1}^n, positioned at rank 0.
func New(n, m int) (*Product, error) {
	if n < 0 || m < 0 {
		return nil, fmt.Errorf("%w: n=%d m=%d", ErrNegativeArity, n, m)
	}
	total, err := mapping.Pow(uint64(m), uint64(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %d^%d", ErrSpaceTooLarge, m, n)
	}

	p := &Product{n: n, m: m, total: total, hi: total, cur: make([]int, n)}
	p.Reset()

	return p, nil
}

// Len returns m^n, the size of the full space.
func (p *Product) Len() uint64 { return p.total }

// Bounds returns the rank interval this iterator covers.
func (p *Product) Bounds() Bounds { return Bounds{Lo: p.lo, Hi: p.hi} }

// Arity returns (n, m).
func (p *Product) Arity() (n, m int) { return p.n, p.m }

// Rank returns the rank of the tuple the next call to Next will yield.
func (p *Product) Rank() uint64 { return p.rank }

// Reset rewinds to the first rank of the covered interval.
func (p *Product) Reset() {
	_ = p.Seek(p.lo)
}

// Seek positions the iterator so that Next yields the tuple of the given rank.
// Seeking to hi is allowed and leaves the iterator exhausted.
// Complexity: O(n).
func (p *Product) Seek(rank uint64) error {
	if rank < p.lo || rank > p.hi {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrRankOutOfRange, rank, p.lo, p.hi)
	}
	p.rank = rank
	p.pending = false
	if rank == p.hi {
		return nil
	}
	r := rank
	for i := p.n - 1; i >= 0; i-- {
		p.cur[i] = int(r % uint64(p.m))
		r /= uint64(p.m)
	}

	return nil
}

// Next returns the next tuple and true, or nil and false when exhausted.
// The returned slice is reused by subsequent calls.
// Complexity: amortized O(1).
func (p *Product) Next() ([]int, bool) {
	if p.rank >= p.hi {
		return nil, false
	}
	if p.pending {
		p.advance()
	}
	p.rank++
	p.pending = true

	return p.cur, true
}

// advance increments cur as an n-digit base-m counter, last position fastest.
func (p *Product) advance() {
	for i := p.n - 1; i >= 0; i-- {
		p.cur[i]++
		if p.cur[i] < p.m {
			return
		}
		p.cur[i] = 0
	}
}

// Range returns a new iterator over ranks [lo,hi) of the same space.
func (p *Product) Range(lo, hi uint64) (*Product, error) {
	if lo > hi || hi > p.total {
		return nil, fmt.Errorf("%w: [%d,%d) not within [0,%d)", ErrRankOutOfRange, lo, hi, p.total)
	}
	q := &Product{n: p.n, m: p.m, total: p.total, lo: lo, hi: hi, cur: make([]int, p.n)}
	q.Reset()

	return q, nil
}

// Split partitions [0, Len) into at most k contiguous, non-empty ranges whose
// sizes differ by at most one. k < 1 is treated as 1. An empty space yields nil.
func (p *Product) Split(k int) []Bounds {
	if p.total == 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	parts := uint64(k)
	if parts > p.total {
		parts = p.total
	}

	size, extra := p.total/parts, p.total%parts
	out := make([]Bounds, 0, parts)
	var lo uint64
	for i := uint64(0); i < parts; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		out = append(out, Bounds{Lo: lo, Hi: hi})
		lo = hi
	}

	return out
}
