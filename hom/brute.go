package hom

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/product"
)

// checker verifies candidates against a fixed pattern and target.
type checker struct {
	edges  []graph.Edge     // pattern edges in sorted order
	target *graph.Adjacency // read-only snapshot, shared by workers
}

func newChecker(g *graph.Graph, target *graph.Adjacency) *checker {
	return &checker{edges: g.Edges(), target: target}
}

// accepts tests the edges in order and stops at the first one not preserved.
func (c *checker) accepts(f []int) bool {
	for _, e := range c.edges {
		if !c.target.Has(f[e.From], f[e.To]) {
			return false
		}
	}
	return true
}

// Count returns the number of homomorphisms from g to h by exhaustive
// enumeration of all m^n candidates in lexicographic order, where n and m
// are the vertex counts of g and h. Edge verification short-circuits.
//
// Degenerate inputs: n = 0 yields 1; m = 0 with n > 0 yields 0.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrSpaceTooLarge when m^n does
// not fit in uint64, or the context error on cancellation.
//
// Complexity: O(m^n · |E(G)|) time; memory is O(n) plus the target
// snapshot, which is the smaller of an m×m bitmap and an O(m + |E(H)|) set.
func Count(g, h *graph.Graph, opts ...Option) (uint64, error) {
	if g == nil || h == nil {
		return 0, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err := checkSpace(g.VertexCount(), h.VertexCount()); err != nil {
		return 0, err
	}

	return countInto(g, h.Adjacency(), o)
}

// checkSpace rejects m^n candidate spaces that do not fit in uint64 before
// any snapshot is taken.
func checkSpace(n, m int) error {
	if _, err := product.New(n, m); err != nil {
		if errors.Is(err, product.ErrSpaceTooLarge) {
			return fmt.Errorf("%w: %d^%d candidates", ErrSpaceTooLarge, m, n)
		}
		return err
	}
	return nil
}

// countInto enumerates every assignment of g's vertices into target.
func countInto(g *graph.Graph, target *graph.Adjacency, o Options) (uint64, error) {
	n, m := g.VertexCount(), target.N()
	space, err := product.New(n, m)
	if err != nil {
		if errors.Is(err, product.ErrSpaceTooLarge) {
			return 0, fmt.Errorf("%w: %d^%d candidates", ErrSpaceTooLarge, m, n)
		}
		return 0, err
	}

	c := newChecker(g, target)
	log := o.Logger.WithFields(logrus.Fields{
		"n": n, "m": m, "edges": len(c.edges), "candidates": space.Len(), "workers": o.Workers,
	})
	log.Debug("hom: brute force start")

	var total uint64
	if o.Workers == 1 {
		total, err = scan(o.Ctx, space, c, o.CheckInterval, o.OnCandidate)
	} else {
		total, err = scanParallel(o.Ctx, space, c, o, log)
	}
	if err != nil {
		return 0, err
	}

	log.WithField("count", total).Debug("hom: brute force done")
	return total, nil
}

// CountHomomorphisms is the edge-list form of Count: it builds G over [0,n)
// and H over [0,m) and counts homomorphisms between them. Edge endpoints
// outside the declared range fail with graph.ErrVertexOutOfRange.
func CountHomomorphisms(gEdges, hEdges []graph.Edge, n, m int, opts ...Option) (uint64, error) {
	g, err := graph.FromEdges(n, gEdges)
	if err != nil {
		return 0, fmt.Errorf("hom: pattern: %w", err)
	}
	h, err := graph.FromEdges(m, hEdges)
	if err != nil {
		return 0, fmt.Errorf("hom: target: %w", err)
	}

	return Count(g, h, opts...)
}

// Verify reports whether f is a homomorphism from g to h. f[u] is the image
// of pattern vertex u.
func Verify(g, h *graph.Graph, f []int) (bool, error) {
	if g == nil || h == nil {
		return false, ErrGraphNil
	}
	n, m := g.VertexCount(), h.VertexCount()
	if len(f) != n {
		return false, fmt.Errorf("%w: length %d, want %d", ErrInvalidAssignment, len(f), n)
	}
	for u, a := range f {
		if a < 0 || a >= m {
			return false, fmt.Errorf("%w: f(%d)=%d not in [0,%d)", ErrInvalidAssignment, u, a, m)
		}
	}

	return newChecker(g, h.Adjacency()).accepts(f), nil
}

// scan drains p, counting accepted candidates. The context is checked
// before the first candidate and then every interval candidates.
func scan(ctx context.Context, p *product.Product, c *checker, interval uint64, hook func([]int, bool)) (uint64, error) {
	var count, seen uint64
	for f, ok := p.Next(); ok; f, ok = p.Next() {
		if seen%interval == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}
		seen++

		hit := c.accepts(f)
		if hit {
			count++
		}
		if hook != nil {
			hook(f, hit)
		}
	}

	return count, nil
}

// scanParallel splits the space into o.Workers contiguous rank ranges, each
// scanned by its own goroutine into a private counter; the counters are
// summed once every worker has finished.
func scanParallel(ctx context.Context, space *product.Product, c *checker, o Options, log logrus.FieldLogger) (uint64, error) {
	bounds := space.Split(o.Workers)
	partial := make([]uint64, len(bounds))

	eg, ctx := errgroup.WithContext(ctx)
	for i, b := range bounds {
		i, b := i, b
		eg.Go(func() error {
			r, err := space.Range(b.Lo, b.Hi)
			if err != nil {
				return err
			}
			n, err := scan(ctx, r, c, o.CheckInterval, nil)
			if err != nil {
				return err
			}
			partial[i] = n
			log.WithFields(logrus.Fields{"worker": i, "lo": b.Lo, "hi": b.Hi, "count": n}).
				Trace("hom: range done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range partial {
		total += n
	}
	return total, nil
}
