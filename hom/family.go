package hom

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/ntd"
)

// Method selects a counting algorithm.
type Method string

const (
	// MethodBruteForce enumerates every candidate (Count).
	MethodBruteForce Method = "brute"
	// MethodComponents multiplies per-component brute-force counts (CountByComponents).
	MethodComponents Method = "components"
	// MethodTreeDP runs the dynamic program over a decomposition (CountTreeDecomposition).
	MethodTreeDP Method = "ntd"
	// MethodEquivalence counts a whole decomposition family in one dynamic
	// program; it is only available through CountFamily.
	MethodEquivalence Method = "equivalence"
)

// Methods lists every method in a stable order.
func Methods() []Method {
	return []Method{MethodBruteForce, MethodComponents, MethodTreeDP, MethodEquivalence}
}

// ParseMethod resolves a case-insensitive method name.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// CountWith dispatches to the single-graph counter for method. td is only
// consulted by MethodTreeDP, where it is required.
func CountWith(method Method, g *graph.Graph, td *ntd.Decomposition, h *graph.Graph, opts ...Option) (uint64, error) {
	switch method {
	case MethodBruteForce:
		return Count(g, h, opts...)
	case MethodComponents:
		return CountByComponents(g, h, opts...)
	case MethodTreeDP:
		if td == nil {
			return 0, fmt.Errorf("%w: method %q needs a decomposition", ErrDecompositionMismatch, method)
		}
		return CountTreeDecomposition(g, td, h, opts...)
	case MethodEquivalence:
		return 0, fmt.Errorf("%w: %q counts families only", ErrUnknownMethod, method)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// FamilyCount pairs one member of a decomposition family with its count.
type FamilyCount struct {
	Graph *graph.Graph
	Count uint64
}

// CountFamily counts homomorphisms into h for every symmetric graph whose
// edges are a subset of td.PossibleEdges(). Results follow the order of
// ntd.Decomposition.ForEachGraph: bit i of the position selects
// PossibleEdges()[i].
//
// td must decompose its own family, i.e. every vertex below VertexCount
// appears in a bag and the bags holding a vertex are connected
// (ErrDecompositionMismatch otherwise). Cancellation is checked before
// every family member.
func CountFamily(td *ntd.Decomposition, h *graph.Graph, method Method, opts ...Option) ([]FamilyCount, error) {
	if td == nil || h == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	full, err := fullFamilyGraph(td)
	if err != nil {
		return nil, err
	}
	if err := td.Decomposes(full); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompositionMismatch, err)
	}

	var counts []uint64
	if method == MethodEquivalence {
		if counts, err = countEquivalence(td, h, o); err != nil {
			return nil, err
		}
	} else if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}

	var out []FamilyCount
	err = td.ForEachGraph(func(g *graph.Graph) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		if counts != nil {
			out = append(out, FamilyCount{Graph: g, Count: counts[len(out)]})
			return nil
		}
		c, err := CountWith(method, g, td, h, opts...)
		if err != nil {
			return err
		}
		out = append(out, FamilyCount{Graph: g, Count: c})
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Logger.WithField("method", method).WithField("members", len(out)).Debug("hom: family counted")
	return out, nil
}

// fullFamilyGraph is the family member containing every possible edge.
func fullFamilyGraph(td *ntd.Decomposition) (*graph.Graph, error) {
	g, err := graph.New(td.VertexCount())
	if err != nil {
		return nil, err
	}
	for _, e := range td.PossibleEdges() {
		if err := g.AddUndirectedEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return g, nil
}
