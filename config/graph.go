package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/ntd"
)

// Graph kinds. KindEdges is selected when Kind is empty.
const (
	KindEdges     = "edges"
	KindComplete  = "complete"
	KindReflexive = "reflexive"
	KindPath      = "path"
	KindCycle     = "cycle"
	KindStar      = "star"
	KindIsolated  = "isolated"
	KindBipartite = "bipartite"
	KindWheel     = "wheel"
	KindGrid      = "grid"
	KindRandom    = "random"
)

// GraphSpec describes one graph of a job.
type GraphSpec struct {
	Kind string `yaml:"kind" toml:"kind"`

	// explicit edge lists
	Vertices   int     `yaml:"vertices" toml:"vertices"`
	Edges      [][]int `yaml:"edges" toml:"edges"`
	Undirected bool    `yaml:"undirected" toml:"undirected"`

	// builder parameters
	N    int     `yaml:"n" toml:"n"`
	A    int     `yaml:"a" toml:"a"`
	B    int     `yaml:"b" toml:"b"`
	Rows int     `yaml:"rows" toml:"rows"`
	Cols int     `yaml:"cols" toml:"cols"`
	P    float64 `yaml:"p" toml:"p"`
	Seed int64   `yaml:"seed" toml:"seed"`

	Directed bool `yaml:"directed" toml:"directed"`
	Loops    bool `yaml:"loops" toml:"loops"`
}

func (s *GraphSpec) validate() error {
	s.Kind = strings.ToLower(strings.TrimSpace(s.Kind))
	if s.Kind == "" {
		s.Kind = KindEdges
	}

	if s.Kind == KindEdges {
		if s.Vertices < 0 {
			return fmt.Errorf("%w: vertices=%d", ErrInvalid, s.Vertices)
		}
		for i, e := range s.Edges {
			if len(e) != 2 {
				return fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalid, i, len(e))
			}
		}
		return nil
	}

	if len(s.Edges) > 0 {
		return fmt.Errorf("%w: edges given for kind %q", ErrInvalid, s.Kind)
	}
	if _, err := s.constructor(); err != nil {
		return err
	}
	return nil
}

// Build materialises the graph. Builder parameter errors surface here, not in
// Validate.
func (s GraphSpec) Build() (*graph.Graph, error) {
	if s.Kind == "" || s.Kind == KindEdges {
		edges := make([]graph.Edge, 0, len(s.Edges))
		for i, e := range s.Edges {
			if len(e) != 2 {
				return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalid, i, len(e))
			}
			edges = append(edges, graph.Edge{From: e[0], To: e[1]})
			if s.Undirected {
				edges = append(edges, graph.Edge{From: e[1], To: e[0]})
			}
		}
		return graph.FromEdges(s.Vertices, edges)
	}

	cons, err := s.constructor()
	if err != nil {
		return nil, err
	}
	var opts []builder.BuilderOption
	if s.Kind == KindRandom {
		opts = append(opts, builder.WithSeed(s.Seed))
	}
	if s.Directed {
		opts = append(opts, builder.WithDirected())
	}
	if s.Loops {
		opts = append(opts, builder.WithLoops())
	}

	return builder.BuildGraph(opts, cons)
}

func (s GraphSpec) constructor() (builder.Constructor, error) {
	switch s.Kind {
	case KindComplete:
		return builder.Complete(s.N), nil
	case KindReflexive:
		return builder.CompleteReflexive(s.N), nil
	case KindPath:
		return builder.Path(s.N), nil
	case KindCycle:
		return builder.Cycle(s.N), nil
	case KindStar:
		return builder.Star(s.N), nil
	case KindIsolated:
		return builder.Isolated(s.N), nil
	case KindBipartite:
		return builder.CompleteBipartite(s.A, s.B), nil
	case KindWheel:
		return builder.Wheel(s.N), nil
	case KindGrid:
		return builder.Grid(s.Rows, s.Cols), nil
	case KindRandom:
		return builder.RandomSparse(s.N, s.P), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

// BuildDecomposition returns the job's decomposition over n pattern vertices.
func (j *Job) BuildDecomposition(n int) (*ntd.Decomposition, error) {
	switch j.Decomposition {
	case DecompositionPath:
		return ntd.PathDecomposition(n)
	case "", DecompositionComplete:
		return ntd.CompleteDecomposition(n)
	}
	return nil, fmt.Errorf("%w: decomposition %q", ErrInvalid, j.Decomposition)
}
