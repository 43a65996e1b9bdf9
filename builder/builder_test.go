// File: builder_test.go
// Package builder_test verifies topology, numbering and error contracts of
// every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
)

// undirectedCount returns the number of unordered pairs in a symmetric graph,
// counting each loop once.
func undirectedCount(g *graph.Graph) int {
	n := 0
	for _, e := range g.Edges() {
		if e.From <= e.To {
			n++
		}
	}
	return n
}

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int // unordered pairs
		check func(t *testing.T, g *graph.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				assert.True(t, g.HasEdge(3, 2))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				assert.True(t, g.HasEdge(0, 4))
			},
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *graph.Graph) {
				for leaf := 1; leaf < 4; leaf++ {
					assert.True(t, g.HasEdge(0, leaf))
				}
				assert.False(t, g.HasEdge(1, 2))
			},
		},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{
			name: "CompleteReflexive(3)", ctor: builder.CompleteReflexive(3), wantV: 3, wantE: 6,
			check: func(t *testing.T, g *graph.Graph) {
				assert.Equal(t, 9, g.EdgeCount())
			},
		},
		{name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0},
		{name: "Isolated(0)", ctor: builder.Isolated(0), wantV: 0, wantE: 0},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *graph.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.False(t, g.HasEdge(2, 3))
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.HasEdge(4, 1), "rim closes")
				assert.True(t, g.HasEdge(0, 3), "spoke")
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *graph.Graph) {
				assert.True(t, g.HasEdge(1, 4))
				assert.False(t, g.HasEdge(2, 3), "no wrap between rows")
			},
		},
		{name: "RandomSparse(p=1)", ctor: builder.RandomSparse(4, 1), wantV: 4, wantE: 6},
		{name: "RandomSparse(p=0)", ctor: builder.RandomSparse(4, 0), wantV: 4, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, undirectedCount(g))
			for _, e := range g.Edges() {
				assert.True(t, g.HasEdge(e.To, e.From), "symmetric: %v", e)
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteReflexive(0)", builder.CompleteReflexive(0), builder.ErrTooFewVertices},
		{"Isolated(-1)", builder.Isolated(-1), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		_, err := builder.BuildGraph(nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 4))
	assert.False(t, g.HasEdge(1, 2))
	assert.Len(t, g.Components(), 2)
}

func TestOptions_DirectedAndLoops(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithLoops()}, builder.Path(3))
	require.NoError(t, err)
	for v := 0; v < 3; v++ {
		assert.True(t, g.HasEdge(v, v))
	}
	assert.Equal(t, 3+4, g.EdgeCount())
}

func TestRandomSparse_DirectedSamplesOrderedPairs(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 4*3, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 3))
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(2, 2))

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Star(4))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 0))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(opt builder.BuilderOption) []graph.Edge {
		g, err := builder.BuildGraph([]builder.BuilderOption{opt}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(builder.WithSeed(42)), build(builder.WithSeed(42)))
	assert.Equal(t, build(builder.WithRand(rand.New(rand.NewSource(7)))),
		build(builder.WithRand(rand.New(rand.NewSource(7)))))
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
