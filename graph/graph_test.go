package graph_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/graph"
)

func TestNew_NegativeCount(t *testing.T) {
	_, err := graph.New(-1)
	require.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestFromEdges_OutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []graph.Edge
	}{
		{"from too large", 3, []graph.Edge{{From: 0, To: 1}, {From: 3, To: 0}}},
		{"to too large", 2, []graph.Edge{{From: 0, To: 2}}},
		{"negative", 2, []graph.Edge{{From: -1, To: 0}}},
		{"empty range", 0, []graph.Edge{{From: 0, To: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.FromEdges(tc.n, tc.edges)
			require.Error(t, err)
			require.True(t, errors.Is(err, graph.ErrVertexOutOfRange), "got %v", err)
		})
	}
}

func TestAddEdge_SetSemantics(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 2))
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(2, 2))
	assert.False(t, g.HasEdge(5, 5))

	require.NoError(t, g.AddUndirectedEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestEdges_Sorted(t *testing.T) {
	g, err := graph.FromEdges(4, []graph.Edge{{3, 0}, {0, 2}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	want := []graph.Edge{{0, 1}, {0, 2}, {1, 1}, {3, 0}}
	assert.Equal(t, want, g.Edges())
}

func TestAddVertices(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	assert.Equal(t, 2, g.AddVertices(3))
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.AddVertices(0))
	require.NoError(t, g.AddEdge(4, 0))
}

func TestComplete(t *testing.T) {
	k, err := graph.Complete(4, false)
	require.NoError(t, err)
	assert.Equal(t, 12, k.EdgeCount())
	assert.False(t, k.HasEdge(2, 2))

	r, err := graph.Complete(4, true)
	require.NoError(t, err)
	assert.Equal(t, 16, r.EdgeCount())
	assert.True(t, r.HasEdge(2, 2))

	empty, err := graph.Complete(0, true)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.VertexCount())
}

func TestAdjacency_MatchesEdgeSet(t *testing.T) {
	g, err := graph.FromEdges(9, []graph.Edge{{0, 8}, {8, 0}, {4, 4}, {7, 3}})
	require.NoError(t, err)
	adj := g.Adjacency()

	assert.Equal(t, 9, adj.N())
	for u := -1; u <= 9; u++ {
		for v := -1; v <= 9; v++ {
			assert.Equal(t, g.HasEdge(u, v), adj.Has(u, v), "(%d,%d)", u, v)
		}
	}

	// the snapshot does not follow later mutations
	require.NoError(t, g.AddEdge(1, 2))
	assert.False(t, adj.Has(1, 2))
}

func TestAdjacency_SparseForLargeSparseGraph(t *testing.T) {
	g, err := graph.FromEdges(20000, []graph.Edge{{0, 19999}, {19999, 19999}, {512, 3}})
	require.NoError(t, err)
	adj := g.Adjacency()

	assert.False(t, adj.Dense())
	assert.Equal(t, 20000, adj.N())
	assert.True(t, adj.Has(0, 19999))
	assert.True(t, adj.Has(19999, 19999))
	assert.True(t, adj.Has(512, 3))
	assert.False(t, adj.Has(3, 512))
	assert.False(t, adj.Has(19999, 0))
	assert.False(t, adj.Has(20000, 0))

	k, err := graph.Complete(50, false)
	require.NoError(t, err)
	assert.True(t, k.Adjacency().Dense())
}

func TestClone_Independent(t *testing.T) {
	g, err := graph.FromEdges(3, []graph.Edge{{0, 1}})
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
}

func TestComponents(t *testing.T) {
	// 0–1, 2 isolated with a loop, 3→4←5, 6 isolated
	g, err := graph.FromEdges(7, []graph.Edge{{1, 0}, {2, 2}, {3, 4}, {5, 4}})
	require.NoError(t, err)

	want := [][]int{{0, 1}, {2}, {3, 4, 5}, {6}}
	assert.Equal(t, want, g.Components())

	empty, err := graph.New(0)
	require.NoError(t, err)
	assert.Empty(t, empty.Components())
}

func TestInduced(t *testing.T) {
	g, err := graph.FromEdges(5, []graph.Edge{{1, 2}, {2, 4}, {4, 4}, {0, 1}})
	require.NoError(t, err)

	sub, err := g.Induced([]int{4, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.VertexCount())
	// 4→0, 2→1, 1→2
	assert.Equal(t, []graph.Edge{{0, 0}, {1, 0}, {2, 1}}, sub.Edges())

	_, err = g.Induced([]int{1, 1})
	require.ErrorIs(t, err, graph.ErrDuplicateVertex)
	_, err = g.Induced([]int{7})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestConcurrentAddEdge(t *testing.T) {
	const n = 64
	g, err := graph.New(n)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for u := 0; u < n; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			for v := 0; v < n; v++ {
				_ = g.AddEdge(u, v)
			}
		}(u)
	}
	wg.Wait()

	assert.Equal(t, n*n, g.EdgeCount())
}
