package hom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/builder"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/hom"
	"github.com/katalvlaran/homcount/ntd"
)

// chainDecomposition links nodes[k] under nodes[k+1].
func chainDecomposition(t testing.TB, nodes ...ntd.Node) *ntd.Decomposition {
	t.Helper()
	tree, err := ntd.NewTree(len(nodes))
	require.NoError(t, err)
	for k := 0; k+1 < len(nodes); k++ {
		require.NoError(t, tree.AddChild(k+1, k))
	}
	d, err := ntd.New(tree, nodes)
	require.NoError(t, err)
	return d
}

func leaf(bag ...int) ntd.Node      { return ntd.Node{Type: ntd.Leaf, Bag: bag} }
func introduce(bag ...int) ntd.Node { return ntd.Node{Type: ntd.Introduce, Bag: bag} }
func forget(bag ...int) ntd.Node    { return ntd.Node{Type: ntd.Forget, Bag: bag} }

// starDecomposition decomposes the star with centre 1 and leaves 0, 2, 3
// using one Join node.
func starDecomposition(t testing.TB) *ntd.Decomposition {
	t.Helper()
	tree, err := ntd.NewTree(10)
	require.NoError(t, err)
	for _, pq := range [][2]int{{1, 0}, {2, 1}, {6, 2}, {4, 3}, {5, 4}, {6, 5}, {7, 6}, {8, 7}, {9, 8}} {
		require.NoError(t, tree.AddChild(pq[0], pq[1]))
	}
	d, err := ntd.New(tree, []ntd.Node{
		leaf(0), introduce(0, 1), forget(1),
		leaf(1), introduce(1, 2), forget(1),
		{Type: ntd.Join, Bag: []int{1}},
		introduce(1, 3), forget(3), forget(),
	})
	require.NoError(t, err)
	return d
}

func TestTreeDP_Scenarios(t *testing.T) {
	treeTD := chainDecomposition(t,
		leaf(1), introduce(0, 1), forget(1), introduce(1, 3), forget(1),
		introduce(1, 2), forget(2), introduce(2, 4), forget(2), forget())
	k5 := mustBuild(t, builder.Complete(5))
	got, err := hom.CountTreeDecomposition(mustGraph(t, 5, tree5), treeTD, k5)
	require.NoError(t, err)
	assert.Equal(t, uint64(1280), got)

	pathTD := chainDecomposition(t,
		leaf(0), forget(), introduce(3), forget(), introduce(1), introduce(1, 2),
		forget(2), introduce(2, 4), forget(4), forget())
	g := mustGraph(t, 5, []graph.Edge{{2, 4}, {4, 2}, {1, 2}, {2, 1}})
	got, err = hom.CountTreeDecomposition(g, pathTD, mustGraph(t, 4, cycle4))
	require.NoError(t, err)
	assert.Equal(t, uint64(256), got)
}

func TestTreeDP_JoinMatchesBruteForce(t *testing.T) {
	td := starDecomposition(t)
	star := mustGraph(t, 4, []graph.Edge{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {1, 3}, {3, 1}})
	for _, h := range []*graph.Graph{
		mustBuild(t, builder.Complete(3)),
		mustGraph(t, 4, cycle4),
		mustBuild(t, builder.Wheel(6)),
		mustGraph(t, 3, []graph.Edge{{0, 1}, {1, 0}, {1, 1}, {2, 0}}),
	} {
		want, err := hom.Count(star, h)
		require.NoError(t, err)
		got, err := hom.CountTreeDecomposition(star, td, h)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := hom.CountTreeDecomposition(star, td, mustBuild(t, builder.Complete(3)))
	require.NoError(t, err)
	assert.Equal(t, uint64(24), got)
}

func TestTreeDP_DirectedEdges(t *testing.T) {
	td, err := ntd.PathDecomposition(3)
	require.NoError(t, err)
	h := mustGraph(t, 3, []graph.Edge{{0, 1}, {1, 2}, {2, 2}})

	for _, edges := range [][]graph.Edge{
		{{0, 1}},
		{{1, 0}},
		{{0, 1}, {1, 2}},
		{{1, 0}, {1, 2}, {2, 2}},
		{{0, 0}, {0, 1}, {2, 1}},
	} {
		g := mustGraph(t, 3, edges)
		want, err := hom.Count(g, h)
		require.NoError(t, err)
		got, err := hom.CountTreeDecomposition(g, td, h)
		require.NoError(t, err)
		assert.Equal(t, want, got, "edges %v", edges)
	}
}

func TestTreeDP_Degenerate(t *testing.T) {
	empty, err := graph.New(0)
	require.NoError(t, err)
	td := chainDecomposition(t, leaf())

	got, err := hom.CountTreeDecomposition(empty, td, empty)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)

	one, err := graph.New(1)
	require.NoError(t, err)
	td1, err := ntd.PathDecomposition(1)
	require.NoError(t, err)
	got, err = hom.CountTreeDecomposition(one, td1, empty)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestTreeDP_NonEmptyRoot(t *testing.T) {
	td := chainDecomposition(t, leaf(0), introduce(0, 1))
	g := mustGraph(t, 2, []graph.Edge{{0, 1}, {1, 0}})
	got, err := hom.CountTreeDecomposition(g, td, mustGraph(t, 4, cycle4))
	require.NoError(t, err)
	assert.Equal(t, uint64(8), got)
}

func TestTreeDP_Errors(t *testing.T) {
	td, err := ntd.PathDecomposition(3)
	require.NoError(t, err)
	triangle := mustBuild(t, builder.Cycle(3))
	k4 := mustBuild(t, builder.Complete(4))

	_, err = hom.CountTreeDecomposition(triangle, td, k4)
	assert.ErrorIs(t, err, hom.ErrDecompositionMismatch)

	_, err = hom.CountTreeDecomposition(triangle, nil, k4)
	assert.ErrorIs(t, err, hom.ErrGraphNil)

	ktd, err := ntd.CompleteDecomposition(3)
	require.NoError(t, err)
	_, err = hom.CountTreeDecomposition(triangle, ktd, k4, hom.WithMaxTableEntries(10))
	assert.ErrorIs(t, err, hom.ErrTableTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hom.CountTreeDecomposition(triangle, ktd, k4, hom.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountWith(t *testing.T) {
	td, err := ntd.CompleteDecomposition(3)
	require.NoError(t, err)
	g := mustBuild(t, builder.Cycle(3))
	h := mustBuild(t, builder.Complete(4))

	for _, m := range []hom.Method{hom.MethodBruteForce, hom.MethodComponents, hom.MethodTreeDP} {
		got, err := hom.CountWith(m, g, td, h)
		require.NoError(t, err, m)
		assert.Equal(t, uint64(24), got, m)
	}

	_, err = hom.CountWith(hom.MethodTreeDP, g, nil, h)
	assert.ErrorIs(t, err, hom.ErrDecompositionMismatch)
	_, err = hom.CountWith(hom.MethodEquivalence, g, td, h)
	assert.ErrorIs(t, err, hom.ErrUnknownMethod)
	_, err = hom.CountWith(hom.Method("magic"), g, td, h)
	assert.ErrorIs(t, err, hom.ErrUnknownMethod)
}

func TestParseMethod(t *testing.T) {
	m, err := hom.ParseMethod(" NTD ")
	require.NoError(t, err)
	assert.Equal(t, hom.MethodTreeDP, m)

	_, err = hom.ParseMethod("fast")
	assert.ErrorIs(t, err, hom.ErrUnknownMethod)
	assert.Len(t, hom.Methods(), 4)
}
