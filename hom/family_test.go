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

func familyTargets(t *testing.T) map[string]*graph.Graph {
	return map[string]*graph.Graph{
		"K3":         mustBuild(t, builder.Complete(3)),
		"C4":         mustGraph(t, 4, cycle4),
		"reflexive2": mustBuild(t, builder.CompleteReflexive(2)),
		"mixed":      mustGraph(t, 3, []graph.Edge{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 0}}),
	}
}

func TestCountFamily_MethodsAgree(t *testing.T) {
	path, err := ntd.PathDecomposition(3)
	require.NoError(t, err)
	complete, err := ntd.CompleteDecomposition(3)
	require.NoError(t, err)

	for tdName, td := range map[string]*ntd.Decomposition{
		"path":     path,
		"complete": complete,
		"star":     starDecomposition(t),
	} {
		for hName, h := range familyTargets(t) {
			want, err := hom.CountFamily(td, h, hom.MethodBruteForce)
			require.NoError(t, err)
			require.Len(t, want, 1<<len(td.PossibleEdges()))

			for _, m := range []hom.Method{hom.MethodComponents, hom.MethodTreeDP, hom.MethodEquivalence} {
				got, err := hom.CountFamily(td, h, m)
				require.NoError(t, err, "%s/%s/%s", tdName, hName, m)
				require.Len(t, got, len(want))
				for i := range want {
					assert.Equal(t, want[i].Graph.Edges(), got[i].Graph.Edges())
					assert.Equal(t, want[i].Count, got[i].Count,
						"%s/%s/%s member %d %v", tdName, hName, m, i, want[i].Graph.Edges())
				}
			}
		}
	}
}

func TestCountFamily_KnownMembers(t *testing.T) {
	td, err := ntd.PathDecomposition(2)
	require.NoError(t, err)
	// possible edges: (0,0) (0,1) (1,1)
	got, err := hom.CountFamily(td, mustBuild(t, builder.Complete(3)), hom.MethodEquivalence)
	require.NoError(t, err)
	require.Len(t, got, 8)

	assert.Equal(t, uint64(9), got[0].Count, "no edges")
	assert.Equal(t, uint64(0), got[1].Count, "loop on 0 into a loopless target")
	assert.Equal(t, uint64(6), got[2].Count, "single edge")
	assert.Equal(t, 2, got[2].Graph.EdgeCount())
}

func TestCountFamily_Errors(t *testing.T) {
	td, err := ntd.PathDecomposition(2)
	require.NoError(t, err)
	h := mustBuild(t, builder.Complete(3))

	_, err = hom.CountFamily(td, h, hom.Method("nope"))
	assert.ErrorIs(t, err, hom.ErrUnknownMethod)

	_, err = hom.CountFamily(nil, h, hom.MethodBruteForce)
	assert.ErrorIs(t, err, hom.ErrGraphNil)

	// vertex 0 leaves and re-enters: its bags are disconnected
	broken := chainDecomposition(t, leaf(0), forget(), introduce(0), forget())
	_, err = hom.CountFamily(broken, h, hom.MethodEquivalence)
	assert.ErrorIs(t, err, hom.ErrDecompositionMismatch)

	_, err = hom.CountFamily(td, h, hom.MethodEquivalence, hom.WithMaxTableEntries(4))
	assert.ErrorIs(t, err, hom.ErrTableTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, m := range []hom.Method{hom.MethodBruteForce, hom.MethodEquivalence} {
		_, err = hom.CountFamily(td, h, m, hom.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, m)
	}

	big, err := ntd.CompleteDecomposition(11)
	require.NoError(t, err)
	_, err = hom.CountFamily(big, h, hom.MethodEquivalence)
	assert.ErrorIs(t, err, ntd.ErrTooManyEdges)
}
