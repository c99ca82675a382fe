package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/search"
)

func newGraph(t *testing.T, n int, edges [][2]int) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.SetEdge(e[0], e[1]))
	}
	return m
}

func TestEdit_P4_SolvedAtK1(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(1)

	var solutions int
	found, err := d.Edit(context.Background(), 1, func(g, edited *bitmatrix.Matrix) bool {
		solutions++
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
	require.GreaterOrEqual(t, solutions, 1)
}

func TestEdit_P4_NotSolvableAtK0(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(0)

	found, err := d.Edit(context.Background(), 0, func(g, edited *bitmatrix.Matrix) bool {
		return true
	})
	require.NoError(t, err)
	require.False(t, found)
}

func TestEdit_EmptyGraph_AlreadySolved(t *testing.T) {
	g := newGraph(t, 5, nil)

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(0)

	var called bool
	found, err := d.Edit(context.Background(), 0, func(g, edited *bitmatrix.Matrix) bool {
		called = true
		require.Equal(t, 0, edited.CountEdges())
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, called)
}

func TestEdit_GraphRestoredAfterSearch(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	before := g.Clone()

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(1)

	_, err = d.Edit(context.Background(), 1, func(g, edited *bitmatrix.Matrix) bool {
		return false
	})
	require.NoError(t, err)

	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			require.Equal(t, before.HasEdge(u, v), g.HasEdge(u, v), "graph must be restored bit-for-bit after Edit returns")
		}
	}
}

func TestEdit_RedundantRestriction_NoEditBranch(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithRestriction(options.Redundant),
		options.WithSelector(options.SelMost),
	)
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(1)

	found, err := d.Edit(context.Background(), 1, func(g, edited *bitmatrix.Matrix) bool {
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
}

func TestEdit_ContextCancelled(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	d, err := search.New(g, cfg)
	require.NoError(t, err)
	d.Initialize(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = d.Edit(ctx, 1, func(g, edited *bitmatrix.Matrix) bool { return true })
	require.ErrorIs(t, err, context.Canceled)
}
