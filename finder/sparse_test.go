package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/subgraph"
)

func TestSparseFinder_SkipsAlreadyOfferedEdges(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	edited, err := bitmatrix.New(4)
	require.NoError(t, err)

	sf, err := finder.NewSparse(4, true, 4)
	require.NoError(t, err)

	count := 0
	emit := func(sg subgraph.Subgraph) bool { count++; return false }

	require.NoError(t, sf.FindNear(g, edited, 0, 3, nil, options.Edit, options.None, options.Normal, emit))
	require.Equal(t, 1, count, "first call reports the single P4")

	require.NoError(t, sf.FindNear(g, edited, 0, 3, nil, options.Edit, options.None, options.Normal, emit))
	require.Equal(t, 1, count, "second call must not re-offer the same fully-offered edge set")
}

func TestSparseFinder_Reset(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	edited, err := bitmatrix.New(4)
	require.NoError(t, err)

	sf, err := finder.NewSparse(4, true, 4)
	require.NoError(t, err)

	count := 0
	emit := func(sg subgraph.Subgraph) bool { count++; return false }

	require.NoError(t, sf.FindNear(g, edited, 0, 3, nil, options.Edit, options.None, options.Normal, emit))
	sf.Reset()
	require.NoError(t, sf.FindNear(g, edited, 0, 3, nil, options.Edit, options.None, options.Normal, emit))
	require.Equal(t, 2, count, "after Reset, previously-offered edges may be offered again")
}
