package finder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/subgraph"
)

func pathGraph(t *testing.T, n int, edges [][2]int) *bitmatrix.Matrix {
	t.Helper()
	m, err := bitmatrix.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, m.SetEdge(e[0], e[1]))
	}
	return m
}

func TestFind_P4_SinglePath(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})

	require.Len(t, found, 1)
	require.False(t, found[0].IsCycle)
	require.Equal(t, []int{0, 1, 2, 3}, found[0].Vertices)
}

func TestFind_C4_ReportedOnce(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})

	require.Len(t, found, 1, "each induced C4 must be reported exactly once")
	require.True(t, found[0].IsCycle)
}

func TestFind_NoCyclesRequested_SkipsC4(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	f := finder.New(4, false)

	var found []subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.Empty(t, found, "without with_cycles, a chord-closed path is not reported")
}

func TestFind_TwoDisjointP4s(t *testing.T) {
	g := pathGraph(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.Len(t, found, 2)
}

func TestFind_TriangleIsFree(t *testing.T) {
	g := pathGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.Empty(t, found, "a 3-vertex graph cannot contain a 4-vertex forbidden subgraph")
}

func TestFindNear_ContainsBothVertices(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	err := f.FindNear(g, 0, 3, nil, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.NoError(t, err)
	require.Len(t, found, 1)

	var found2 []subgraph.Subgraph
	err = f.FindNear(g, 1, 2, nil, func(sg subgraph.Subgraph) bool {
		found2 = append(found2, sg)
		return false
	})
	require.NoError(t, err)
	require.Len(t, found2, 1)
}

// TestFindNear_TightSlotForcesMissingTarget is a regression test for a
// bug where a "tight" slot (exactly as many slots left as targets still
// missing) tried every eligible neighbor of the current path end instead
// of being restricted to the missing target, letting FindNear report a
// subgraph that didn't actually contain one of the two requested
// vertices. Graph: 0-1, 1-2, 2-3, 2-4 (a,b,c,d,e), containing induced
// P4s a-b-c-d and a-b-c-e. FindNear(0, 4) must report only the subgraph
// containing vertex 4, never a-b-c-d.
func TestFindNear_TightSlotForcesMissingTarget(t *testing.T) {
	g := pathGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	err := f.FindNear(g, 0, 4, nil, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, sg := range found {
		require.Contains(t, sg.Vertices, 0)
		require.Contains(t, sg.Vertices, 4)
	}
}

func TestFindNear_ExcludesUnrelatedPairs(t *testing.T) {
	g := pathGraph(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}})
	f := finder.New(4, true)

	var found []subgraph.Subgraph
	err := f.FindNear(g, 4, 7, nil, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, []int{4, 5, 6, 7}, found[0].Vertices)
}

func TestFindNear_SameVertexErrors(t *testing.T) {
	g := pathGraph(t, 4, nil)
	f := finder.New(4, true)
	err := f.FindNear(g, 1, 1, nil, func(subgraph.Subgraph) bool { return false })
	require.ErrorIs(t, err, finder.ErrSameVertex)
}

func TestFindNear_ExcludedMatrixPrunes(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	f := finder.New(4, true)

	excl, err := bitmatrix.New(4)
	require.NoError(t, err)
	require.NoError(t, excl.SetEdge(1, 2))

	var found []subgraph.Subgraph
	err = f.FindNear(g, 0, 3, excl, func(sg subgraph.Subgraph) bool {
		found = append(found, sg)
		return false
	})
	require.NoError(t, err)
	require.Empty(t, found, "the only P4 uses the excluded pair (1,2)")
}

func TestQuasiThresholdCertificate_FreeGraph(t *testing.T) {
	g := pathGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	cert, ok := finder.QuasiThresholdCertificate(g)
	require.True(t, ok)
	require.Nil(t, cert)
}

func TestQuasiThresholdCertificate_FindsP4(t *testing.T) {
	g := pathGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	cert, ok := finder.QuasiThresholdCertificate(g)
	require.False(t, ok)
	require.NotNil(t, cert)
}
