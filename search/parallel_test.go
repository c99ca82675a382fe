package search_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/search"
)

func TestParallelEdit_P4_SolvedAtK1(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithDriver(options.DriverMT),
		options.WithThreads(4),
	)
	require.NoError(t, err)

	pd, err := search.NewParallel(g, cfg)
	require.NoError(t, err)

	var mu sync.Mutex
	var solutions int
	found, err := pd.Edit(context.Background(), 1, func(g, edited *bitmatrix.Matrix) bool {
		mu.Lock()
		solutions++
		mu.Unlock()
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
	require.GreaterOrEqual(t, solutions, 1)
}

func TestParallelEdit_NotSolvableAtK0(t *testing.T) {
	g := newGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})

	cfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithDriver(options.DriverMT),
		options.WithThreads(4),
	)
	require.NoError(t, err)

	pd, err := search.NewParallel(g, cfg)
	require.NoError(t, err)

	found, err := pd.Edit(context.Background(), 0, func(g, edited *bitmatrix.Matrix) bool {
		return true
	})
	require.NoError(t, err)
	require.False(t, found)
}

func TestParallelEdit_EmptyGraph_AlreadySolved(t *testing.T) {
	g := newGraph(t, 5, nil)

	cfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithDriver(options.DriverMT),
		options.WithThreads(4),
	)
	require.NoError(t, err)

	pd, err := search.NewParallel(g, cfg)
	require.NoError(t, err)

	var called bool
	found, err := pd.Edit(context.Background(), 0, func(g, edited *bitmatrix.Matrix) bool {
		called = true
		require.Equal(t, 0, edited.CountEdges())
		return true
	})
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, called)
}

// TestParallelEdit_MatchesSequential checks that MT and ST agree on
// solvability for a graph with several disjoint branch choices at the
// root, exercising the fan-out path with more than one worker goroutine.
func TestParallelEdit_MatchesSequential(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}}
	g := newGraph(t, 8, edges)

	cfg, err := options.New(options.WithLength(4), options.WithCycles(true))
	require.NoError(t, err)

	st, err := search.New(g.Clone(), cfg)
	require.NoError(t, err)
	st.Initialize(2)
	stFound, err := st.Edit(context.Background(), 2, func(g, edited *bitmatrix.Matrix) bool { return false })
	require.NoError(t, err)

	mtCfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithDriver(options.DriverMT),
		options.WithThreads(4),
	)
	require.NoError(t, err)

	pd, err := search.NewParallel(g.Clone(), mtCfg)
	require.NoError(t, err)
	mtFound, err := pd.Edit(context.Background(), 2, func(g, edited *bitmatrix.Matrix) bool { return false })
	require.NoError(t, err)

	require.Equal(t, stFound, mtFound)
}

func TestParallelEdit_ContextCancelled(t *testing.T) {
	g := newGraph(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 5}, {5, 6}, {6, 7}})

	cfg, err := options.New(
		options.WithLength(4),
		options.WithCycles(true),
		options.WithDriver(options.DriverMT),
		options.WithThreads(4),
	)
	require.NoError(t, err)

	pd, err := search.NewParallel(g, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = pd.Edit(ctx, 2, func(g, edited *bitmatrix.Matrix) bool { return true })
	require.Error(t, err)
}
