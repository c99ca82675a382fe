package editor

import (
	"context"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/search"
)

// Result is the outcome of a successful Solve: the edited graph and the
// mask of pairs that were toggled to reach it.
type Result struct {
	Graph  *bitmatrix.Matrix
	Edited *bitmatrix.Matrix
	K      int
}

// Solve runs iterative deepening over cfg.KMin..cfg.KMax, returning the
// first solution found at the smallest feasible k (branch-and-bound within
// a single k already searches exhaustively for that budget; across k it is
// the caller's responsibility that KMin..KMax be searched in increasing
// order for a minimum-cardinality result, which Solve does unconditionally).
// ctx is checked by the driver at every recursive frame; a cancelled ctx
// aborts the current k attempt and Solve returns its error.
func Solve(ctx context.Context, g *bitmatrix.Matrix, cfg *options.Config) (*Result, Stats, error) {
	stats := newStats()

	if err := options.Validate(cfg); err != nil {
		return nil, stats, err
	}

	work := g.Clone()

	solve := solveSequential
	if cfg.Driver == options.DriverMT {
		solve = solveParallel
	}
	res, stats, err := solve(ctx, work, cfg, stats)
	if res != nil {
		res.Edited, _ = bitmatrix.New(g.Size())
		for u := 0; u < g.Size(); u++ {
			for v := u + 1; v < g.Size(); v++ {
				if g.HasEdge(u, v) != res.Graph.HasEdge(u, v) {
					_ = res.Edited.SetEdge(u, v)
				}
			}
		}
	}
	return res, stats, err
}

func solveSequential(ctx context.Context, work *bitmatrix.Matrix, cfg *options.Config, stats Stats) (*Result, Stats, error) {
	d, err := search.New(work, cfg)
	if err != nil {
		return nil, stats, err
	}

	for k := cfg.KMin; k <= cfg.KMax; k++ {
		d.Initialize(k)

		var solved bool
		var solution *bitmatrix.Matrix
		var editedGraph *bitmatrix.Matrix
		found, err := d.Edit(ctx, k, func(g, edited *bitmatrix.Matrix) bool {
			solved = true
			solution = edited.Clone()
			editedGraph = g.Clone()
			return false
		})
		stats.record(k, d.Counters, found)
		if err != nil {
			return nil, stats, err
		}
		if solved {
			return &Result{Graph: editedGraph, Edited: solution, K: k}, stats, nil
		}
	}

	return nil, stats, ErrNoSolutionInRange
}

func solveParallel(ctx context.Context, work *bitmatrix.Matrix, cfg *options.Config, stats Stats) (*Result, Stats, error) {
	for k := cfg.KMin; k <= cfg.KMax; k++ {
		pd, err := search.NewParallel(work.Clone(), cfg)
		if err != nil {
			return nil, stats, err
		}

		var solved bool
		var solution *bitmatrix.Matrix
		var editedGraph *bitmatrix.Matrix
		found, err := pd.Edit(ctx, k, func(g, edited *bitmatrix.Matrix) bool {
			solved = true
			solution = edited.Clone()
			editedGraph = g.Clone()
			return false
		})
		stats.record(k, pd.Counters, found)
		if err != nil {
			return nil, stats, err
		}
		if solved {
			return &Result{Graph: editedGraph, Edited: solution, K: k}, stats, nil
		}
	}

	return nil, stats, ErrNoSolutionInRange
}
