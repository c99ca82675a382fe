package search

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/options"
)

// ParallelDriver runs the same search as Driver but fans the root frame's
// branches out across a worker pool, rather than the original's
// work-stealing deque over arbitrary mid-recursion frames. Each branch
// gets its own cloned graph/edit-mask and a freshly-initialized Driver (a
// full SubgraphStats/packing rescan, not a carried-over incremental
// state) — simpler and safe by construction at the cost of one extra Find
// scan per branch versus sharing live state. Work-stealing's real benefit
// (idle workers picking up unexplored siblings deep in the tree) is
// traded for bounded, predictable fan-out proportional to the root's
// branching factor; a root with fewer live branches than Threads leaves
// some workers idle for the whole run, which a deque-based scheme would
// not.
type ParallelDriver struct {
	root *Driver
	cfg  *options.Config

	Counters Counters
}

// NewParallel constructs a ParallelDriver over g under cfg.
func NewParallel(g *bitmatrix.Matrix, cfg *options.Config) (*ParallelDriver, error) {
	root, err := New(g, cfg)
	if err != nil {
		return nil, err
	}
	return &ParallelDriver{root: root, cfg: cfg}, nil
}

// Edit mirrors Driver.Edit, but explores the root frame's branches
// concurrently across cfg.Threads workers.
func (pd *ParallelDriver) Edit(ctx context.Context, k int, write WriteFunc) (bool, error) {
	pd.root.Initialize(k)

	ps := pd.root.sel.Select(pd.root.g, pd.root.edited, pd.root.stats, pd.cfg.Mode, pd.cfg.Restriction, pd.cfg.Conversion)
	if ps.FoundSolution {
		write(pd.root.g, pd.root.edited)
		return true, nil
	}
	if k == 0 {
		return false, nil
	}
	if k < pd.root.lb.Result(k, pd.root.g, pd.root.edited) {
		return false, nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	var found bool

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pd.cfg.Threads)

	for _, bp := range ps.Pairs {
		bp := bp
		g.Go(func() error {
			branchGraph := pd.root.g.Clone()
			branchEdited := pd.root.edited.Clone()
			if pd.cfg.Restriction != options.None {
				if err := branchEdited.SetEdge(bp.U, bp.V); err != nil {
					return err
				}
			}
			if err := branchGraph.ToggleEdge(bp.U, bp.V); err != nil {
				return err
			}

			worker, err := New(branchGraph, pd.cfg)
			if err != nil {
				return err
			}
			worker.edited = branchEdited
			worker.Initialize(k - 1)

			workerFound, err := worker.Edit(gctx, k-1, func(wg, we *bitmatrix.Matrix) bool {
				mu.Lock()
				found = true
				cont := write(wg, we)
				mu.Unlock()
				if !cont {
					cancel()
				}
				return cont
			})
			if err != nil && gctx.Err() == nil {
				return err
			}
			mu.Lock()
			pd.Counters.Add(worker.Counters)
			if workerFound {
				found = true
			}
			mu.Unlock()
			return nil
		})
	}

	if ps.NeedsNoEditBranch {
		g.Go(func() error {
			branchGraph := pd.root.g.Clone()
			branchEdited := pd.root.edited.Clone()
			for _, bp := range ps.Pairs {
				if err := branchEdited.SetEdge(bp.U, bp.V); err != nil {
					return err
				}
			}

			worker, err := New(branchGraph, pd.cfg)
			if err != nil {
				return err
			}
			worker.edited = branchEdited
			worker.Initialize(k)

			workerFound, err := worker.Edit(gctx, k, func(wg, we *bitmatrix.Matrix) bool {
				mu.Lock()
				found = true
				cont := write(wg, we)
				mu.Unlock()
				if !cont {
					cancel()
				}
				return cont
			})
			if err != nil && gctx.Err() == nil {
				return err
			}
			mu.Lock()
			pd.Counters.Add(worker.Counters)
			if workerFound {
				found = true
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return found, err
	}
	if err := parent.Err(); err != nil {
		return found, err
	}
	return found, nil
}
