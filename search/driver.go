package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/packing"
	"github.com/katalvlaran/p4edit/selector"
	"github.com/katalvlaran/p4edit/stats"
)

// WriteFunc receives a solution (g, edited) when the selector reports
// found_solution. Returning false asks the driver to stop after this
// solution (first-solution mode); returning true continues the search for
// more solutions (all-solutions mode).
type WriteFunc func(g, edited *bitmatrix.Matrix) bool

// Driver is the sequential branch-and-bound search over one graph. It owns
// the graph and edit mask for the duration of a call to Edit and mutates
// them in place, restoring both bit-for-bit before Edit returns.
type Driver struct {
	g      *bitmatrix.Matrix
	edited *bitmatrix.Matrix

	finder *finder.Finder
	stats  *stats.Stats
	lb     *packing.LowerBoundPacking
	sel    *selector.Selector
	cfg    *options.Config

	write         WriteFunc
	foundSolution bool

	Counters Counters
}

// New constructs a Driver over g (not copied — the caller must not mutate
// g concurrently with a running Edit call) under cfg.
func New(g *bitmatrix.Matrix, cfg *options.Config) (*Driver, error) {
	edited, err := bitmatrix.New(g.Size())
	if err != nil {
		return nil, err
	}
	f := finder.New(cfg.Length, cfg.WithCycles)
	d := &Driver{
		g:      g,
		edited: edited,
		finder: f,
		stats:  stats.New(g.Size(), f, cfg.Mode, cfg.Restriction, cfg.Conversion),
		lb:     packing.New(g.Size(), f, cfg.Mode, cfg.Restriction, cfg.Conversion),
		sel:    selector.New(cfg.Selector, f),
		cfg:    cfg,
	}
	return d, nil
}

// Initialize scans g from scratch, populating SubgraphStats and the
// initial packing. Must be called once before the first Edit call, and
// again after directly mutating the driver's graph between Edit calls
// (e.g. iterative deepening reusing the same Driver for successive k).
func (d *Driver) Initialize(k int) {
	d.stats.Initialize(d.g, d.edited)
	d.lb.Initialize(k, d.g, d.edited)
}

// Edit searches for a k-edit solution, calling write for each one found.
// It returns whether at least one solution was found.
func (d *Driver) Edit(ctx context.Context, k int, write WriteFunc) (bool, error) {
	d.write = write
	d.foundSolution = false
	terminate, err := d.editRec(ctx, k, true)
	_ = terminate
	return d.foundSolution, err
}

// editRec is the recursive core, a direct generalization of the original
// ST driver's edit_rec: check the bound, ask the selector for a problem,
// branch on its pairs (toggling the graph and updating stats/packing
// around each mutation exactly as subgraph_stats/Lower_Bound require), and
// recurse. Returns true if the caller should stop searching entirely.
func (d *Driver) editRec(ctx context.Context, k int, calculateBound bool) (bool, error) {
	select {
	case <-ctx.Done():
		return true, ctx.Err()
	default:
	}

	d.Counters.Calls++

	if calculateBound {
		if k < d.lb.Result(k, d.g, d.edited) {
			d.Counters.Prunes++
			return false, nil
		}
	}

	ps := d.sel.Select(d.g, d.edited, d.stats, d.cfg.Mode, d.cfg.Restriction, d.cfg.Conversion)

	if ps.FoundSolution {
		d.foundSolution = true
		return !d.write(d.g, d.edited), nil
	}
	if k == 0 {
		d.Counters.Prunes++
		return false, nil
	}

	terminate := false
	branched := 0
	for _, bp := range ps.Pairs {
		if d.edited.HasEdge(bp.U, bp.V) {
			panic(fmt.Sprintf("search: invariant violation: pair (%d,%d) already marked", bp.U, bp.V))
		}

		if bp.UpdateLBBefore && d.cfg.Restriction == options.Redundant {
			d.Counters.Calls++
			d.Counters.ExtraLBChecks++
			if k < d.lb.Result(k, d.g, d.edited) {
				break
			}
		}

		if err := d.lb.BeforeEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}

		if d.cfg.Restriction != options.None {
			if err := d.edited.SetEdge(bp.U, bp.V); err != nil {
				return false, err
			}
			if err := d.stats.AfterMark(bp.U, bp.V); err != nil {
				return false, err
			}
			if err := d.lb.AfterMark(bp.U, bp.V); err != nil {
				return false, err
			}
		}

		if err := d.stats.BeforeEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.g.ToggleEdge(bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.stats.AfterEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.lb.AfterEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}

		branched++

		childTerminate, err := d.editRec(ctx, k-1, true)
		if err != nil {
			return false, err
		}
		if childTerminate {
			terminate = true
		}

		if err := d.stats.BeforeEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.g.ToggleEdge(bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.stats.AfterEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}
		if err := d.lb.UndoEdit(d.g, d.edited, bp.U, bp.V); err != nil {
			return false, err
		}

		if d.cfg.Restriction == options.Undo {
			if err := d.edited.ClearEdge(bp.U, bp.V); err != nil {
				return false, err
			}
			if err := d.stats.AfterUnmark(bp.U, bp.V); err != nil {
				return false, err
			}
			if err := d.lb.AfterUnmark(bp.U, bp.V); err != nil {
				return false, err
			}
		}

		if terminate {
			break
		}
	}

	if ps.NeedsNoEditBranch && !terminate {
		if d.cfg.Restriction != options.Redundant {
			panic("search: needs_no_edit_branch requires Restriction=Redundant")
		}
		d.Counters.SingleBranches++
		childTerminate, err := d.editRec(ctx, k, false)
		if err != nil {
			return false, err
		}
		if childTerminate {
			terminate = true
		}
	} else {
		d.Counters.Fallbacks++
	}

	if d.cfg.Restriction == options.Redundant {
		for i := branched - 1; i >= 0; i-- {
			bp := ps.Pairs[i]
			if d.edited.HasEdge(bp.U, bp.V) {
				if err := d.edited.ClearEdge(bp.U, bp.V); err != nil {
					return false, err
				}
				if err := d.stats.AfterUnmark(bp.U, bp.V); err != nil {
					return false, err
				}
				if err := d.lb.AfterUnmark(bp.U, bp.V); err != nil {
					return false, err
				}
			}
		}
	}

	return terminate, nil
}
