package selector

import (
	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/stats"
	"github.com/katalvlaran/p4edit/subgraph"
)

// BranchPair is one edge the driver should branch on: edit (u,v) and
// recurse. UpdateLBBefore asks the driver to recompute the lower bound and
// possibly prune before considering this pair, used by the Most-Pruned and
// Single-Most variants to cut the branching loop short.
type BranchPair struct {
	U, V           int
	UpdateLBBefore bool
}

// ProblemSet is the result of one selection: either a completed solution,
// or a set of pairs to branch on plus whether a trailing "mark but don't
// edit" branch should be added.
type ProblemSet struct {
	Pairs             []BranchPair
	NeedsNoEditBranch bool
	FoundSolution     bool
}

// Selector picks a ProblemSet from the current graph/edit-mask/stats state.
type Selector struct {
	kind   options.SelKind
	finder *finder.Finder
}

// New returns a Selector of the given variant.
func New(kind options.SelKind, f *finder.Finder) *Selector {
	return &Selector{kind: kind, finder: f}
}

func pairsFrom(edges []subgraph.Pair, prunedAfterFirst bool) []BranchPair {
	out := make([]BranchPair, len(edges))
	for i, p := range edges {
		out[i] = BranchPair{U: p.U, V: p.V, UpdateLBBefore: prunedAfterFirst && i > 0}
	}
	return out
}

// Select implements §4.6: returns FoundSolution once st.Total()==0, else a
// branching set per the selector's variant.
func (s *Selector) Select(g, edited *bitmatrix.Matrix, st *stats.Stats, mode options.Mode, restriction options.Restriction, conversion options.Conversion) ProblemSet {
	if st.Total() == 0 {
		return ProblemSet{FoundSolution: true}
	}

	switch s.kind {
	case options.SelFirst:
		return s.selectFirst(g, edited, mode, restriction, conversion)
	case options.SelLeastUnedited:
		return s.selectLeastUnedited(g, edited, mode, restriction, conversion)
	case options.SelMost:
		return s.selectMost(g, edited, st, mode, restriction, conversion, false)
	case options.SelMostPruned:
		return s.selectMost(g, edited, st, mode, restriction, conversion, true)
	case options.SelSingleMost:
		return s.selectSingleMost(g, edited, st, mode, restriction, conversion)
	default:
		return s.selectFirst(g, edited, mode, restriction, conversion)
	}
}

func (s *Selector) selectFirst(g, edited *bitmatrix.Matrix, mode options.Mode, restriction options.Restriction, conversion options.Conversion) ProblemSet {
	var found *subgraph.Subgraph
	s.finder.Find(g, func(sg subgraph.Subgraph) bool {
		c := sg
		found = &c
		return true
	})
	if found == nil {
		return ProblemSet{FoundSolution: true}
	}
	edges := subgraph.EdgesOf(*found, edited, mode, restriction, conversion)
	return ProblemSet{Pairs: pairsFrom(edges, false)}
}

func (s *Selector) selectLeastUnedited(g, edited *bitmatrix.Matrix, mode options.Mode, restriction options.Restriction, conversion options.Conversion) ProblemSet {
	var best []subgraph.Pair
	bestFree := -1
	s.finder.Find(g, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, mode, restriction, conversion)
		if bestFree == -1 || len(edges) < bestFree {
			best = edges
			bestFree = len(edges)
			return bestFree == 0
		}
		return false
	})
	if best == nil {
		return ProblemSet{FoundSolution: true}
	}
	return ProblemSet{Pairs: pairsFrom(best, false)}
}

// bestPair scans st's count matrix for the (u,v) pair with the greatest
// induced-subgraph count, breaking ties by the first pair encountered in
// row-major order.
func bestPair(st *stats.Stats) (int, int, bool) {
	n := st.N()
	bu, bv, bc := -1, -1, -1
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			c := st.Count(u, v)
			if c > bc {
				bc, bu, bv = c, u, v
			}
		}
	}
	return bu, bv, bu >= 0 && bc > 0
}

func (s *Selector) selectMost(g, edited *bitmatrix.Matrix, st *stats.Stats, mode options.Mode, restriction options.Restriction, conversion options.Conversion, pruned bool) ProblemSet {
	u, v, ok := bestPair(st)
	if !ok {
		return ProblemSet{FoundSolution: true}
	}

	var owner *subgraph.Subgraph
	_ = s.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		c := sg
		owner = &c
		return true
	})
	if owner == nil {
		return ProblemSet{FoundSolution: true}
	}

	edges := subgraph.EdgesOf(*owner, edited, mode, restriction, conversion)
	return ProblemSet{
		Pairs:             pairsFrom(edges, pruned),
		NeedsNoEditBranch: restriction == options.Redundant,
	}
}

func (s *Selector) selectSingleMost(g, edited *bitmatrix.Matrix, st *stats.Stats, mode options.Mode, restriction options.Restriction, conversion options.Conversion) ProblemSet {
	ps := s.selectMost(g, edited, st, mode, restriction, conversion, false)
	if ps.FoundSolution {
		return ps
	}
	// Single-Most rechecks the lower bound before *every* pair, not just
	// siblings after the first (Most-Pruned); a simpler, stricter pruning
	// schedule in place of the original's per-candidate look-ahead scoring.
	for i := range ps.Pairs {
		ps.Pairs[i].UpdateLBBefore = true
	}
	return ps
}
