package packing

import (
	"math/rand"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/bucketpq"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/subgraph"
)

type editSnapshot struct {
	bound []subgraph.Subgraph
	used  *bitmatrix.Matrix
}

// LowerBoundPacking is an edge-disjoint set of induced forbidden subgraphs
// (the "bound"), plus the bookkeeping needed to maintain it and improve it.
type LowerBoundPacking struct {
	n           int
	finder      *finder.Finder
	mode        options.Mode
	restriction options.Restriction
	conversion  options.Conversion

	bound []subgraph.Subgraph
	used  *bitmatrix.Matrix

	numPerEdge   [][]int
	numSubgraphs int
	sumPerEdge   int

	calculated bool

	editStack map[subgraph.Pair][]editSnapshot
	markStack map[subgraph.Pair][][]subgraph.Subgraph
}

// New returns an empty LowerBoundPacking for a graph of size n.
func New(n int, f *finder.Finder, mode options.Mode, restriction options.Restriction, conversion options.Conversion) *LowerBoundPacking {
	p := &LowerBoundPacking{
		n:           n,
		finder:      f,
		mode:        mode,
		restriction: restriction,
		conversion:  conversion,
		editStack:   make(map[subgraph.Pair][]editSnapshot),
		markStack:   make(map[subgraph.Pair][][]subgraph.Subgraph),
	}
	return p
}

// Size returns the current packing size (a lower bound on edits remaining).
func (p *LowerBoundPacking) Size() int { return len(p.bound) }

// Bound returns the current packed subgraphs. Callers must not mutate the
// returned slice or its elements.
func (p *LowerBoundPacking) Bound() []subgraph.Subgraph { return p.bound }

func cloneBound(b []subgraph.Subgraph) []subgraph.Subgraph {
	out := make([]subgraph.Subgraph, len(b))
	for i, sg := range b {
		out[i] = sg.Clone()
	}
	return out
}

// Initialize scans g from scratch via Find, greedily packing every
// encountered subgraph whose eligible edge set is disjoint from the pairs
// already claimed. If k >= 0, the scan stops early once the packing size
// exceeds k (the caller only needed to know the bound beats k).
func (p *LowerBoundPacking) Initialize(k int, g, edited *bitmatrix.Matrix) {
	p.numPerEdge = make([][]int, p.n)
	for i := range p.numPerEdge {
		p.numPerEdge[i] = make([]int, p.n)
	}
	p.numSubgraphs = 0
	p.sumPerEdge = 0
	p.bound = nil
	p.used, _ = bitmatrix.New(p.n)
	p.calculated = false
	p.editStack = make(map[subgraph.Pair][]editSnapshot)
	p.markStack = make(map[subgraph.Pair][][]subgraph.Subgraph)

	p.finder.Find(g, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
		touches := false
		for _, pr := range edges {
			p.numPerEdge[pr.U][pr.V]++
			p.numPerEdge[pr.V][pr.U]++
			p.sumPerEdge++
			if p.used.HasEdge(pr.U, pr.V) {
				touches = true
			}
		}
		p.numSubgraphs++
		if !touches {
			p.bound = append(p.bound, sg)
			for _, pr := range edges {
				_ = p.used.SetEdge(pr.U, pr.V)
			}
		}
		return k >= 0 && len(p.bound) > k
	})
	p.calculated = k >= 0 && len(p.bound) > k
}

// BeforeEdit must be invoked immediately before g's (u,v) bit is toggled.
// It removes the contribution of every subgraph touching (u,v) from the
// neighbor counters and drops any packed subgraph that was using (u,v).
func (p *LowerBoundPacking) BeforeEdit(g, edited *bitmatrix.Matrix, u, v int) error {
	pair := subgraph.NewPair(u, v)
	p.editStack[pair] = append(p.editStack[pair], editSnapshot{bound: cloneBound(p.bound), used: p.used.Clone()})

	err := p.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
		for _, pr := range edges {
			p.numPerEdge[pr.U][pr.V]--
			p.numPerEdge[pr.V][pr.U]--
			p.sumPerEdge--
		}
		p.numSubgraphs--
		return false
	})
	if err != nil {
		return err
	}

	kept := p.bound[:0]
	for _, sg := range p.bound {
		edges := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
		hasUV := false
		for _, pr := range edges {
			if pr == pair {
				hasUV = true
				break
			}
		}
		if hasUV {
			for _, pr := range edges {
				p.used.ClearEdge(pr.U, pr.V)
			}
		} else {
			kept = append(kept, sg)
		}
	}
	p.bound = kept
	p.calculated = false
	return nil
}

// AfterEdit must be invoked immediately after g's (u,v) bit is toggled. It
// re-scans the neighborhood of (u,v) on the new graph and greedily extends
// the packing with any newly-disjoint subgraph found.
func (p *LowerBoundPacking) AfterEdit(g, edited *bitmatrix.Matrix, u, v int) error {
	err := p.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
		touches := false
		for _, pr := range edges {
			p.numPerEdge[pr.U][pr.V]++
			p.numPerEdge[pr.V][pr.U]++
			p.sumPerEdge++
			if p.used.HasEdge(pr.U, pr.V) {
				touches = true
			}
		}
		p.numSubgraphs++
		if !touches {
			p.bound = append(p.bound, sg)
			for _, pr := range edges {
				_ = p.used.SetEdge(pr.U, pr.V)
			}
		}
		return false
	})
	p.calculated = false
	return err
}

// UndoEdit restores the packing to its state just before the matching
// BeforeEdit call, then re-syncs the neighbor counters against the
// (now-reverted) graph g.
func (p *LowerBoundPacking) UndoEdit(g, edited *bitmatrix.Matrix, u, v int) error {
	pair := subgraph.NewPair(u, v)
	stack := p.editStack[pair]
	if len(stack) == 0 {
		return ErrNoSnapshot
	}
	top := stack[len(stack)-1]
	p.editStack[pair] = stack[:len(stack)-1]
	p.bound = top.bound
	p.used = top.used

	err := p.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
		for _, pr := range edges {
			p.numPerEdge[pr.U][pr.V]++
			p.numPerEdge[pr.V][pr.U]++
			p.sumPerEdge++
		}
		p.numSubgraphs++
		return false
	})
	p.calculated = false
	return err
}

// AfterMark must be invoked when (u,v) is newly set in the edit mask. Any
// packed subgraph whose full (restriction-independent) candidate edge set
// contains (u,v) is pulled out of the packing and stashed for AfterUnmark.
func (p *LowerBoundPacking) AfterMark(u, v int) error {
	pair := subgraph.NewPair(u, v)
	var removed []subgraph.Subgraph
	kept := p.bound[:0]
	for _, sg := range p.bound {
		full := subgraph.EdgesOf(sg, nil, p.mode, options.None, p.conversion)
		hasUV := false
		for _, pr := range full {
			if pr == pair {
				hasUV = true
				break
			}
		}
		if hasUV {
			removed = append(removed, sg)
			for _, pr := range full {
				p.used.ClearEdge(pr.U, pr.V)
			}
		} else {
			kept = append(kept, sg)
		}
	}
	p.bound = kept
	p.markStack[pair] = append(p.markStack[pair], removed)
	p.calculated = false
	return nil
}

// AfterUnmark must be invoked when (u,v) is cleared from the edit mask. It
// restores the subgraphs stashed by the matching AfterMark call.
func (p *LowerBoundPacking) AfterUnmark(u, v int) error {
	pair := subgraph.NewPair(u, v)
	stack := p.markStack[pair]
	if len(stack) == 0 {
		return ErrNoSnapshot
	}
	removed := stack[len(stack)-1]
	p.markStack[pair] = stack[:len(stack)-1]
	for _, sg := range removed {
		full := subgraph.EdgesOf(sg, nil, p.mode, options.None, p.conversion)
		for _, pr := range full {
			_ = p.used.SetEdge(pr.U, pr.V)
		}
		p.bound = append(p.bound, sg)
	}
	p.calculated = false
	return nil
}

// Result returns the packing size, running the local-search improvement
// pass first if the bound hasn't been recomputed since the last mutation
// and still looks too low to prune branch k.
func (p *LowerBoundPacking) Result(k int, g, edited *bitmatrix.Matrix) int {
	if !p.calculated {
		if k < 0 || len(p.bound) <= k {
			p.improve(g, edited)
		}
		p.calculated = true
	}
	return len(p.bound)
}

// improve is a simplified rendition of the original ARW 2-improvement
// search: for each packed subgraph, in random order, free its claim, rank
// its eligible pairs by ascending shared-subgraph count (least-contested
// first) via a BucketPQ, and look for a candidate near that pair whose
// eligible pairs are disjoint from every claimed pair and from fs's own.
// A found candidate is kept in addition to the
// freed subgraph (a genuine size improvement) rather than used to swap out
// fs, trading the original's candidate-quality scoring for a simpler
// always-grow-if-possible rule. Stops after 5 consecutive stagnant rounds.
func (p *LowerBoundPacking) improve(g, edited *bitmatrix.Matrix) {
	if len(p.bound) == 0 {
		return
	}
	rng := rand.New(rand.NewSource(int64(42*p.numSubgraphs + p.sumPerEdge)))

	roundsNoImprovement := 0
	for roundsNoImprovement < 5 {
		order := rng.Perm(len(p.bound))
		improved := false

		for _, idx := range order {
			if idx >= len(p.bound) {
				continue
			}
			fs := p.bound[idx]
			edges := subgraph.EdgesOf(fs, edited, p.mode, p.restriction, p.conversion)
			if len(edges) == 0 {
				continue
			}

			for _, pr := range edges {
				p.used.ClearEdge(pr.U, pr.V)
			}

			q := bucketpq.New(len(edges), rng.Int63())
			for i, pr := range edges {
				shared := p.numPerEdge[pr.U][pr.V]
				if shared < 0 {
					shared = 0
				}
				_ = q.Insert(i, shared)
			}

			var partner *subgraph.Subgraph
			if err := q.Build(); err == nil {
				for !q.Empty() {
					i, _, _ := q.Pop()
					pr := edges[i]
					var candidate *subgraph.Subgraph
					_ = p.finder.FindNear(g, pr.U, pr.V, p.used, func(sg subgraph.Subgraph) bool {
						ce := subgraph.EdgesOf(sg, edited, p.mode, p.restriction, p.conversion)
						if len(ce) == 0 {
							return false
						}
						for _, cp := range ce {
							for _, fp := range edges {
								if cp == fp {
									return false
								}
							}
						}
						c := sg
						candidate = &c
						return true
					})
					if candidate != nil {
						partner = candidate
						break
					}
				}
			}

			for _, pr := range edges {
				_ = p.used.SetEdge(pr.U, pr.V)
			}

			if partner != nil {
				partnerEdges := subgraph.EdgesOf(*partner, edited, p.mode, p.restriction, p.conversion)
				for _, pr := range partnerEdges {
					_ = p.used.SetEdge(pr.U, pr.V)
				}
				p.bound = append(p.bound, *partner)
				improved = true
			}
		}

		if improved {
			roundsNoImprovement = 0
		} else {
			roundsNoImprovement++
		}
	}
}
