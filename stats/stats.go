package stats

import (
	"fmt"

	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/finder"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/subgraph"
)

// Stats is SubgraphStats: per-pair forbidden-subgraph counts plus a total,
// maintained incrementally by Initialize + the before/after protocol.
type Stats struct {
	n           int
	count       [][]int
	total       int
	markStack   map[subgraph.Pair][]int
	finder      *finder.Finder
	mode        options.Mode
	restriction options.Restriction
	conversion  options.Conversion
}

// New returns a zeroed Stats for a graph of size n, using f to enumerate
// forbidden subgraphs and the given edit policy to compute eligible edge
// sets.
func New(n int, f *finder.Finder, mode options.Mode, restriction options.Restriction, conversion options.Conversion) *Stats {
	count := make([][]int, n)
	for i := range count {
		count[i] = make([]int, n)
	}
	return &Stats{
		n:           n,
		count:       count,
		markStack:   make(map[subgraph.Pair][]int),
		finder:      f,
		mode:        mode,
		restriction: restriction,
		conversion:  conversion,
	}
}

// Count returns count[u][v].
func (s *Stats) Count(u, v int) int { return s.count[u][v] }

// N returns the vertex count Stats was constructed for, letting a selector
// scan the full count matrix for the maximum entry.
func (s *Stats) N() int { return s.n }

// Total returns the running total of induced forbidden subgraphs with no
// marked edges.
func (s *Stats) Total() int { return s.total }

func (s *Stats) applyDelta(edges []subgraph.Pair, delta int) {
	for _, p := range edges {
		s.count[p.U][p.V] += delta
		s.count[p.V][p.U] += delta
	}
}

// Initialize scans g fully via Find and sets count/total from scratch. It
// must be called once before any before/after call, typically right after
// the driver constructs G and E (E is expected empty at this point, but
// Initialize does not assume it).
func (s *Stats) Initialize(g, edited *bitmatrix.Matrix) {
	for i := range s.count {
		for j := range s.count[i] {
			s.count[i][j] = 0
		}
	}
	s.total = 0
	s.markStack = make(map[subgraph.Pair][]int)

	s.finder.Find(g, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, s.mode, s.restriction, s.conversion)
		if len(edges) == 0 {
			return false
		}
		s.applyDelta(edges, 1)
		s.total++
		return false
	})
}

// BeforeEdit must be invoked immediately before g's (u,v) bit is toggled.
// It decrements the contribution of every currently-induced forbidden
// subgraph containing u and v.
func (s *Stats) BeforeEdit(g, edited *bitmatrix.Matrix, u, v int) error {
	return s.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, s.mode, s.restriction, s.conversion)
		if len(edges) == 0 {
			return false
		}
		s.applyDelta(edges, -1)
		s.total--
		return false
	})
}

// AfterEdit must be invoked immediately after g's (u,v) bit is toggled. It
// increments the contribution of every newly-induced forbidden subgraph
// containing u and v.
func (s *Stats) AfterEdit(g, edited *bitmatrix.Matrix, u, v int) error {
	return s.finder.FindNear(g, u, v, nil, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, s.mode, s.restriction, s.conversion)
		if len(edges) == 0 {
			return false
		}
		s.applyDelta(edges, 1)
		s.total++
		return false
	})
}

// AfterMark must be invoked when (u,v) is newly set in the edit mask
// (E.has_edge(u,v) becomes true). It stashes count[u][v] and zeroes it.
func (s *Stats) AfterMark(u, v int) error {
	if u < 0 || u >= s.n || v < 0 || v >= s.n || u == v {
		return fmt.Errorf("stats: AfterMark(%d,%d): invalid pair", u, v)
	}
	p := subgraph.NewPair(u, v)
	s.markStack[p] = append(s.markStack[p], s.count[u][v])
	s.total -= s.count[u][v]
	s.count[u][v] = 0
	s.count[v][u] = 0
	return nil
}

// AfterUnmark must be invoked when (u,v) is cleared from the edit mask
// (E.has_edge(u,v) becomes false). It pops the stashed count back in.
func (s *Stats) AfterUnmark(u, v int) error {
	p := subgraph.NewPair(u, v)
	stack := s.markStack[p]
	if len(stack) == 0 {
		return fmt.Errorf("stats: AfterUnmark(%d,%d): no stashed count", u, v)
	}
	top := stack[len(stack)-1]
	s.markStack[p] = stack[:len(stack)-1]
	s.count[u][v] = top
	s.count[v][u] = top
	s.total += top
	return nil
}
