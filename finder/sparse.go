package finder

import (
	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/options"
	"github.com/katalvlaran/p4edit/subgraph"
)

// SparseFinder wraps a Finder with an "offered" bitmatrix of pairs already
// reported across calls: it skips any subgraph whose entire eligible edge
// set (under the given Mode/Restriction/Conversion) is already contained
// in Offered, so each pair is offered to the caller at most once over the
// SparseFinder's lifetime. A caller can use it to avoid repeatedly
// proposing subgraphs built from edges it has already decided not to use;
// package packing's local search calls Finder.FindNear directly instead.
type SparseFinder struct {
	Inner   *Finder
	Offered *bitmatrix.Matrix
}

// NewSparse returns a SparseFinder over a graph of size n.
func NewSparse(length int, withCycles bool, n int) (*SparseFinder, error) {
	offered, err := bitmatrix.New(n)
	if err != nil {
		return nil, err
	}
	return &SparseFinder{Inner: New(length, withCycles), Offered: offered}, nil
}

// Reset clears the offered set, as if the SparseFinder were newly
// constructed.
func (sf *SparseFinder) Reset() {
	n := sf.Offered.Size()
	m, _ := bitmatrix.New(n)
	sf.Offered = m
}

// FindNear behaves like Finder.FindNear but additionally skips any
// subgraph whose eligible edge set is wholly contained in Offered, and
// marks the eligible edge set of every subgraph it does report.
func (sf *SparseFinder) FindNear(g, edited *bitmatrix.Matrix, u, v int, excluded *bitmatrix.Matrix, mode options.Mode, restriction options.Restriction, conv options.Conversion, cb func(subgraph.Subgraph) bool) error {
	return sf.Inner.FindNear(g, u, v, excluded, func(sg subgraph.Subgraph) bool {
		edges := subgraph.EdgesOf(sg, edited, mode, restriction, conv)
		if allOffered(sf.Offered, edges) {
			return false
		}
		for _, p := range edges {
			_ = sf.Offered.SetEdge(p.U, p.V)
		}
		return cb(sg)
	})
}

func allOffered(offered *bitmatrix.Matrix, edges []subgraph.Pair) bool {
	if len(edges) == 0 {
		return false
	}
	for _, p := range edges {
		if !offered.HasEdge(p.U, p.V) {
			return false
		}
	}
	return true
}
