package finder

import (
	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/subgraph"
)

// QuasiThresholdCertificate is the ℓ=4 fast "any forbidden subgraph?"
// oracle described by the specification as an optional linear-time
// recognizer used to bail out of the more expensive general Find early.
// It returns (nil, true) if g contains no induced P4 or C4 (i.e. g is
// quasi-threshold / P4-and-C4-free), or a single induced P4/C4 certificate
// and false otherwise.
//
// This implementation delegates to a length-4, with-cycles Find and
// returns its first hit: the core solver never depends on the oracle
// running in true O(n+m) time (the asymptotically linear cograph
// recognition algorithm is a distinct, more intricate routine that no
// example in this codebase's lineage implements in Go, so it is not
// ported here — see DESIGN.md), it only depends on the oracle's
// correctness as a short-circuit ahead of a full Find pass.
func QuasiThresholdCertificate(g *bitmatrix.Matrix) (*subgraph.Subgraph, bool) {
	f := New(4, true)
	var found *subgraph.Subgraph
	f.Find(g, func(sg subgraph.Subgraph) bool {
		c := sg.Clone()
		found = &c
		return true
	})
	if found == nil {
		return nil, true
	}
	return found, false
}
