package subgraph

import "github.com/katalvlaran/p4edit/options"

// EdgeRef identifies one pair of a Subgraph eligible for editing: the
// unordered Pair itself, whether it is currently an edge of G (as opposed
// to the path's defining non-edge "closing" pair), and whether it is the
// subgraph's closing pair (v0, v_{length-1}).
type EdgeRef struct {
	Pair     Pair
	IsEdge   bool
	IsClosing bool
}

// candidateEdges returns every pair of s that *could* be offered for
// editing before Mode/Restriction filtering: the length-1 (length, for a
// cycle) consecutive pairs, plus — for a non-cycle subgraph — the closing
// non-edge pair, gated by Conversion.
//
// Conversion semantics (Options.hpp, original_source):
//   - Normal: no special treatment; offered at its natural (last) position.
//   - Last:   offered, but callers iterating in order see it strictly after
//     every other pair (ForAllEdgesOrdered places it last explicitly;
//     ForAllEdgesUnordered has no ordering requirement so behaves as Normal).
//   - Skip:   never offered.
func candidateEdges(s Subgraph, conv options.Conversion) []EdgeRef {
	n := s.Length()
	refs := make([]EdgeRef, 0, n)
	for i := 0; i < n-1; i++ {
		refs = append(refs, EdgeRef{Pair: NewPair(s.Vertices[i], s.Vertices[i+1]), IsEdge: true})
	}

	closing := NewPair(s.Vertices[0], s.Vertices[n-1])
	if s.IsCycle {
		// The closing pair is itself an edge of the cycle; whether it is
		// offered at all is still gated by Conversion.
		if conv != options.Skip {
			refs = append(refs, EdgeRef{Pair: closing, IsEdge: true, IsClosing: true})
		}
	} else {
		if conv != options.Skip {
			refs = append(refs, EdgeRef{Pair: closing, IsEdge: false, IsClosing: true})
		}
	}
	return refs
}

// eligible applies Mode and Restriction filtering to a single candidate.
func eligible(ref EdgeRef, mode options.Mode, restriction options.Restriction, edited HasEdger) bool {
	switch mode {
	case options.DeleteOnly:
		if !ref.IsEdge {
			return false
		}
	case options.InsertOnly:
		if ref.IsEdge {
			return false
		}
	case options.Edit:
		// both directions allowed
	}

	if restriction != options.None && edited != nil && edited.HasEdge(ref.Pair.U, ref.Pair.V) {
		return false
	}
	return true
}

// HasEdger is satisfied by *bitmatrix.Matrix; declared locally to avoid a
// direct package dependency cycle risk and to keep this package testable
// with a trivial fake.
type HasEdger interface {
	HasEdge(u, v int) bool
}

// ForAllEdgesUnordered invokes cb for every pair of s eligible for editing
// under mode/restriction/conversion, in no particular order. Returning
// true from cb stops the iteration early.
func ForAllEdgesUnordered(s Subgraph, edited HasEdger, mode options.Mode, restriction options.Restriction, conv options.Conversion, cb func(Pair) bool) {
	for _, ref := range candidateEdges(s, conv) {
		if !eligible(ref, mode, restriction, edited) {
			continue
		}
		if cb(ref.Pair) {
			return
		}
	}
}

// ForAllEdgesOrdered is ForAllEdgesUnordered but in a deterministic order
// suitable for branching enumeration: consecutive pairs first in path
// order, the closing pair always last (matching Conversion=Last's
// "handled after all other edges" requirement, and a no-op reordering for
// Normal/Skip since the closing pair is already positionally last).
func ForAllEdgesOrdered(s Subgraph, edited HasEdger, mode options.Mode, restriction options.Restriction, conv options.Conversion, cb func(Pair) bool) {
	refs := candidateEdges(s, conv)
	for _, ref := range refs {
		if ref.IsClosing {
			continue
		}
		if !eligible(ref, mode, restriction, edited) {
			continue
		}
		if cb(ref.Pair) {
			return
		}
	}
	for _, ref := range refs {
		if !ref.IsClosing {
			continue
		}
		if !eligible(ref, mode, restriction, edited) {
			continue
		}
		if cb(ref.Pair) {
			return
		}
	}
}

// EdgesOf collects the eligible unordered edge set of s as a slice, used by
// LowerBoundPacking to test/record disjointness.
func EdgesOf(s Subgraph, edited HasEdger, mode options.Mode, restriction options.Restriction, conv options.Conversion) []Pair {
	var out []Pair
	ForAllEdgesUnordered(s, edited, mode, restriction, conv, func(p Pair) bool {
		out = append(out, p)
		return false
	})
	return out
}
