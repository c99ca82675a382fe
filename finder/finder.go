package finder

import (
	"github.com/katalvlaran/p4edit/bitmatrix"
	"github.com/katalvlaran/p4edit/subgraph"
)

// Finder enumerates induced P_length/C_length subgraphs of a fixed graph
// shape (length, withCycles), matching the specification's "Finder's ℓ and
// with_cycles should remain compile-time" guidance as closely as Go's
// runtime-switch idiom allows: both are plain fields set once at
// construction and never varied mid-search.
type Finder struct {
	Length     int
	WithCycles bool
}

// New returns a Finder configured for the given ℓ and cycle policy.
func New(length int, withCycles bool) *Finder {
	return &Finder{Length: length, WithCycles: withCycles}
}

// target pins two vertices to (unordered) membership of the subgraph being
// searched for, used by FindNear to prune subtrees that can no longer
// contain both.
type target struct {
	u, v int
}

// Find enumerates every induced P_length (and, if WithCycles, every
// induced C_length) of g exactly once. Returning true from cb stops the
// enumeration early.
func (f *Finder) Find(g *bitmatrix.Matrix, cb func(subgraph.Subgraph) bool) {
	f.search(g, nil, nil, cb)
}

// FindNear enumerates every induced P_length/C_length of g containing both
// u and v. Each induced P_length is reported exactly once; an induced
// C_length may be over-reported (the sparse variant in sparse.go
// deduplicates across calls for callers that need each edge offered at
// most once). If excluded is non-nil, any subgraph using one of its marked
// pairs (as an edge or as a required non-edge) is skipped — used by LB
// local search to restrict candidates to those disjoint from a packing.
func (f *Finder) FindNear(g *bitmatrix.Matrix, u, v int, excluded *bitmatrix.Matrix, cb func(subgraph.Subgraph) bool) error {
	if u == v {
		return ErrSameVertex
	}
	f.search(g, &target{u: u, v: v}, excluded, cb)
	return nil
}

// search is the shared DFS engine backing Find and FindNear.
func (f *Finder) search(g *bitmatrix.Matrix, tgt *target, excluded *bitmatrix.Matrix, cb func(subgraph.Subgraph) bool) {
	n := g.Size()
	length := f.Length
	if n < length {
		return
	}
	path := make([]int, length)
	visited := make([]bool, n)
	stopped := false

	var extend func(depth int)
	extend = func(depth int) {
		if stopped {
			return
		}
		if depth == length {
			stopped = f.emit(g, path, tgt, excluded, cb)
			return
		}
		prev := path[depth-1]

		// tryCandidate attempts to place v at path[depth]; it applies the
		// same neighbor/induced-subgraph checks regardless of whether v
		// was chosen freely or forced by the tgt pruning below. Returns
		// false if the enclosing search has stopped (cb returned true).
		tryCandidate := func(v int) bool {
			if visited[v] || !g.HasEdge(prev, v) {
				return true
			}
			ok := true
			for i := 0; i < depth-1; i++ {
				if depth == length-1 && i == 0 {
					// The closing pair (path[0], path[length-1]) is
					// allowed to be an edge (cycle) or non-edge (path);
					// its status is decided at emit time.
					continue
				}
				if g.HasEdge(v, path[i]) {
					ok = false
					break
				}
			}
			if !ok {
				return true
			}
			path[depth] = v
			visited[v] = true
			extend(depth + 1)
			visited[v] = false
			return !stopped
		}

		// Pruning for FindNear: if neither target vertex has been placed
		// yet and there are not enough remaining slots to place both,
		// this subtree cannot satisfy the query. When the slots exactly
		// match the still-missing targets (the tight case), every
		// remaining slot MUST be filled by a missing target — trying any
		// other neighbor would use up a slot that both targets need and
		// can never again produce a subgraph containing both u and v, so
		// the candidate set itself is restricted to the missing
		// target(s) rather than merely bounding the count.
		if tgt != nil {
			placedU, placedV := false, false
			for i := 0; i < depth; i++ {
				if path[i] == tgt.u {
					placedU = true
				}
				if path[i] == tgt.v {
					placedV = true
				}
			}
			remaining := length - depth
			need := 0
			if !placedU {
				need++
			}
			if !placedV {
				need++
			}
			if need > remaining {
				return
			}
			if need == remaining {
				if !placedU {
					if !tryCandidate(tgt.u) {
						return
					}
				}
				if !placedV {
					tryCandidate(tgt.v)
				}
				return
			}
		}

		row, _ := g.Row(prev)
		bitmatrix.ForEachSetBit(row, tryCandidate)
	}

	for start := 0; start < n; start++ {
		if stopped {
			return
		}
		path[0] = start
		visited[start] = true
		if length == 1 {
			// Not a meaningful forbidden-subgraph length; guarded by
			// options.Validate (Length >= 2) but defend here too.
			visited[start] = false
			continue
		}
		extend(1)
		visited[start] = false
	}
}

// emit classifies a completed path, applies the canonical-reporting
// filters, the exclusion filter, and invokes cb. Returns true if the
// caller should stop the enclosing search.
//
// tgt, when non-nil, is verified here in addition to the forced-placement
// pruning in extend: a path that doesn't contain both tgt.u and tgt.v is
// rejected rather than reported, so FindNear's "contains both u and v"
// contract (relied on by stats, packing, and selector) holds even if a
// future change to the pruning above were to regress it.
func (f *Finder) emit(g *bitmatrix.Matrix, path []int, tgt *target, excluded *bitmatrix.Matrix, cb func(subgraph.Subgraph) bool) bool {
	if tgt != nil {
		hasU, hasV := false, false
		for _, p := range path {
			if p == tgt.u {
				hasU = true
			}
			if p == tgt.v {
				hasV = true
			}
		}
		if !hasU || !hasV {
			return false
		}
	}

	length := len(path)
	closes := g.HasEdge(path[0], path[length-1])

	var sg subgraph.Subgraph
	if closes {
		if !f.WithCycles {
			return false
		}
		sg = subgraph.Subgraph{Vertices: append([]int(nil), path...), IsCycle: true}
		if !sg.CanonicalCycleRotation() {
			return false
		}
	} else {
		if path[0] > path[length-1] {
			// Reversal of an already-(or about-to-be) reported path;
			// only report the direction with the smaller endpoint first.
			return false
		}
		sg = subgraph.Subgraph{Vertices: append([]int(nil), path...), IsCycle: false}
	}

	if excluded != nil && subgraphTouchesExcluded(sg, excluded) {
		return false
	}

	return cb(sg)
}

// subgraphTouchesExcluded reports whether any pair among the subgraph's
// vertices (edge or non-edge) is marked in excluded.
func subgraphTouchesExcluded(sg subgraph.Subgraph, excluded *bitmatrix.Matrix) bool {
	n := len(sg.Vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if excluded.HasEdge(sg.Vertices[i], sg.Vertices[j]) {
				return true
			}
		}
	}
	return false
}
