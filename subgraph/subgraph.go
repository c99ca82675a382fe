package subgraph

// Pair is an unordered vertex pair, always stored with U < V so it can be
// used as a map key or compared directly.
type Pair struct {
	U, V int
}

// NewPair returns a Pair with U < V.
func NewPair(a, b int) Pair {
	if a < b {
		return Pair{U: a, V: b}
	}
	return Pair{U: b, V: a}
}

// Subgraph is an induced forbidden subgraph: an ordered sequence of ℓ
// vertex IDs forming an induced path v0-v1-...-v{l-1}, or, when IsCycle,
// an induced cycle where additionally (v0, v_{l-1}) is an edge.
type Subgraph struct {
	Vertices []int
	IsCycle  bool
}

// Length returns ℓ, the number of vertices in the subgraph.
func (s Subgraph) Length() int { return len(s.Vertices) }

// Clone returns a deep copy of s.
func (s Subgraph) Clone() Subgraph {
	v := make([]int, len(s.Vertices))
	copy(v, s.Vertices)
	return Subgraph{Vertices: v, IsCycle: s.IsCycle}
}

// CanonicalCycleRotation reports whether s, interpreted as a cycle, starts
// at its smallest vertex and proceeds in the direction that makes the
// second vertex smaller than the last. Used by Finder to report each
// induced cycle exactly once (§9 cycle de-duplication, option (a)).
func (s Subgraph) CanonicalCycleRotation() bool {
	n := len(s.Vertices)
	if n == 0 {
		return true
	}
	minIdx := 0
	for i, v := range s.Vertices {
		if v < s.Vertices[minIdx] {
			minIdx = i
		}
	}
	if minIdx != 0 {
		return false
	}
	// Smallest vertex must be at position 0; additionally require the
	// traversal direction with the smaller neighbor second, so the
	// reverse rotation is excluded.
	return s.Vertices[1] < s.Vertices[n-1]
}
