// Package bitmatrix implements a packed, symmetric adjacency/edit-mask
// matrix over vertices 0..n-1, used by the solver both as the working graph
// G and as the edit mask E.
//
// Each row is a slice of machine words (uint64). has_edge is a single bit
// test; set/clear/toggle update both the (u,v) and (v,u) bit so the matrix
// stays symmetric by construction. A set bit never appears on the
// diagonal: self-loops are not representable and are rejected.
//
// Row length L = ceil(n/64). AllocRows returns k*L zeroed words, room for
// k packed rows of scratch space.
//
// Complexity: HasEdge/SetEdge/ClearEdge/ToggleEdge are O(1). Degree is
// O(L); CountEdges scans every row and is O(n*L).
package bitmatrix
