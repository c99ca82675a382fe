// Package finder enumerates induced P_ℓ and (optionally) C_ℓ subgraphs of a
// bitmatrix.Matrix.
//
// Two entry points, mirroring the specification:
//
//   - Find lists every induced P_ℓ (and, if withCycles, every induced C_ℓ)
//     exactly once.
//   - FindNear lists every induced P_ℓ/C_ℓ containing two given vertices.
//
// Steps (Find):
//  1. Grow a candidate path vertex-by-vertex via neighbor search, excluding
//     already-used vertices and any vertex adjacent to a non-consecutive
//     path position (the induced-subgraph chord constraint), with a single
//     exception at the final step so the closing pair (v0, v_{ℓ-1}) may be
//     either an edge (cycle) or non-edge (path).
//  2. On completion, classify the subgraph as a path or cycle from the
//     closing pair, apply a canonical-rotation filter so each cycle is
//     reported once, and invoke the callback.
//
// Time complexity: bounded by O(n^ℓ) in the worst case (dense graphs),
// pruned heavily in practice by the adjacency/non-adjacency constraints
// enforced at every extension step; ℓ ≤ 6 keeps recursion depth bounded.
// Memory usage: O(ℓ) for the path plus O(n) for the visited set.
package finder
