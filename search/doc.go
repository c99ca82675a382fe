// Package search implements the branch-and-bound driver: given a graph, an
// edit budget k, and the lower-bound/selector engines wired up by the
// caller, it recursively edits pairs chosen by the selector, pruning
// subtrees the lower bound proves can't finish within budget, and reports
// every solution found to a caller-supplied sink.
//
// Driver is the sequential (ST) driver. ParallelDriver fans ST drivers out
// across a worker pool, splitting only the root frame's branches of the
// search tree rather than sharing mid-recursion state, trading some load-balance
// quality for a much simpler and safer implementation.
//
// A Driver's graph and edit mask are mutated in place and always restored
// bit-for-bit on return from Edit — the same invariant plain recursive DFS
// gives the teacher's traversal helpers, just with edit/unedit in place of
// visit/unvisit.
package search
