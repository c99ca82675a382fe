// Package stats implements SubgraphStats: a symmetric count[u][v] matrix
// giving the number of currently-induced forbidden subgraphs whose
// eligible edge set contains (u,v), plus a running total, kept exact under
// the driver's strict before_edit/after_edit/after_mark/after_unmark
// protocol (§4.4 of the specification).
//
// Invariant: count[u][v] == 0 whenever (u,v) is marked in the edit mask;
// unmarking restores the value stashed in a per-pair LIFO stack.
package stats
