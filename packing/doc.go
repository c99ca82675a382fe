// Package packing implements a lower bound on the number of edits still
// required: a set of pairwise edge-disjoint forbidden subgraphs (a packing),
// maintained incrementally under the same before/after protocol as package
// stats, and occasionally improved by a randomized local search that
// greedily adds disjoint partners next to packed subgraphs where it can; it
// never removes or swaps out a packed subgraph.
//
// A valid k-edit solution must fix every subgraph in the packing with a
// distinct pair each (they share no eligible pair by construction), so the
// packing's size is always a safe lower bound on the remaining edit budget.
package packing
