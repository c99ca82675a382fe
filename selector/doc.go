// Package selector picks which forbidden subgraph (and which of its
// eligible pairs) a search frame branches on next. Each variant trades
// selection cost for a different branching factor / pruning tradeoff: First
// is free but branches widely, Least-unedited exhausts easy choices first,
// Most and its pruned variants chase the most-constrained pair to shrink
// the search tree at the cost of an extra scan per frame.
package selector
