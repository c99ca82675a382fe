// Package editor is the top-level orchestrator: given a graph and a
// validated options.Config, it runs iterative deepening over [KMin, KMax],
// re-initializing a search.Driver (or search.ParallelDriver) at each budget
// until a solution is found or the range is exhausted, and returns the
// edited graph alongside aggregated Stats.
//
// Solve owns nothing the caller doesn't hand it: the input graph is cloned
// once up front so the caller's matrix is never mutated, and every other
// package (finder, stats, packing, selector, search) is wired up fresh per
// call, matching the original Editor's role as a thin driver of the other
// subsystems rather than a subsystem itself.
package editor
