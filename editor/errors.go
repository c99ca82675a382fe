package editor

import "errors"

// ErrNoSolutionInRange indicates no edit sequence within cfg.KMin..cfg.KMax
// transforms the graph into one free of the forbidden subgraph.
var ErrNoSolutionInRange = errors.New("editor: no solution found within [KMin, KMax]")
