package editor

import "github.com/katalvlaran/p4edit/search"

// Stats aggregates a Solve run's instrumentation: the search.Counters from
// every k tried during iterative deepening (not just the winning k), plus
// the k at which a solution was found (or -1 if none was).
type Stats struct {
	search.Counters

	// AttemptsPerK records the per-k Counters in the order they ran,
	// letting a caller see how much work each rejected budget cost before
	// the solver moved on to k+1.
	AttemptsPerK []search.Counters

	// SolvedAtK is the budget a solution was found at, or -1 if Solve
	// exhausted [KMin, KMax] without one.
	SolvedAtK int
}

func newStats() Stats {
	return Stats{SolvedAtK: -1}
}

func (s *Stats) record(k int, c search.Counters, found bool) {
	s.AttemptsPerK = append(s.AttemptsPerK, c)
	s.Counters.Add(c)
	if found && s.SolvedAtK < 0 {
		s.SolvedAtK = k
	}
}
