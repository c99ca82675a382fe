package search

// Counters accumulates per-driver statistics, mirroring the original's
// optional `#ifdef STATS` instrumentation (calls/prunes/fallbacks/single/
// extra_lbs) unconditionally rather than behind a build tag — the cost is
// a handful of int increments per recursive call, negligible next to the
// finder scans that dominate runtime. A ParallelDriver sums each worker's
// Counters at join, without locking during the run.
type Counters struct {
	Calls          int64
	Prunes         int64
	Fallbacks      int64
	SingleBranches int64
	ExtraLBChecks  int64
}

// Add accumulates other into c, used to reduce per-worker counters at join.
func (c *Counters) Add(other Counters) {
	c.Calls += other.Calls
	c.Prunes += other.Prunes
	c.Fallbacks += other.Fallbacks
	c.SingleBranches += other.SingleBranches
	c.ExtraLBChecks += other.ExtraLBChecks
}
