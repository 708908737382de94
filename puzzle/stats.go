package puzzle

import "time"

// Stats summarizes a completed (successful) search, matching the
// "Program Running Statistics" block solve.c/solve_multi_threaded.c and
// solve_pattern_db.c print after finding a solution.
type Stats struct {
	// PathLength is the number of states on the solution path, counting
	// the goal state itself.
	PathLength int
	// UniqueStates is the number of distinct successor configurations the
	// search generated (admitted into the fringe at some point).
	UniqueStates int
	// DatabaseHits is the number of pattern-database lookups that found a
	// matching entry, populated only when a PatternDB was attached.
	DatabaseHits int
	// CPUTime is the wall-clock duration of the search itself (Go has no
	// direct equivalent of C's clock() CPU-time counter without invoking
	// the OS accounting APIs; wall time of the single-goroutine search
	// loop is the closest faithful analogue and is documented as such).
	CPUTime time.Duration
	// ApproxMemoryBytes estimates the memory consumed by all unique states
	// generated, reproducing the original's
	// (sizeof(struct state) + N*N*sizeof(tile)) * num_unique_configs formula
	// against the Go State/Board layout.
	ApproxMemoryBytes int64
}

// approxStateBytes estimates the per-state memory footprint for an N by N
// board: the State struct's own fields plus the N*N int16 tile grid,
// mirroring the original's "sizeof(struct state) + N*N*sizeof(short)".
func approxStateBytes(n int) int64 {
	const stateOverhead = 64 // G, H, F, Parent, Next, Board pointer, slice header
	return int64(stateOverhead + n*n*2)
}
