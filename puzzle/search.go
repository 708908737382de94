package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrNoSolution is returned by Solve/SolveThreaded when the fringe drains
// without ever reaching the goal. This is a valid outcome, not a failure:
// callers should print "No solution." and exit zero.
var ErrNoSolution = errors.New("no solution")

// Search is the owning context for one A* run: the fringe, the closed set,
// an optional pattern database, and the goal board to search for. It
// replaces the module-level globals the original C solver used with a
// context object that has an explicit lifecycle.
type Search struct {
	N    int
	Goal *Board
	DB   *PatternDB

	Fringe *Fringe
	Closed *Closed

	// ProgressEvery, if non-zero, logs search progress via Logger every
	// ProgressEvery iterations, mirroring solve_pattern_db.c's
	// "Iteration: %d, %d total unique states generated, %d database hits"
	// line. Zero disables progress logging. Defaults to 1000 via NewSearch.
	ProgressEvery int
	Logger        *log.Logger
}

// NewSearch constructs a Search context for an N by N puzzle, optionally
// backed by a pattern database (nil for Manhattan + linear-conflicts only).
func NewSearch(n int, db *PatternDB) *Search {
	return &Search{
		N:             n,
		Goal:          NewGoalBoard(n),
		DB:            db,
		Fringe:        NewFringe(),
		Closed:        NewClosed(),
		ProgressEvery: 1000,
		Logger:        log.Default(),
	}
}

// Solve runs the single-threaded A* main loop starting from start, and
// returns the solution path (start..goal inclusive) and run statistics.
// Returns ErrNoSolution if the fringe drains without reaching the goal.
func (s *Search) Solve(ctx context.Context, start *Board) ([]*State, Stats, error) {
	return s.solve(ctx, start, s.expandSerial)
}

// SolveThreaded runs the same A* main loop, but expands each node's four
// successors concurrently: one short-lived goroutine per direction,
// barrier-joined with errgroup before the successors are merged into the
// fringe and the expanded node appended to closed. This mirrors
// solve_multi_threaded.c's generate_successors (one pthread per move,
// joined before merge_to_fringe), translated to goroutines via
// errgroup.Group the same way this codebase's other worker pools are.
func (s *Search) SolveThreaded(ctx context.Context, start *Board) ([]*State, Stats, error) {
	return s.solve(ctx, start, s.expandThreaded)
}

// expandFunc computes the four (possibly nil) successors of curr.
type expandFunc func(ctx context.Context, curr *State) ([4]*State, error)

func (s *Search) solve(ctx context.Context, start *Board, expand expandFunc) ([]*State, Stats, error) {
	begin := time.Now()

	startState := NewStartState(start)
	UpdateHeuristic(startState, s.DB)
	s.Fringe.Insert(startState)

	uniqueStates := 0
	iteration := 0

	for !s.Fringe.Empty() {
		curr := s.Fringe.PopMin()

		if curr.Board.Equal(s.Goal) {
			path := reconstructPath(curr)
			stats := Stats{
				PathLength:        len(path),
				UniqueStates:      uniqueStates,
				CPUTime:           time.Since(begin),
				ApproxMemoryBytes: approxStateBytes(s.N) * int64(uniqueStates),
			}
			if s.DB != nil {
				stats.DatabaseHits = s.DB.Hits()
			}
			return path, stats, nil
		}

		successors, err := expand(ctx, curr)
		if err != nil {
			return nil, Stats{}, err
		}

		for _, succ := range successors {
			if succ == nil {
				continue
			}
			if s.Closed.Contains(succ) || s.Fringe.Contains(succ) {
				continue
			}
			UpdateHeuristic(succ, s.DB)
			s.Fringe.Insert(succ)
			uniqueStates++
		}
		s.Closed.Append(curr)

		iteration++
		if s.ProgressEvery > 0 && iteration%s.ProgressEvery == 0 && s.Logger != nil {
			s.Logger.Printf("iteration %d, %d total unique states generated, %d database hits",
				iteration, uniqueStates, dbHits(s.DB))
		}

		select {
		case <-ctx.Done():
			return nil, Stats{}, ctx.Err()
		default:
		}
	}

	return nil, Stats{}, ErrNoSolution
}

func dbHits(db *PatternDB) int {
	if db == nil {
		return 0
	}
	return db.Hits()
}

// expandSerial generates curr's successors in the current goroutine.
func (s *Search) expandSerial(_ context.Context, curr *State) ([4]*State, error) {
	return curr.Successors(), nil
}

// expandThreaded generates curr's successors across four goroutines, one
// per direction, joined via errgroup before returning. Each goroutine only
// writes its own slot in the result array, so no lock is needed: read sets
// (curr's board) and write sets (one slot each) are disjoint across workers.
func (s *Search) expandThreaded(ctx context.Context, curr *State) ([4]*State, error) {
	var successors [4]*State

	eg, egCtx := errgroup.WithContext(ctx)
	for i, d := range Directions {
		i, d := i, d
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			if !curr.Board.CanMove(d) {
				return nil
			}
			succ := curr.Copy()
			succ.Board.Move(d)
			successors[i] = succ
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return [4]*State{}, fmt.Errorf("threaded successor expansion: %w", err)
	}
	return successors, nil
}

// reconstructPath walks Parent links from goal back to the root and returns
// them in forward (start..goal) order, re-linking Next pointers along the
// way exactly as solve_pattern_db.c's solve() does (insert at the head of a
// fresh solution_path list while walking predecessor pointers).
func reconstructPath(goal *State) []*State {
	var path []*State
	for s := goal; s != nil; s = s.Parent {
		path = append(path, s)
	}
	// path is goal..start; reverse in place to start..goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i := range path {
		if i+1 < len(path) {
			path[i].Next = path[i+1]
		} else {
			path[i].Next = nil
		}
	}
	return path
}
