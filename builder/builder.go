// Package builder implements a disjoint pattern-database builder: for each
// of the two subsets (first-half, last-half), a pool of workers performs
// independent random reverse walks from the goal board, and the minimum
// walk length observed for each distinct partial pattern is recorded.
//
// The builder's correctness rests on the random walks being dense enough to
// cover short distances exhaustively, which makes the resulting database a
// strong heuristic in practice but not a provably admissible one for every
// N (a production solver would replace the random walks with BFS
// enumeration over each pattern's reachable configurations). This
// implementation keeps the random-walk design for its tolerance to
// concurrent, lock-light construction.
package builder

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jackr276/npuzzle-astar/puzzle"
)

// Config controls one database build.
type Config struct {
	N int

	// Workers is the number of concurrent goroutines performing walks for
	// each subset.
	Workers int
	// WalksPerWorker is how many independent reverse walks each worker
	// performs before flushing its buffer and returning.
	WalksPerWorker int
	// MaxMoves bounds the length of a single reverse walk.
	MaxMoves int
	// BufferSize is how many proposed entries a worker accumulates locally
	// before acquiring the subset lock and flushing, to amortize
	// synchronization across many small updates.
	BufferSize int

	// Rand seeds each worker's random walks. If nil, each worker derives
	// its own source from a process-wide seed; re-seeding inside worker
	// goroutines is acceptable since the walks need not be reproducible
	// across runs.
	Rand *rand.Rand
}

// DefaultConfig returns reasonable defaults for an N by N puzzle: 16
// workers, 200 walks each, walks of up to 100 moves, flushed in batches of
// 32.
func DefaultConfig(n int) Config {
	return Config{
		N:              n,
		Workers:        16,
		WalksPerWorker: 200,
		MaxMoves:       100,
		BufferSize:     32,
	}
}

// subsetBuilder owns one PatternType's mutex-guarded entry list: under a
// subset-scoped mutex, linearly search the existing pattern list for a
// match and lower its cost, otherwise append.
type subsetBuilder struct {
	mu      sync.Mutex
	entries []puzzle.PatternEntry
}

func (sb *subsetBuilder) flush(buf []puzzle.PatternEntry) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	for _, entry := range buf {
		sb.insertLocked(entry)
	}
}

func (sb *subsetBuilder) insertLocked(entry puzzle.PatternEntry) {
	for i := range sb.entries {
		if patternsEqual(sb.entries[i].Positions, entry.Positions) {
			if entry.Cost < sb.entries[i].Cost {
				sb.entries[i].Cost = entry.Cost
			}
			return
		}
	}
	sb.entries = append(sb.entries, entry)
}

func patternsEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Build runs the worker pool for both subsets concurrently: there is no
// cross-synchronization between subsets, so there is no reason to
// serialize the two. It returns the resulting in-memory database.
func Build(ctx context.Context, cfg Config) (*puzzle.PatternDB, error) {
	if cfg.N < 1 {
		return nil, fmt.Errorf("invalid puzzle size N=%d", cfg.N)
	}

	firstHalf := &subsetBuilder{}
	lastHalf := &subsetBuilder{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers * 2)

	for _, t := range []puzzle.PatternType{puzzle.FirstHalf, puzzle.LastHalf} {
		t := t
		sb := firstHalf
		if t == puzzle.LastHalf {
			sb = lastHalf
		}
		for w := 0; w < cfg.Workers; w++ {
			rng := workerRand(cfg.Rand, w, t)
			eg.Go(func() error {
				return runWorker(egCtx, cfg, t, sb, rng)
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("building pattern database: %w", err)
	}

	db := puzzle.NewPatternDB(cfg.N)
	for _, entry := range firstHalf.entries {
		db.Insert(entry)
	}
	for _, entry := range lastHalf.entries {
		db.Insert(entry)
	}
	return db, nil
}

// workerRand derives a per-worker random source. When cfg.Rand is supplied
// (tests want determinism), each worker's source is seeded from it; Build
// calls workerRand sequentially before starting each worker, so the shared
// source is never used concurrently. When cfg.Rand is nil, each worker's
// source is seeded from the process-wide math/rand source.
func workerRand(shared *rand.Rand, worker int, t puzzle.PatternType) *rand.Rand {
	if shared == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	seed := shared.Int63() + int64(worker)*31 + int64(t)*1009
	return rand.New(rand.NewSource(seed))
}

// runWorker performs cfg.WalksPerWorker independent random reverse walks
// from the goal, buffering proposed entries locally and flushing to sb in
// batches of cfg.BufferSize.
func runWorker(ctx context.Context, cfg Config, t puzzle.PatternType, sb *subsetBuilder, rng *rand.Rand) error {
	buf := make([]puzzle.PatternEntry, 0, cfg.BufferSize)

	for i := 0; i < cfg.WalksPerWorker; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		entry := randomReverseWalk(cfg.N, cfg.MaxMoves, t, rng)
		buf = append(buf, entry)
		if len(buf) >= cfg.BufferSize {
			sb.flush(buf)
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		sb.flush(buf)
	}
	return nil
}

// randomReverseWalk performs one random reverse walk from the goal board of
// up to maxMoves steps: each step picks a direction uniformly at random,
// applies it only if legal and not the exact inverse of the previous move
// (to avoid trivial undos), and increments cost only when the tile that
// moved belongs to subset t. The resulting board is then translated into a
// partial pattern of type t.
func randomReverseWalk(n, maxMoves int, t puzzle.PatternType, rng *rand.Rand) puzzle.PatternEntry {
	board := puzzle.NewGoalBoard(n)
	cost := 0
	hasLast := false
	var last puzzle.Direction

	for step := 0; step < maxMoves; step++ {
		d := puzzle.Directions[rng.Intn(len(puzzle.Directions))]
		if !board.CanMove(d) {
			continue
		}
		if hasLast && d == last.Opposite() {
			continue
		}

		moved := board.MovedTile(d)
		board.Move(d)
		if tileInSubset(n, t, moved) {
			cost++
		}
		last = d
		hasLast = true
	}

	entry := board.Pattern(t)
	entry.Cost = cost
	return entry
}

// tileInSubset reports whether tile belongs to pattern type t's subset, per
// the same split used in Board.Pattern: tiles 1..N*N/2 are FirstHalf, tiles
// N*N/2+1..N*N-1 are LastHalf. The blank (0) belongs to neither.
func tileInSubset(n int, t puzzle.PatternType, tile int16) bool {
	if tile == 0 {
		return false
	}
	half := n * n / 2
	if t == puzzle.FirstHalf {
		return int(tile) <= half
	}
	return int(tile) > half
}
