// Package resultcache memoizes solved start configurations on disk, keyed
// by the canonical packed board bytes, so that re-running the solver CLI on
// a start configuration it has already solved skips the A* search entirely.
//
// This is optional ambient infrastructure, not part of the core search
// engine: omitting a cache directory reproduces the solver's behavior
// exactly. Grounded on hailam-chessplay/internal/storage/storage.go's
// badger.DB wrapper, generalized from "user preferences/game stats" key-value
// pairs to "board hash -> solve result" key-value pairs.
package resultcache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/jackr276/npuzzle-astar/puzzle"
)

// Result is the memoized outcome of solving one start configuration.
type Result struct {
	PathLength        int           `json:"path_length"`
	UniqueStates      int           `json:"unique_states"`
	DatabaseHits      int           `json:"database_hits"`
	CPUTime           time.Duration `json:"cpu_time"`
	ApproxMemoryBytes int64         `json:"approx_memory_bytes"`
	Moves             []string      `json:"moves"`
}

// ResultFromStats builds a cache Result from a solved path and its Stats.
func ResultFromStats(path []*puzzle.State, stats puzzle.Stats) Result {
	moves := make([]string, 0, len(path))
	for i := 1; i < len(path); i++ {
		moves = append(moves, moveBetween(path[i-1].Board, path[i].Board))
	}
	return Result{
		PathLength:        stats.PathLength,
		UniqueStates:      stats.UniqueStates,
		DatabaseHits:      stats.DatabaseHits,
		CPUTime:           stats.CPUTime,
		ApproxMemoryBytes: stats.ApproxMemoryBytes,
		Moves:             moves,
	}
}

// moveBetween reports which direction the blank moved between two
// consecutive boards on a solution path, purely for a human-readable replay
// in the cached Result.
func moveBetween(a, b *puzzle.Board) string {
	switch {
	case b.ZeroCol == a.ZeroCol-1:
		return puzzle.Left.String()
	case b.ZeroCol == a.ZeroCol+1:
		return puzzle.Right.String()
	case b.ZeroRow == a.ZeroRow+1:
		return puzzle.Down.String()
	case b.ZeroRow == a.ZeroRow-1:
		return puzzle.Up.String()
	default:
		return "unknown"
	}
}

// Cache wraps a badger.DB directory as a board-result memoization store.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if necessary) a result cache rooted at dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // the solver CLI has its own progress logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening result cache at %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get looks up the memoized result for board, if any.
func (c *Cache) Get(board *puzzle.Board) (Result, bool, error) {
	var result Result
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(board))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})
	if err != nil {
		return Result{}, false, fmt.Errorf("reading result cache: %w", err)
	}
	return result, found, nil
}

// Put stores the solve result for board, overwriting any prior entry.
func (c *Cache) Put(board *puzzle.Board, result Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding cached result: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(board), data)
	})
	if err != nil {
		return fmt.Errorf("writing result cache: %w", err)
	}
	return nil
}

// cacheKey is the canonical packed board bytes, prefixed so the keyspace
// stays legible if the cache directory is ever shared with other key
// families.
func cacheKey(board *puzzle.Board) []byte {
	return append([]byte("solve/"), []byte(board.PackedKey())...)
}
