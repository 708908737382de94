package builder

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jackr276/npuzzle-astar/puzzle"
)

func TestRandomReverseWalkProducesValidPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entry := randomReverseWalk(3, 20, puzzle.FirstHalf, rng)

	if entry.Type != puzzle.FirstHalf {
		t.Errorf("Type = %v, want FirstHalf", entry.Type)
	}
	if len(entry.Positions) != puzzle.PatternLength(3, puzzle.FirstHalf) {
		t.Errorf("len(Positions) = %d, want %d", len(entry.Positions), puzzle.PatternLength(3, puzzle.FirstHalf))
	}
	if entry.Cost < 0 {
		t.Errorf("Cost = %d, want >= 0", entry.Cost)
	}
}

func TestRandomReverseWalkZeroMovesIsGoalPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entry := randomReverseWalk(3, 0, puzzle.LastHalf, rng)
	goalEntry := puzzle.NewGoalBoard(3).Pattern(puzzle.LastHalf)

	if entry.Cost != 0 {
		t.Errorf("Cost of a zero-move walk = %d, want 0", entry.Cost)
	}
	for i := range entry.Positions {
		if entry.Positions[i] != goalEntry.Positions[i] {
			t.Fatal("a zero-move walk should leave the board at the goal pattern")
		}
	}
}

func TestTileInSubset(t *testing.T) {
	if tileInSubset(3, puzzle.FirstHalf, 0) {
		t.Error("the blank should not belong to either subset")
	}
	if !tileInSubset(3, puzzle.FirstHalf, 1) {
		t.Error("tile 1 should belong to FirstHalf for N=3")
	}
	if tileInSubset(3, puzzle.FirstHalf, 8) {
		t.Error("tile 8 should not belong to FirstHalf for N=3")
	}
	if !tileInSubset(3, puzzle.LastHalf, 8) {
		t.Error("tile 8 should belong to LastHalf for N=3")
	}
}

func TestSubsetBuilderInsertKeepsMinCost(t *testing.T) {
	sb := &subsetBuilder{}
	board := puzzle.NewGoalBoard(3)
	entry := board.Pattern(puzzle.FirstHalf)

	entry.Cost = 9
	sb.flush([]puzzle.PatternEntry{entry})
	entry.Cost = 4
	sb.flush([]puzzle.PatternEntry{entry})

	if len(sb.entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(sb.entries))
	}
	if sb.entries[0].Cost != 4 {
		t.Errorf("Cost = %d, want the minimum of 9 and 4", sb.entries[0].Cost)
	}
}

func TestBuildProducesAUsableDatabase(t *testing.T) {
	cfg := Config{
		N:              3,
		Workers:        2,
		WalksPerWorker: 5,
		MaxMoves:       10,
		Rand:           rand.New(rand.NewSource(99)),
	}

	db, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if db.Len() == 0 {
		t.Fatal("expected at least one distinct pattern entry from a non-trivial build")
	}
	if got := db.Lookup(puzzle.NewGoalBoard(3)); got != 0 {
		t.Errorf("Lookup(goal) = %d, want 0", got)
	}
}

func TestBuildRejectsInvalidN(t *testing.T) {
	_, err := Build(context.Background(), Config{N: 0})
	if err == nil {
		t.Fatal("expected an error for N=0")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(4)
	if cfg.N != 4 || cfg.Workers <= 0 || cfg.WalksPerWorker <= 0 || cfg.MaxMoves <= 0 {
		t.Errorf("DefaultConfig(4) produced a non-positive field: %+v", cfg)
	}
}
