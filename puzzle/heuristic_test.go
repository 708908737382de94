package puzzle

import "testing"

func TestManhattanOfGoalIsZero(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		if got := Manhattan(NewGoalBoard(n)); got != 0 {
			t.Errorf("Manhattan(goal) for N=%d = %d, want 0", n, got)
		}
	}
}

func TestManhattanSingleMove(t *testing.T) {
	b := NewGoalBoard(3)
	b.Move(Left) // tile 8 slides right, one step from its goal
	if got := Manhattan(b); got != 1 {
		t.Errorf("Manhattan after one move = %d, want 1", got)
	}
}

func TestLinearConflictsOfGoalIsZero(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		if got := LinearConflicts(NewGoalBoard(n)); got != 0 {
			t.Errorf("LinearConflicts(goal) for N=%d = %d, want 0", n, got)
		}
	}
}

func TestLinearConflictsDetectsRowSwap(t *testing.T) {
	// Swap tiles 1 and 2 within the goal row: both sit in their goal row
	// but in the wrong relative order, which is exactly one conflict.
	b, err := NewBoardFromRowMajor(3, []int16{2, 1, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		t.Fatalf("building board: %v", err)
	}
	if got := LinearConflicts(b); got != 1 {
		t.Errorf("LinearConflicts = %d, want 1", got)
	}
}

func TestUpdateHeuristicNilIsNoOp(t *testing.T) {
	UpdateHeuristic(nil, nil) // must not panic
}

func TestUpdateHeuristicSetsFFromGAndH(t *testing.T) {
	start := NewStartState(NewGoalBoard(3))
	start.G = 5
	UpdateHeuristic(start, nil)
	if start.H != 0 {
		t.Errorf("H on the goal board = %d, want 0", start.H)
	}
	if start.F != 5 {
		t.Errorf("F = %d, want G+H = 5", start.F)
	}
}

func TestUpdateHeuristicIncludesPatternDB(t *testing.T) {
	b := NewGoalBoard(3)
	entry := b.Pattern(FirstHalf)
	entry.Cost = 7
	db := NewPatternDB(3)
	db.Insert(entry)

	s := NewStartState(b)
	UpdateHeuristic(s, db)
	if s.H < 7 {
		t.Errorf("H = %d, want at least the pattern database's recorded cost of 7", s.H)
	}
}
