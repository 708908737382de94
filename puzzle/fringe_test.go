package puzzle

import "testing"

func stateWithF(board *Board, f int) *State {
	s := NewStartState(board)
	s.F = f
	return s
}

func TestFringeOrdersByF(t *testing.T) {
	fr := NewFringe()
	b := NewGoalBoard(2)

	fr.Insert(stateWithF(b.Copy(), 5))
	fr.Insert(stateWithF(b.Copy(), 2))
	fr.Insert(stateWithF(b.Copy(), 8))

	first := fr.PopMin()
	if first.F != 2 {
		t.Fatalf("PopMin F = %d, want 2", first.F)
	}
	second := fr.PopMin()
	if second.F != 5 {
		t.Fatalf("PopMin F = %d, want 5", second.F)
	}
	third := fr.PopMin()
	if third.F != 8 {
		t.Fatalf("PopMin F = %d, want 8", third.F)
	}
}

func TestFringeFIFOTieBreak(t *testing.T) {
	fr := NewFringe()
	b := NewGoalBoard(2)

	first := stateWithF(b.Copy(), 3)
	second := stateWithF(b.Copy(), 3)
	fr.Insert(first)
	fr.Insert(second)

	if got := fr.PopMin(); got != first {
		t.Fatal("expected the first-inserted state to pop first among equal F values")
	}
	if got := fr.PopMin(); got != second {
		t.Fatal("expected the second-inserted state to pop second")
	}
}

func TestFringeLenAndEmpty(t *testing.T) {
	fr := NewFringe()
	if !fr.Empty() || fr.Len() != 0 {
		t.Fatal("a new fringe should be empty with Len 0")
	}
	fr.Insert(stateWithF(NewGoalBoard(2), 0))
	if fr.Empty() || fr.Len() != 1 {
		t.Fatal("fringe should report one element after one insert")
	}
	fr.PopMin()
	if !fr.Empty() || fr.Len() != 0 {
		t.Fatal("fringe should be empty again after popping its only element")
	}
}

func TestFringeContains(t *testing.T) {
	fr := NewFringe()
	goal := NewGoalBoard(3)
	s := stateWithF(goal, 0)
	fr.Insert(s)

	probe := NewStartState(goal.Copy())
	if !fr.Contains(probe) {
		t.Fatal("Contains should match on board equality, not pointer identity")
	}

	fr.PopMin()
	if fr.Contains(probe) {
		t.Fatal("Contains should report false once the matching state is popped")
	}
}
