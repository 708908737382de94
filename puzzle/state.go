package puzzle

// State is a node in the A* search tree: a Board plus the bookkeeping A*
// needs (g/h/f, a parent back-reference for path reconstruction, and a Next
// link used by whichever container currently holds the state).
type State struct {
	Board *Board

	// G is current_travel: the number of moves from the start board to
	// this board.
	G int
	// H is heuristic_cost: an admissible lower bound on remaining moves.
	H int
	// F is total_cost: G+H, the A* priority key.
	F int

	// Parent is a back-reference only, used to reconstruct the solution
	// path once the goal is found. It is never an ownership edge.
	Parent *State

	// Next links this state into whichever container (Fringe or a
	// reconstructed solution path) currently holds it. A state
	// participates in at most one container link at a time.
	Next *State
}

// NewStartState wraps board as the root of the search tree: G=0, H=0 (the
// caller is expected to call UpdateHeuristic before inserting it into a
// fringe), no parent.
func NewStartState(board *Board) *State {
	return &State{Board: board}
}

// Copy produces a successor state: a deep copy of s's board with g
// incremented by one, parented on s, with no container link. This mirrors
// copy_state in puzzle.c (successor.current_travel = predecessor.current_travel+1,
// successor.predecessor = predecessor, successor.next = NULL).
func (s *State) Copy() *State {
	return &State{
		Board:  s.Board.Copy(),
		G:      s.G + 1,
		Parent: s,
	}
}

// Equal reports whether a and b represent the same board configuration.
// G/H/F and the container/parent links are not part of state identity.
func (a *State) Equal(b *State) bool {
	return a.Board.Equal(b.Board)
}

// Successors generates up to four successor states, one per Direction, in
// the fixed order Directions = {Left, Right, Down, Up}. A slot is nil when
// the corresponding move would push the blank off the board, preserving the
// invariant that slot i encodes the move that produced (or would have
// produced) successors[i].
func (s *State) Successors() [4]*State {
	var out [4]*State
	for i, d := range Directions {
		if !s.Board.CanMove(d) {
			continue
		}
		succ := s.Copy()
		succ.Board.Move(d)
		out[i] = succ
	}
	return out
}
