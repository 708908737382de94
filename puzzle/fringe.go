package puzzle

// Fringe is the set of candidate states awaiting expansion, ordered
// ascending by F (total cost), ties broken by insertion order (FIFO among
// equal F). Grounded on puzzle.c's priority_queue_insert/dequeue/fringe_empty:
// an ordered singly-linked list threaded through State.Next, walked from the
// head to find the first element whose F is strictly greater than the
// inserting state's F. Contains is additionally backed by a hash index
// keyed on the canonical packed board bytes, the same substitution for a
// linear scan that Closed uses; the ordered list itself is unaffected and
// still governs Insert/PopMin.
type Fringe struct {
	head  *State
	size  int
	index map[string]*State
}

// NewFringe returns an empty fringe.
func NewFringe() *Fringe {
	return &Fringe{index: make(map[string]*State)}
}

// Len reports the number of states currently in the fringe.
func (f *Fringe) Len() int { return f.size }

// Empty reports whether the fringe has no states left.
func (f *Fringe) Empty() bool { return f.head == nil }

// Insert adds s to the fringe in F order. Precondition: s is not nil (a
// discarded/duplicate successor must never reach Insert; callers check
// that via duplicate suppression first).
func (f *Fringe) Insert(s *State) {
	f.size++
	f.index[s.Board.PackedKey()] = s

	if f.head == nil || s.F < f.head.F {
		s.Next = f.head
		f.head = s
		return
	}

	cursor := f.head
	for cursor.Next != nil && cursor.Next.F <= s.F {
		cursor = cursor.Next
	}
	s.Next = cursor.Next
	cursor.Next = s
}

// PopMin removes and returns the head of the fringe (the lowest-F state).
// Precondition: the fringe is not empty.
func (f *Fringe) PopMin() *State {
	s := f.head
	f.head = s.Next
	s.Next = nil
	f.size--
	delete(f.index, s.Board.PackedKey())
	return s
}

// Contains reports whether a state with the same board as s is already in
// the fringe. Used by duplicate suppression during expansion.
func (f *Fringe) Contains(s *State) bool {
	_, ok := f.index[s.Board.PackedKey()]
	return ok
}
