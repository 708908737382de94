package puzzle

// Closed is the append-only set of previously expanded states, grown
// monotonically for the lifetime of a search. Grounded on puzzle.c's
// closed array (merge_to_closed/check_repeating_closed), but backed by a
// hash index keyed on the canonical packed board bytes instead of a linear
// scan, so duplicate detection is O(1) per successor instead of O(n).
// Append order is still tracked in States for callers that want it
// (path/debug dumps); duplicate detection itself goes through the index.
type Closed struct {
	states []*State
	index  map[string]*State
}

// NewClosed returns an empty closed set.
func NewClosed() *Closed {
	return &Closed{index: make(map[string]*State)}
}

// Append adds s to closed. Precondition: s is not already present (callers
// check Contains first during duplicate suppression).
func (c *Closed) Append(s *State) {
	c.states = append(c.states, s)
	c.index[s.Board.PackedKey()] = s
}

// Contains reports whether a state with the same board as s has already
// been expanded.
func (c *Closed) Contains(s *State) bool {
	_, ok := c.index[s.Board.PackedKey()]
	return ok
}

// Len reports how many states have been expanded so far.
func (c *Closed) Len() int { return len(c.states) }

// States returns the states expanded so far, in the order they were
// appended. The returned slice must not be mutated.
func (c *Closed) States() []*State { return c.states }
