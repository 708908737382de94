package puzzle

import "math/rand"

// Scramble builds the goal board for an N by N puzzle and attempts moves
// random moves on it: a direction is picked uniformly at random each step
// and applied only if legal from the blank's current position, otherwise
// that step is simply a no-op. original_source/src/generate_start_config.c
// fully specifies this algorithm (build goal, then loop moves times picking
// rand()%4 and applying it only if legal), so that is what is reproduced
// here, reusing puzzle's own move primitives instead of duplicating them
// the way the C version's simplified_state does.
func Scramble(n, moves int, rng *rand.Rand) *Board {
	b := NewGoalBoard(n)
	for i := 0; i < moves; i++ {
		d := Directions[rng.Intn(len(Directions))]
		if b.CanMove(d) {
			b.Move(d)
		}
	}
	return b
}
