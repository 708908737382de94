package puzzle

// Manhattan returns the sum, over every non-blank tile, of the absolute row
// and column distance between its current position and its goal position.
// Grounded on update_prediction_function's manhattan_distance loop in
// puzzle.c: goal row/col for tile v are (v-1)/N, (v-1)%N.
func Manhattan(b *Board) int {
	total := 0
	n := b.N
	for i, row := range b.Tiles {
		for j, tile := range row {
			if tile == 0 {
				continue
			}
			goalRow := int(tile-1) / n
			goalCol := int(tile-1) % n
			total += abs(i-goalRow) + abs(j-goalCol)
		}
	}
	return total
}

// LinearConflicts counts the number of pairs of tiles that are both in their
// goal row (or goal column) but in the wrong relative order. Each conflict
// requires at least two extra moves to resolve, so the caller multiplies the
// result by 2 before adding it to the heuristic.
//
// Grounded on puzzle.c's row-conflict and column-conflict double loops: a
// pair (left at column j, right at column k>j) conflicts iff both are
// non-zero, both have goal row i, and left > right; symmetric rule for
// columns using the goal-column predicate (v-1)%N == j.
func LinearConflicts(b *Board) int {
	n := b.N
	conflicts := 0

	// Row conflicts.
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			left := b.Tiles[i][j]
			if left == 0 {
				continue
			}
			leftGoalRow := int(left-1) / n
			if leftGoalRow != i {
				continue
			}
			for k := j + 1; k < n; k++ {
				right := b.Tiles[i][k]
				if right == 0 {
					continue
				}
				rightGoalRow := int(right-1) / n
				if rightGoalRow != i {
					continue
				}
				if left > right {
					conflicts++
				}
			}
		}
	}

	// Column conflicts.
	for j := 0; j < n; j++ {
		for i := 0; i < n-1; i++ {
			above := b.Tiles[i][j]
			if above == 0 {
				continue
			}
			aboveGoalCol := int(above-1) % n
			if aboveGoalCol != j {
				continue
			}
			for k := i + 1; k < n; k++ {
				below := b.Tiles[k][j]
				if below == 0 {
					continue
				}
				belowGoalCol := int(below-1) % n
				if belowGoalCol != j {
					continue
				}
				if above > below {
					conflicts++
				}
			}
		}
	}

	return conflicts
}

// UpdateHeuristic sets s.H to Manhattan distance plus 2*linear conflicts,
// plus an additive pattern-database lookup when db is non-nil, and then
// sets s.F = s.G + s.H. It is a no-op on a nil state, mirroring
// update_prediction_function's null-check on a discarded successor.
func UpdateHeuristic(s *State, db *PatternDB) {
	if s == nil {
		return
	}
	h := Manhattan(s.Board) + 2*LinearConflicts(s.Board)
	if db != nil {
		h += db.Lookup(s.Board)
	}
	s.H = h
	s.F = s.G + s.H
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
