package puzzle

import (
	"fmt"
	"testing"
)

func TestNewGoalBoard(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		n := n
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			b := NewGoalBoard(n)
			if err := b.Validate(); err != nil {
				t.Errorf("goal board for N=%d failed validation: %v", n, err)
			}
			if b.ZeroRow != n-1 || b.ZeroCol != n-1 {
				t.Errorf("goal board blank at (%d,%d), want (%d,%d)", b.ZeroRow, b.ZeroCol, n-1, n-1)
			}
			want := int16(1)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i == n-1 && j == n-1 {
						continue
					}
					if b.Tiles[i][j] != want {
						t.Errorf("tile at (%d,%d) = %d, want %d", i, j, b.Tiles[i][j], want)
					}
					want++
				}
			}
		})
	}
}

func TestNewBoardFromRowMajor(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := NewBoardFromRowMajor(3, []int16{1, 2, 3, 4, 5, 6, 7, 8, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ZeroRow != 2 || b.ZeroCol != 2 {
			t.Errorf("blank at (%d,%d), want (2,2)", b.ZeroRow, b.ZeroCol)
		}
	})

	t.Run("wrong tile count", func(t *testing.T) {
		_, err := NewBoardFromRowMajor(3, []int16{1, 2, 3})
		if err == nil {
			t.Fatal("expected an error for a mismatched tile count")
		}
	})

	t.Run("no blank", func(t *testing.T) {
		_, err := NewBoardFromRowMajor(2, []int16{1, 2, 3, 4})
		if err == nil {
			t.Fatal("expected an error when no tile is 0")
		}
	})
}

func TestBoardValidate(t *testing.T) {
	t.Run("duplicate tile", func(t *testing.T) {
		b, _ := NewBoardFromRowMajor(2, []int16{1, 1, 0, 2})
		if err := b.Validate(); err == nil {
			t.Fatal("expected an error for a duplicate tile")
		}
	})

	t.Run("out of range tile", func(t *testing.T) {
		b, _ := NewBoardFromRowMajor(2, []int16{1, 9, 0, 2})
		if err := b.Validate(); err == nil {
			t.Fatal("expected an error for an out-of-range tile")
		}
	})

	t.Run("zero position invariant broken", func(t *testing.T) {
		b := NewGoalBoard(3)
		b.ZeroRow, b.ZeroCol = 0, 0
		if err := b.Validate(); err == nil {
			t.Fatal("expected an error when ZeroRow/ZeroCol disagree with the tile grid")
		}
	})
}

func TestCanMoveAndMove(t *testing.T) {
	b := NewGoalBoard(3) // blank at (2,2)

	if b.CanMove(Right) || b.CanMove(Down) {
		t.Fatal("blank in the bottom-right corner should not be able to move right or down")
	}
	if !b.CanMove(Left) || !b.CanMove(Up) {
		t.Fatal("blank in the bottom-right corner should be able to move left or up")
	}

	moved := b.MovedTile(Left)
	b.Move(Left)
	if b.ZeroRow != 2 || b.ZeroCol != 1 {
		t.Fatalf("after moving left, blank at (%d,%d), want (2,1)", b.ZeroRow, b.ZeroCol)
	}
	if b.Tiles[2][2] != moved {
		t.Fatalf("tile %d did not slide into the vacated slot", moved)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewGoalBoard(3)
	cp := b.Copy()
	cp.Move(Left)

	if b.Equal(cp) {
		t.Fatal("mutating a copy should not affect the original board")
	}
	if !b.Equal(NewGoalBoard(3)) {
		t.Fatal("original board should be unaffected by mutating its copy")
	}
}

func TestBoardEqualAndPackedKey(t *testing.T) {
	a := NewGoalBoard(3)
	b := NewGoalBoard(3)
	if !a.Equal(b) {
		t.Fatal("two freshly built goal boards should be equal")
	}
	if a.PackedKey() != b.PackedKey() {
		t.Fatal("equal boards should share a packed key")
	}

	b.Move(Left)
	if a.Equal(b) {
		t.Fatal("boards should differ after one of them moves")
	}
	if a.PackedKey() == b.PackedKey() {
		t.Fatal("distinct boards should not share a packed key")
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		Left:  Right,
		Right: Left,
		Down:  Up,
		Up:    Down,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, want)
		}
	}
}
