package jungle

import (
	"testing"

	"github.com/matryer/is"
)

func TestCaptureByRank(t *testing.T) {
	for atk := Rat; atk <= Elephant; atk++ {
		for vic := Rat; vic <= Elephant; vic++ {
			b := setup(t, Red,
				placement{4, 0, MakePiece(Red, atk)},
				placement{5, 0, MakePiece(Black, vic)},
			)
			want := atk >= vic
			switch {
			case atk == Rat && vic == Elephant:
				want = true
			case atk == Elephant && vic == Rat:
				want = false
			}
			if got := b.CanCapture(4, 0, 5, 0); got != want {
				t.Fatalf("%v takes %v: got=%v want=%v", atk, vic, got, want)
			}
		}
	}
}

func TestCaptureSameColor(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{4, 0, RedElephant}, placement{5, 0, RedCat})
	is.True(!b.CanCapture(4, 0, 5, 0))
	is.True(!b.AttemptMove(4, 0, 5, 0))
	is.Equal(b.PieceAt(5, 0), RedCat)
}

func TestCaptureNeedsTwoPieces(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{4, 0, RedElephant})
	is.True(!b.CanCapture(4, 0, 5, 0))
	is.True(!b.CanCapture(5, 0, 4, 0))
	is.True(!b.CanCapture(4, 0, 4, 7))
}

func TestTrapsAreUniversal(t *testing.T) {
	cases := []struct {
		name   string
		trapR  int
		trapC  int
		atkR   int
		atkC   int
		victim Piece
		atk    Piece
	}{
		{"black elephant in red trap", 1, 3, 1, 2, BlackElephant, RedRat},
		{"black elephant in black trap", 7, 3, 7, 2, BlackElephant, RedRat},
		{"red lion in red trap", 0, 2, 0, 1, RedLion, BlackCat},
		{"red lion in black trap", 8, 4, 8, 5, RedLion, BlackCat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			b := setup(t, Red,
				placement{tc.trapR, tc.trapC, tc.victim},
				placement{tc.atkR, tc.atkC, tc.atk},
			)
			is.True(b.CanCapture(tc.atkR, tc.atkC, tc.trapR, tc.trapC))
			is.True(b.AttemptMove(tc.atkR, tc.atkC, tc.trapR, tc.trapC))
			is.Equal(b.PieceAt(tc.trapR, tc.trapC), tc.atk)
			is.True(b.IsEmpty(tc.atkR, tc.atkC))
		})
	}
}

func TestTrapDoesNotProtectAttacker(t *testing.T) {
	is := is.New(t)
	// a cat standing in a trap is still outranked when it attacks
	b := setup(t, Red, placement{1, 3, RedCat}, placement{1, 2, BlackDog})
	is.True(!b.CanCapture(1, 3, 1, 2))
	is.True(b.CanCapture(1, 2, 1, 3))
}

func TestRatInWaterCannotTakeElephant(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{3, 1, RedRat}, placement{3, 0, BlackElephant})
	is.True(b.CanMove(3, 1, 3, 0))
	is.True(!b.CanCapture(3, 1, 3, 0))
	before := b.Hash()
	is.True(!b.AttemptMove(3, 1, 3, 0))
	is.Equal(b.Hash(), before)

	// the same rat on land can
	land := setup(t, Red, placement{2, 1, RedRat}, placement{2, 2, BlackElephant})
	is.True(land.CanCapture(2, 1, 2, 2))
	is.True(land.AttemptMove(2, 1, 2, 2))
	is.Equal(land.PieceAt(2, 2), RedRat)
}

func TestRatInWaterTakesSmallerPieces(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{3, 1, RedRat}, placement{2, 1, BlackRat})
	is.True(b.CanCapture(3, 1, 2, 1))
}

func TestSwimmersFightEachOther(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{3, 1, RedRat}, placement{4, 1, BlackRat})
	is.True(b.CanCapture(3, 1, 4, 1))
	is.True(b.AttemptMove(3, 1, 4, 1))
	is.Equal(b.PieceAt(4, 1), RedRat)
	is.Equal(b.CountBlack(), 0)
}

func TestOnlyRatReachesWater(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{2, 1, RedElephant}, placement{3, 1, BlackRat})
	is.True(!b.CanCapture(2, 1, 3, 1))

	rat := setup(t, Red, placement{2, 1, RedRat}, placement{3, 1, BlackRat})
	is.True(rat.CanCapture(2, 1, 3, 1))
	is.True(rat.AttemptMove(2, 1, 3, 1))
}

func TestJumpCapture(t *testing.T) {
	is := is.New(t)
	b := setup(t, Red, placement{2, 1, RedLion}, placement{6, 1, BlackDog})
	is.True(b.CanCapture(2, 1, 6, 1))
	is.True(b.AttemptMove(2, 1, 6, 1))
	is.Equal(b.PieceAt(6, 1), RedLion)
	is.True(b.IsEmpty(2, 1))

	blocked := setup(t, Red,
		placement{2, 1, RedTiger},
		placement{6, 1, BlackDog},
		placement{4, 1, RedRat},
	)
	is.True(!blocked.CanCapture(2, 1, 6, 1))
	is.True(!blocked.AttemptMove(2, 1, 6, 1))

	outranked := setup(t, Red, placement{2, 1, RedTiger}, placement{6, 1, BlackElephant})
	is.True(!outranked.AttemptMove(2, 1, 6, 1))
}

// Disqualification and the trap override both zero out a rank, so a
// disqualified attacker still takes a trapped victim. Kept on purpose.
func TestDisqualifiedAttackerBeatsTrappedVictim(t *testing.T) {
	is := is.New(t)

	// elephant vs rat is normally refused
	b := setup(t, Red, placement{1, 2, RedElephant}, placement{1, 1, BlackRat})
	is.True(!b.CanCapture(1, 2, 1, 1))

	trapped := setup(t, Red, placement{1, 2, RedElephant}, placement{1, 3, BlackRat})
	is.True(trapped.CanCapture(1, 2, 1, 3))
	is.True(trapped.AttemptMove(1, 2, 1, 3))
	is.Equal(trapped.PieceAt(1, 3), RedElephant)

	// a non-rat attacking out of water is disqualified too, and still wins
	swimmer := setup(t, Red, placement{4, 1, BlackDog}, placement{1, 3, RedRat})
	is.True(swimmer.CanCapture(4, 1, 1, 3))
}

func TestAttemptMoveRejectionLeavesBoardUntouched(t *testing.T) {
	b := NewBoard()
	snapshot := b.Copy()
	before := b.Hash()
	illegal := [][4]int{
		{2, 0, 2, 0},   // same square
		{4, 3, 4, 4},   // empty origin
		{2, 0, 4, 0},   // two steps
		{2, 2, 3, 2},   // leopard into water
		{0, 0, 1, 1},   // diagonal
		{1, 5, 0, 6},   // diagonal onto own tiger
		{0, 0, 0, 6},   // lion sliding along the back rank
		{-1, 0, 0, 0},  // off board
		{8, 0, 9, 0},   // off board
		{0, 0, 100, 0}, // off board
	}
	for _, mv := range illegal {
		if b.AttemptMove(mv[0], mv[1], mv[2], mv[3]) {
			t.Fatalf("move %v accepted", mv)
		}
		if b.Hash() != before || !b.Equals(snapshot) {
			t.Fatalf("rejected move %v changed the board", mv)
		}
	}

	// movement onto an own piece passes CanMove but not the capture gate
	is := is.New(t)
	is.True(b.AttemptMove(0, 0, 1, 0))
	is.True(b.CanMove(1, 0, 1, 1))
	after := b.Hash()
	is.True(!b.AttemptMove(1, 0, 1, 1))
	is.Equal(b.Hash(), after)
	is.Equal(b.PieceAt(1, 1), RedDog)
	is.Equal(b.PieceAt(1, 0), RedLion)
}
