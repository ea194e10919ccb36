package board

import (
	"testing"

	"github.com/riffsw/riff-chess/square"
)

func TestBetweenA3E3(t *testing.T) {
	m := between(square.A3, square.E3)
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
	for _, s := range []square.Square{square.B3, square.C3, square.D3} {
		if !m.Contains(s) {
			t.Fatalf("expected %v in between(a3,e3)", s)
		}
	}
	if m.Contains(square.A3) || m.Contains(square.E3) {
		t.Fatal("between must exclude both endpoints")
	}
}

func TestBetweenC2C8(t *testing.T) {
	m := between(square.C2, square.C8)
	if m.Len() != 5 {
		t.Fatalf("len = %d, want 5", m.Len())
	}
}

func TestBetweenA1D4Diagonal(t *testing.T) {
	m := between(square.A1, square.D4)
	if m.Len() != 2 || !m.Contains(square.B2) || !m.Contains(square.C3) {
		t.Fatalf("between(a1,d4) = %v", m)
	}
}

func TestBetweenAdjacentIsEmpty(t *testing.T) {
	if m := between(square.G4, square.F5); !m.IsEmpty() {
		t.Fatalf("between(g4,f5) should be empty, got %v", m)
	}
}

func TestBetweenNonCollinearIsEmpty(t *testing.T) {
	if m := between(square.A1, square.H5); !m.IsEmpty() {
		t.Fatalf("between(a1,h5) should be empty, got %v", m)
	}
}

func TestBetweenSymmetric(t *testing.T) {
	if between(square.A3, square.E3) != between(square.E3, square.A3) {
		t.Fatal("between(a,b) should equal between(b,a)")
	}
}

func TestShieldedFromA8ByA7(t *testing.T) {
	m := shielded(square.A8, square.A7)
	if m.Len() != 6 {
		t.Fatalf("len = %d, want 6", m.Len())
	}
	if m.Contains(square.A8) || m.Contains(square.A7) {
		t.Fatal("shielded excludes both from and to")
	}
	if !m.Contains(square.A1) {
		t.Fatal("shielded(a8,a7) should reach the far edge")
	}
}

func TestShieldedBackwardsIsEmpty(t *testing.T) {
	if m := shielded(square.A7, square.A8); !m.IsEmpty() {
		t.Fatalf("shielded(a7,a8) should be empty (a8 is the board edge), got %v", m)
	}
}

func TestBlockedIsShieldedPlusTo(t *testing.T) {
	b := blocked(square.A8, square.A7)
	s := shielded(square.A8, square.A7)
	if b != s|square.A7.ToMask() {
		t.Fatal("blocked(a,b) must equal shielded(a,b) | {b}")
	}
	if b.Len() != 7 {
		t.Fatalf("len = %d, want 7", b.Len())
	}
}

func TestKingMovesCornerHasThree(t *testing.T) {
	if got := kingMoves[square.A1].Len(); got != 3 {
		t.Fatalf("king moves from a1 = %d, want 3", got)
	}
}

func TestKnightMovesCenterHasEight(t *testing.T) {
	if got := knightMoves[square.D4].Len(); got != 8 {
		t.Fatalf("knight moves from d4 = %d, want 8", got)
	}
}

func TestWhitePawnDoubleOnlyFromRank2(t *testing.T) {
	if whitePawnDouble[square.E2].IsEmpty() {
		t.Fatal("white pawn on e2 should have a double advance")
	}
	if !whitePawnDouble[square.E3].IsEmpty() {
		t.Fatal("white pawn on e3 should not have a double advance")
	}
}
