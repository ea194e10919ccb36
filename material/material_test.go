package material

import "testing"

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Fatal("White.Opposite() should be Black")
	}
	if Black.Opposite() != White {
		t.Fatal("Black.Opposite() should be White")
	}
}

func TestPromotionPiece(t *testing.T) {
	tests := []struct {
		promo Promotion
		want  Piece
	}{
		{PromoteQueen, Queen},
		{PromoteRook, Rook},
		{PromoteBishop, Bishop},
		{PromoteKnight, Knight},
	}
	for _, tc := range tests {
		if got := tc.promo.Piece(); got != tc.want {
			t.Fatalf("%v.Piece() = %v, want %v", tc.promo, got, tc.want)
		}
	}
}

func TestPairIndexing(t *testing.T) {
	p := NewPair(1, 2)
	if p.Get(White) != 1 || p.White() != 1 {
		t.Fatal("white slot mismatch")
	}
	if p.Get(Black) != 2 || p.Black() != 2 {
		t.Fatal("black slot mismatch")
	}
	p.Set(White, 9)
	if p.Get(White) != 9 {
		t.Fatal("Set(White) did not take effect")
	}
}
