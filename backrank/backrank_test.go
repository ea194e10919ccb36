package backrank

import (
	"testing"

	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

func TestStandardIsRNBQKBNR(t *testing.T) {
	br, err := Lookup(StandardID)
	if err != nil {
		t.Fatalf("Lookup(518) failed: %v", err)
	}
	want := [8]material.Piece{
		material.Rook, material.Knight, material.Bishop, material.Queen,
		material.King, material.Bishop, material.Knight, material.Rook,
	}
	for f := square.FileA; f <= square.FileH; f++ {
		if got := br.Piece(f); got != want[f] {
			t.Fatalf("file %v: got %v, want %v", f, got, want[f])
		}
	}
	if br.KingFile() != square.FileE {
		t.Fatalf("king file = %v, want e", br.KingFile())
	}
	if br.QueenFile() != square.FileD {
		t.Fatalf("queen file = %v, want d", br.QueenFile())
	}
	if br.RookFiles() != [2]square.File{square.FileA, square.FileH} {
		t.Fatalf("rook files = %v, want [a h]", br.RookFiles())
	}
}

func TestAllIDsRoundTrip(t *testing.T) {
	for n := 0; n < NumConfigurations; n++ {
		br, err := Lookup(ID(n))
		if err != nil {
			t.Fatalf("Lookup(%d) failed: %v", n, err)
		}
		if br.ID() != ID(n) {
			t.Fatalf("backRanks[%d].ID() = %d", n, br.ID())
		}
	}
}

func TestConfigurationsPairwiseDistinct(t *testing.T) {
	seen := make(map[[8]material.Piece]ID)
	for n := 0; n < NumConfigurations; n++ {
		br, _ := Lookup(ID(n))
		var arrangement [8]material.Piece
		for f := square.FileA; f <= square.FileH; f++ {
			arrangement[f] = br.Piece(f)
		}
		if prior, ok := seen[arrangement]; ok {
			t.Fatalf("ids %d and %d produced the same arrangement %v", prior, n, arrangement)
		}
		seen[arrangement] = ID(n)
	}
}

func TestEveryConfigurationIsValid(t *testing.T) {
	for n := 0; n < NumConfigurations; n++ {
		br, _ := Lookup(ID(n))
		rooks := br.RookFiles()
		if !(rooks[0] < br.KingFile() && br.KingFile() < rooks[1]) {
			t.Fatalf("id %d: king %v not between rooks %v", n, br.KingFile(), rooks)
		}
		bishops := br.BishopFiles()
		if bishops[0]%2 == bishops[1]%2 {
			t.Fatalf("id %d: bishops %v share a color", n, bishops)
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	if _, err := Lookup(-1); err != ErrOutOfRange {
		t.Fatalf("Lookup(-1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := Lookup(NumConfigurations); err != ErrOutOfRange {
		t.Fatalf("Lookup(960) error = %v, want ErrOutOfRange", err)
	}
}

func TestFromPiecesRejectsInvalidArrangements(t *testing.T) {
	wrongCounts := [8]material.Piece{
		material.Pawn, material.Knight, material.Bishop, material.Queen,
		material.King, material.Bishop, material.Knight, material.Rook,
	}
	if _, err := FromPieces(wrongCounts); err != ErrArgError {
		t.Fatalf("expected ErrArgError, got %v", err)
	}

	sameColorBishops := [8]material.Piece{
		material.Rook, material.Bishop, material.Queen, material.Bishop,
		material.King, material.Knight, material.Knight, material.Rook,
	}
	if _, err := FromPieces(sameColorBishops); err != ErrMisplacedBishop {
		t.Fatalf("expected ErrMisplacedBishop, got %v", err)
	}

	kingOutsideRooks := [8]material.Piece{
		material.King, material.Knight, material.Bishop, material.Queen,
		material.Rook, material.Bishop, material.Knight, material.Rook,
	}
	if _, err := FromPieces(kingOutsideRooks); err != ErrMisplacedKing {
		t.Fatalf("expected ErrMisplacedKing, got %v", err)
	}
}

func TestFromPiecesFindsStandard(t *testing.T) {
	arrangement := [8]material.Piece{
		material.Rook, material.Knight, material.Bishop, material.Queen,
		material.King, material.Bishop, material.Knight, material.Rook,
	}
	br, err := FromPieces(arrangement)
	if err != nil {
		t.Fatalf("FromPieces failed: %v", err)
	}
	if br.ID() != StandardID {
		t.Fatalf("got id %d, want %d", br.ID(), StandardID)
	}
}
