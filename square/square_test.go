package square

import "testing"

func TestNewSquareRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		file File
		rank Rank
	}{
		{"a8", A8, FileA, Rank8},
		{"h1", H1, FileH, Rank1},
		{"e4", E4, FileE, Rank4},
		{"b1", B1, FileB, Rank1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewSquare(tc.file, tc.rank); got != tc.sq {
				t.Fatalf("NewSquare(%v,%v) = %v, want %v", tc.file, tc.rank, got, tc.sq)
			}
			if tc.sq.File() != tc.file {
				t.Fatalf("File() = %v, want %v", tc.sq.File(), tc.file)
			}
			if tc.sq.Rank() != tc.rank {
				t.Fatalf("Rank() = %v, want %v", tc.sq.Rank(), tc.rank)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	if E4.String() != "e4" {
		t.Fatalf("E4.String() = %q, want e4", E4.String())
	}
	if A8.String() != "a8" {
		t.Fatalf("A8.String() = %q, want a8", A8.String())
	}
}

func TestMaskIterationBothDirections(t *testing.T) {
	m := FromSquares(A1, D4, H8)
	var forward []Square
	work := m
	for {
		s, ok := work.Next()
		if !ok {
			break
		}
		forward = append(forward, s)
	}
	if len(forward) != 3 {
		t.Fatalf("len(forward) = %d, want 3", len(forward))
	}
	if got, want := forward[0], H8; got != want {
		t.Fatalf("first forward square = %v, want %v (lowest index)", got, want)
	}
	if got, want := forward[2], A1; got != want {
		t.Fatalf("last forward square = %v, want %v (highest index)", got, want)
	}

	var backward []Square
	work = m
	for {
		s, ok := work.NextFromEnd()
		if !ok {
			break
		}
		backward = append(backward, s)
	}
	if got, want := backward[0], A1; got != want {
		t.Fatalf("first backward square = %v, want %v", got, want)
	}
	if got, want := backward[2], H8; got != want {
		t.Fatalf("last backward square = %v, want %v", got, want)
	}
}

func TestMaskMembership(t *testing.T) {
	m := FromSquares(E4, E5)
	if !m.Contains(E4) || !m.Contains(E5) {
		t.Fatal("expected mask to contain both squares")
	}
	if m.Contains(E6) {
		t.Fatal("mask should not contain e6")
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestFileAndRankMasks(t *testing.T) {
	if FileA.ToMask().Len() != 8 {
		t.Fatal("file mask should have 8 members")
	}
	if !FileA.ToMask().Contains(A1) || !FileA.ToMask().Contains(A8) {
		t.Fatal("file a mask should contain a1 and a8")
	}
	if Rank1.ToMask().Len() != 8 {
		t.Fatal("rank mask should have 8 members")
	}
	if !Rank1.ToMask().Contains(A1) || !Rank1.ToMask().Contains(H1) {
		t.Fatal("rank 1 mask should contain a1 and h1")
	}
}
