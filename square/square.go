// Package square implements the geometric primitives of a chess board:
// squares, files, ranks, offsets, directions and bitboard masks.
package square

import (
	"math/bits"

	"github.com/riffsw/riff-chess/material"
)

// Square identifies one of the 64 squares of a chess board. Index 0 is a8
// and index 63 is h1; files run a..h left to right within a rank and ranks
// run 8 down to 1.
type Square uint8

const NumSquares = 64

const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// File is a column of the board, FileA..FileH.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a row of the board, Rank1..Rank8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

var fileNames = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
var rankNames = [8]byte{'1', '2', '3', '4', '5', '6', '7', '8'}

func (f File) String() string { return string(fileNames[f]) }
func (r Rank) String() string { return string(rankNames[r]) }

// IsBackRank reports whether r is the home rank pieces of color c start
// on: rank 1 for white, rank 8 for black. A pawn promotes when it
// reaches the opposing color's back rank.
func (r Rank) IsBackRank(c material.Color) bool {
	if c == material.White {
		return r == Rank1
	}
	return r == Rank8
}

// NewSquare builds the square at the intersection of f and r.
func NewSquare(f File, r Rank) Square {
	return Square(int(Rank8-r)*8 + int(f))
}

// File returns the file the square lies on.
func (s Square) File() File { return File(s % 8) }

// Rank returns the rank the square lies on.
func (s Square) Rank() Rank { return Rank(7 - s/8) }

func (s Square) String() string {
	return s.File().String() + s.Rank().String()
}

// ToMask returns the single-bit Mask containing s.
func (s Square) ToMask() Mask { return Mask(1) << s }

// Offset is a displacement in files (X) and ranks (Y); Y is positive
// toward rank 8.
type Offset struct {
	X, Y int
}

// Add returns the square reached by applying off to s, and whether the
// result stays on the board.
func (s Square) Add(off Offset) (Square, bool) {
	file := int(s.File()) + off.X
	rank := int(s.Rank()) + off.Y
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return NewSquare(File(file), Rank(rank)), true
}

// Sub returns the offset from other to s.
func (s Square) Sub(other Square) Offset {
	return Offset{
		X: int(s.File()) - int(other.File()),
		Y: int(s.Rank()) - int(other.Rank()),
	}
}

// Unit reduces the offset to a single-step direction if it describes a
// straight line (horizontal, vertical or diagonal); the second return
// value is false otherwise.
func (o Offset) Unit() (Offset, bool) {
	switch {
	case o.X == 0 && o.Y == 0:
		return Offset{}, false
	case o.X == 0:
		return Offset{0, sign(o.Y)}, true
	case o.Y == 0:
		return Offset{sign(o.X), 0}, true
	case abs(o.X) == abs(o.Y):
		return Offset{sign(o.X), sign(o.Y)}, true
	default:
		return Offset{}, false
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the eight compass directions a line piece may move
// along.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Offset returns the unit displacement for the direction.
func (d Direction) Offset() Offset {
	switch d {
	case Up:
		return Offset{0, 1}
	case Down:
		return Offset{0, -1}
	case Left:
		return Offset{-1, 0}
	case Right:
		return Offset{1, 0}
	case UpLeft:
		return Offset{-1, 1}
	case UpRight:
		return Offset{1, 1}
	case DownLeft:
		return Offset{-1, -1}
	case DownRight:
		return Offset{1, -1}
	default:
		panic("square: invalid direction")
	}
}

// Horizontals lists the four file/rank directions.
func Horizontals() []Direction { return []Direction{Up, Down, Left, Right} }

// Diagonals lists the four diagonal directions.
func Diagonals() []Direction { return []Direction{UpLeft, UpRight, DownLeft, DownRight} }

// AllDirections lists all eight directions.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
}

// Mask is a 64-bit set of squares; bit i corresponds to Square(i).
type Mask uint64

// Empty is the mask with no members.
const Empty Mask = 0

// All is the mask with every square as a member.
const All Mask = 1<<64 - 1

func (m Mask) Contains(s Square) bool { return m&s.ToMask() != 0 }
func (m Mask) IsEmpty() bool          { return m == 0 }
func (m Mask) Len() int               { return countBits(uint64(m)) }

func (m *Mask) Set(s Square)   { *m |= s.ToMask() }
func (m *Mask) Reset(s Square) { *m &^= s.ToMask() }

// Next pops and returns the lowest-indexed member square, along with
// whether one existed.
func (m *Mask) Next() (Square, bool) {
	idx := popLSB((*uint64)(m))
	if idx < 0 {
		return 0, false
	}
	return Square(idx), true
}

// NextFromEnd pops and returns the highest-indexed member square, along
// with whether one existed.
func (m *Mask) NextFromEnd() (Square, bool) {
	if *m == 0 {
		return 0, false
	}
	idx := 63 - bits.LeadingZeros64(uint64(*m))
	m.Reset(Square(idx))
	return Square(idx), true
}

// Squares materialises the mask's members in ascending square order.
func (m Mask) Squares() []Square {
	out := make([]Square, 0, m.Len())
	work := m
	for {
		s, ok := work.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// FromSquares builds a mask from a list of squares.
func FromSquares(squares ...Square) Mask {
	var m Mask
	for _, s := range squares {
		m.Set(s)
	}
	return m
}
