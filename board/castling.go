package board

import (
	"github.com/riffsw/riff-chess/backrank"
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// CastlingRights tracks whether one side may still castle short (oo,
// toward file g) or long (ooo, toward file c).
type CastlingRights struct {
	color material.Color
	oo    bool
	ooo   bool
}

func newCastlingRights(c material.Color) CastlingRights {
	return CastlingRights{color: c, oo: true, ooo: true}
}

func (c CastlingRights) OO() bool  { return c.oo }
func (c CastlingRights) OOO() bool { return c.ooo }

func (c CastlingRights) rank() square.Rank {
	if c.color == material.White {
		return square.Rank1
	}
	return square.Rank8
}

func (c *CastlingRights) clear()    { c.oo = false; c.ooo = false }
func (c *CastlingRights) clearOO()  { c.oo = false }
func (c *CastlingRights) clearOOO() { c.ooo = false }

// castlingGeometry resolves the Chess960-aware squares and lanes for one
// side's castling rights, given the back rank that seeded the position.
type castlingGeometry struct {
	rights *CastlingRights
	br     *backrank.BackRank
}

func (g castlingGeometry) kingSrc() square.Square {
	return square.NewSquare(g.br.KingFile(), g.rights.rank())
}
func (g castlingGeometry) ooRookSrc() square.Square {
	return square.NewSquare(g.br.RookFiles()[1], g.rights.rank())
}
func (g castlingGeometry) oooRookSrc() square.Square {
	return square.NewSquare(g.br.RookFiles()[0], g.rights.rank())
}
func (g castlingGeometry) ooKingDest() square.Square {
	return square.NewSquare(square.FileG, g.rights.rank())
}
func (g castlingGeometry) ooRookDest() square.Square {
	return square.NewSquare(square.FileF, g.rights.rank())
}
func (g castlingGeometry) oooKingDest() square.Square {
	return square.NewSquare(square.FileC, g.rights.rank())
}
func (g castlingGeometry) oooRookDest() square.Square {
	return square.NewSquare(square.FileD, g.rights.rank())
}

func (g castlingGeometry) ooBlockingLane() square.Mask {
	return between(g.kingSrc(), g.ooRookSrc())
}
func (g castlingGeometry) ooAttackingLane() square.Mask {
	dest := g.ooKingDest()
	return between(g.kingSrc(), dest) | dest.ToMask()
}
func (g castlingGeometry) oooBlockingLane() square.Mask {
	return between(g.oooRookSrc(), g.kingSrc())
}
func (g castlingGeometry) oooAttackingLane() square.Mask {
	dest := g.oooKingDest()
	return between(dest, g.kingSrc()) | dest.ToMask()
}

// update clears whichever castling right(s) are affected by a piece
// leaving square sq (the mover's source, or a captured rook's square).
func (g castlingGeometry) update(sq square.Square) {
	king := g.kingSrc()
	ooRook := g.ooRookSrc()
	oooRook := g.oooRookSrc()
	if g.rights.oo && (sq == king || sq == ooRook) {
		g.rights.clearOO()
	}
	if g.rights.ooo && (sq == king || sq == oooRook) {
		g.rights.clearOOO()
	}
}
