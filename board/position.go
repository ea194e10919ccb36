package board

import (
	"github.com/riffsw/riff-chess/backrank"
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// Masks holds the occupancy bitboards for a position: one per color, and
// one per piece kind across both colors. The squares array is always
// kept coherent with these masks.
type Masks struct {
	pieces material.Pair[square.Mask]

	kings   square.Mask
	queens  square.Mask
	rooks   square.Mask
	bishops square.Mask
	knights square.Mask
	pawns   square.Mask
}

func (m *Masks) maskFor(p material.Piece) *square.Mask {
	switch p {
	case material.King:
		return &m.kings
	case material.Queen:
		return &m.queens
	case material.Rook:
		return &m.rooks
	case material.Bishop:
		return &m.bishops
	case material.Knight:
		return &m.knights
	default:
		return &m.pawns
	}
}

// MatingMaterial classifies one side's non-king material for the
// insufficient-material heuristic.
type MatingMaterial uint8

const (
	Sufficient MatingMaterial = iota
	TwoKnights
	OneKnight
	OneBishop
	LoneKing
)

// PositionKey is the subset of position state relevant to threefold
// repetition: it excludes clocks and the move id, so replaying the same
// arrangement always hashes identically regardless of how it was
// reached.
type PositionKey struct {
	Turn         material.Color
	EnPassant    square.Square
	HasEnPassant bool
	Castling     material.Pair[CastlingRights]
	Masks        Masks
}

// Position holds the full state of a chess board: the contents of each
// square, occupancy bitboards, castling rights, en passant target, and
// the ply clocks. Position mutation is atomic: ApplyMove and
// ApplyPreMove are the only exported ways to change it.
type Position struct {
	squares [square.NumSquares]*material.Material

	masks    Masks
	backrank *backrank.BackRank
	castling material.Pair[CastlingRights]

	enPassant    square.Square
	hasEnPassant bool

	nextMoveID         MoveID
	movesSinceProgress uint8
}

// NewPosition builds the initial position for the given back rank: pawns
// on ranks 2/7, and the back-rank pieces on ranks 1/8, both sides with
// full castling rights, White to move.
func NewPosition(br *backrank.BackRank) *Position {
	p := &Position{
		backrank: br,
		castling: material.NewPair(newCastlingRights(material.White), newCastlingRights(material.Black)),
	}
	p.initFile(br.KingFile(), material.King)
	p.initFile(br.QueenFile(), material.Queen)
	for _, f := range br.RookFiles() {
		p.initFile(f, material.Rook)
	}
	for _, f := range br.BishopFiles() {
		p.initFile(f, material.Bishop)
	}
	for _, f := range br.KnightFiles() {
		p.initFile(f, material.Knight)
	}
	return p
}

func (p *Position) initFile(f square.File, piece material.Piece) {
	pawnRank := material.NewPair(square.Rank2, square.Rank7)
	backRank := material.NewPair(square.Rank1, square.Rank8)
	for _, c := range [2]material.Color{material.White, material.Black} {
		p.place(square.NewSquare(f, pawnRank.Get(c)), material.New(c, material.Pawn))
		p.place(square.NewSquare(f, backRank.Get(c)), material.New(c, piece))
	}
}

// Clone returns a deep-enough copy of p: square contents are
// pointer-shared (Material values are never mutated in place, only
// replaced) but every other field is copied by value, so mutating the
// clone never affects p.
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

// Turn returns the side to move.
func (p *Position) Turn() material.Color { return p.nextMoveID.Turn() }

// Key returns the repetition-detection key for the current state.
func (p *Position) Key() PositionKey {
	return PositionKey{
		Turn:         p.Turn(),
		EnPassant:    p.enPassant,
		HasEnPassant: p.hasEnPassant,
		Castling:     p.castling,
		Masks:        p.masks,
	}
}

// BackRank returns the starting arrangement this position was seeded
// from; castling geometry is always resolved against it.
func (p *Position) BackRank() *backrank.BackRank { return p.backrank }

// MoveNumber returns the 1-based full move number.
func (p *Position) MoveNumber() int { return p.nextMoveID.MoveNumber() }

// MoveID returns the id of the move about to be played.
func (p *Position) MoveID() MoveID { return p.nextMoveID }

// MovesSinceProgress returns the halfmove clock: plies since the last
// pawn move or capture.
func (p *Position) MovesSinceProgress() int { return int(p.movesSinceProgress) }

// EnPassant returns the en passant target square, if the previous move
// was a double pawn advance.
func (p *Position) EnPassant() (square.Square, bool) { return p.enPassant, p.hasEnPassant }

// At returns the material occupying sq, if any.
func (p *Position) At(sq square.Square) (material.Material, bool) {
	if m := p.squares[sq]; m != nil {
		return *m, true
	}
	return material.Material{}, false
}

func (p *Position) isOccupied(sq square.Square) bool { return p.squares[sq] != nil }
func (p *Position) isVacant(sq square.Square) bool   { return p.squares[sq] == nil }

func (p *Position) white() square.Mask           { return p.masks.pieces.White() }
func (p *Position) black() square.Mask           { return p.masks.pieces.Black() }
func (p *Position) occupiedBy(c material.Color) square.Mask { return p.masks.pieces.Get(c) }
func (p *Position) occupied() square.Mask        { return p.white() | p.black() }
func (p *Position) vacant() square.Mask          { return ^p.occupied() }

func (p *Position) kings() square.Mask   { return p.masks.kings }
func (p *Position) queens() square.Mask  { return p.masks.queens }
func (p *Position) rooks() square.Mask   { return p.masks.rooks }
func (p *Position) bishops() square.Mask { return p.masks.bishops }
func (p *Position) knights() square.Mask { return p.masks.knights }
func (p *Position) pawns() square.Mask   { return p.masks.pawns }

func (p *Position) horizontalPieces() square.Mask { return p.rooks() | p.queens() }
func (p *Position) diagonalPieces() square.Mask   { return p.bishops() | p.queens() }
func (p *Position) linePieces() square.Mask       { return p.horizontalPieces() | p.diagonalPieces() }

// ours returns every square occupied by the side to move.
func (p *Position) ours() square.Mask { return p.occupiedBy(p.Turn()) }

// theirs returns every square occupied by the side not to move.
func (p *Position) theirs() square.Mask { return p.occupiedBy(p.Turn().Opposite()) }

func (p *Position) ourKing() square.Square {
	mask := p.ours() & p.kings()
	sq, _ := mask.Next()
	return sq
}
func (p *Position) theirKing() square.Square {
	mask := p.theirs() & p.kings()
	sq, _ := mask.Next()
	return sq
}

func (p *Position) theirLinePieces() square.Mask { return p.theirs() & p.linePieces() }

func (p *Position) ourCastling() castlingGeometry {
	return castlingGeometry{rights: p.castling.GetPtr(p.Turn()), br: p.backrank}
}
func (p *Position) theirCastling() castlingGeometry {
	return castlingGeometry{rights: p.castling.GetPtr(p.Turn().Opposite()), br: p.backrank}
}

// OurMatingMaterial classifies the side-to-move's non-king material.
func (p *Position) OurMatingMaterial() MatingMaterial { return p.matingMaterial(p.Turn()) }

// TheirMatingMaterial classifies the waiting side's non-king material.
func (p *Position) TheirMatingMaterial() MatingMaterial { return p.matingMaterial(p.Turn().Opposite()) }

func (p *Position) matingMaterial(side material.Color) MatingMaterial {
	pieces := p.occupiedBy(side) &^ p.kings()
	if !(pieces & p.pawns()).IsEmpty() {
		return Sufficient
	}
	if !(pieces & p.rooks()).IsEmpty() {
		return Sufficient
	}
	if !(pieces & p.queens()).IsEmpty() {
		return Sufficient
	}
	switch pieces.Len() {
	case 0:
		return LoneKing
	case 1:
		if !(pieces & p.knights()).IsEmpty() {
			return OneKnight
		}
		return OneBishop
	case 2:
		if pieces == (pieces & p.knights()) {
			return TwoKnights
		}
		return Sufficient
	default:
		return Sufficient
	}
}

// place puts material on sq, updating squares and masks, and returns
// whatever was previously there.
func (p *Position) place(sq square.Square, m material.Material) (material.Material, bool) {
	replaced, had := p.remove(sq)
	mm := m
	p.squares[sq] = &mm
	mask := sq.ToMask()
	*p.masks.pieces.GetPtr(m.Color) |= mask
	*p.masks.maskFor(m.Piece) |= mask
	return replaced, had
}

// remove clears sq, updating squares and masks, and returns whatever was
// there.
func (p *Position) remove(sq square.Square) (material.Material, bool) {
	existing := p.squares[sq]
	if existing == nil {
		return material.Material{}, false
	}
	p.squares[sq] = nil
	mask := ^sq.ToMask()
	*p.masks.pieces.GetPtr(existing.Color) &= mask
	*p.masks.maskFor(existing.Piece) &= mask
	return *existing, true
}

// ApplyMove performs the state transition described by mv and returns
// the id the move was played as (i.e. the id before it was incremented).
func (p *Position) ApplyMove(mv LegalMove) MoveID {
	p.movesSinceProgress++
	switch mv.Kind {
	case KindStandard:
		m, _ := p.remove(mv.From)
		_, captured := p.place(mv.To, m)
		p.clearEnPassant()
		p.ourCastling().update(mv.From)
		p.theirCastling().update(mv.To)
		if captured || m.Piece == material.Pawn {
			p.movesSinceProgress = 0
		}
	case KindEnPassant:
		m, _ := p.remove(mv.From)
		captureSquare := square.NewSquare(mv.To.File(), mv.From.Rank())
		p.remove(captureSquare)
		p.place(mv.To, m)
		p.clearEnPassant()
		p.movesSinceProgress = 0
	case KindDoubleAdvance:
		passedMask := between(mv.From, mv.To)
		passed, _ := passedMask.Next()
		m, _ := p.remove(mv.From)
		p.place(mv.To, m)
		p.setEnPassant(passed)
		p.movesSinceProgress = 0
	case KindPromoting:
		m, _ := p.remove(mv.From)
		m.Piece = mv.Promotion.Piece()
		p.place(mv.To, m)
		p.theirCastling().update(mv.To)
		p.clearEnPassant()
		p.movesSinceProgress = 0
	case KindShortCastle:
		c := p.ourCastling()
		king, _ := p.remove(c.kingSrc())
		rook, _ := p.remove(c.ooRookSrc())
		p.place(c.ooKingDest(), king)
		p.place(c.ooRookDest(), rook)
		p.castling.GetPtr(p.Turn()).clear()
		p.clearEnPassant()
	case KindLongCastle:
		c := p.ourCastling()
		king, _ := p.remove(c.kingSrc())
		rook, _ := p.remove(c.oooRookSrc())
		p.place(c.oooKingDest(), king)
		p.place(c.oooRookDest(), rook)
		p.castling.GetPtr(p.Turn()).clear()
		p.clearEnPassant()
	}
	id := p.nextMoveID
	p.nextMoveID = id.Next()
	return id
}

// ApplyPreMove updates the board to reflect a queued pre-move without
// toggling whose turn it is and without touching en passant state: a
// pre-move is a speculative overlay, not a real ply.
func (p *Position) ApplyPreMove(mv PreMove) {
	// The side composing the pre-move is not the side to move, so "our"
	// and "their" castling rights are swapped relative to ApplyMove.
	switch mv.Kind {
	case PreKindStandard:
		m, _ := p.remove(mv.From)
		p.place(mv.To, m)
		p.theirCastling().update(mv.From)
		p.ourCastling().update(mv.To)
	case PreKindPromoting:
		m, _ := p.remove(mv.From)
		m.Piece = mv.Promotion.Piece()
		p.place(mv.To, m)
		p.ourCastling().update(mv.To)
	case PreKindShortCastle:
		c := p.theirCastling()
		king, _ := p.remove(c.kingSrc())
		rook, _ := p.remove(c.ooRookSrc())
		p.place(c.ooKingDest(), king)
		p.place(c.ooRookDest(), rook)
		p.castling.GetPtr(p.Turn().Opposite()).clear()
	case PreKindLongCastle:
		c := p.theirCastling()
		king, _ := p.remove(c.kingSrc())
		rook, _ := p.remove(c.oooRookSrc())
		p.place(c.oooKingDest(), king)
		p.place(c.oooRookDest(), rook)
		p.castling.GetPtr(p.Turn().Opposite()).clear()
	}
}

func (p *Position) clearEnPassant() {
	p.enPassant = 0
	p.hasEnPassant = false
}
func (p *Position) setEnPassant(sq square.Square) {
	p.enPassant = sq
	p.hasEnPassant = true
}
