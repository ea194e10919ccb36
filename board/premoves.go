package board

import (
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// PreMoves computes the destinations from square from that the side NOT
// currently to move may queue as a pre-move: the board's own geometry
// with castling rights folded in, but no blockers, checks or pins. Those
// are only known once it is actually that side's turn, at which point
// the queued pre-move is re-validated as a legal move.
func (s *MoveState) PreMoves(from square.Square) MoveSet[PreMove] {
	result := newMoveSet[PreMove]()
	pos := s.position
	m, ok := pos.At(from)
	if !ok || m.Color == pos.Turn() {
		return result
	}

	switch m.Piece {
	case material.King:
		destinations := kingMoves[from]
		result.insertEach(destinations, func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
		result.Merge(shortCastlePreMoveTargets(pos))
		result.Merge(longCastlePreMoveTargets(pos))
	case material.Queen:
		result.insertEach(queenMoves[from], func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
	case material.Rook:
		result.insertEach(rookMoves[from], func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
	case material.Bishop:
		result.insertEach(bishopMoves[from], func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
	case material.Knight:
		result.insertEach(knightMoves[from], func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
	default:
		var destinations square.Mask
		if m.Color == material.White {
			destinations = whitePawnSingle[from] | whitePawnDouble[from] | whitePawnAttacks[from]
		} else {
			destinations = blackPawnSingle[from] | blackPawnDouble[from] | blackPawnAttacks[from]
		}
		result.insertEach(destinations, func(dest square.Square) PreMove {
			return NewStandardPreMove(from, dest)
		})
	}
	return result
}

// insertEach inserts f(dest) for every dest in mask.
func (s *MoveSet[T]) insertEach(mask square.Mask, f func(square.Square) T) {
	work := mask
	for {
		dest, ok := work.Next()
		if !ok {
			return
		}
		s.Insert(dest, f(dest))
	}
}

// shortCastlePreMoveTargets returns the king/rook landing squares of a
// short castle for the side NOT to move, if that side still has the
// right.
func shortCastlePreMoveTargets(pos *Position) MoveSet[PreMove] {
	result := newMoveSet[PreMove]()
	castling := pos.theirCastling()
	if !castling.rights.OO() {
		return result
	}
	result.Insert(castling.ooKingDest(), NewShortCastlePreMove())
	result.Insert(castling.ooRookDest(), NewShortCastlePreMove())
	return result
}

func longCastlePreMoveTargets(pos *Position) MoveSet[PreMove] {
	result := newMoveSet[PreMove]()
	castling := pos.theirCastling()
	if !castling.rights.OOO() {
		return result
	}
	result.Insert(castling.oooKingDest(), NewLongCastlePreMove())
	result.Insert(castling.oooRookDest(), NewLongCastlePreMove())
	return result
}

// ValidatePreMove checks mv against the pre-moves available from
// mv.From and resolves it to a concrete PreMove.
func (s *MoveState) ValidatePreMove(mv Move) (PreMove, error) {
	preMoves := s.PreMoves(mv.From)
	if !preMoves.Contains(mv.To) {
		return PreMove{}, ErrInvalidMove
	}
	m, _ := s.position.At(mv.From)
	if mv.Promotion != nil {
		if m.Piece != material.Pawn {
			return PreMove{}, ErrInvalidMove
		}
		if !mv.To.Rank().IsBackRank(m.Color.Opposite()) {
			return PreMove{}, ErrInvalidMove
		}
		return NewPromotingPreMove(mv.From, mv.To, *mv.Promotion), nil
	}
	if m.Piece == material.Pawn && mv.To.Rank().IsBackRank(m.Color.Opposite()) {
		return PreMove{}, ErrInvalidMove
	}
	got, _ := preMoves.Get(mv.To)
	return got, nil
}
