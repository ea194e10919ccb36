package board

import (
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// MoveKind discriminates the variants of LegalMove.
type MoveKind uint8

const (
	KindStandard MoveKind = iota
	KindDoubleAdvance
	KindEnPassant
	KindPromoting
	KindShortCastle
	KindLongCastle
)

// LegalMove is a fully resolved move produced by the legal-move
// generator. The zero value is never meaningful; always construct via
// one of the New*Move helpers.
type LegalMove struct {
	Kind      MoveKind
	From      square.Square
	To        square.Square
	Promotion material.Promotion
}

func NewStandardMove(from, to square.Square) LegalMove {
	return LegalMove{Kind: KindStandard, From: from, To: to}
}
func NewDoubleAdvanceMove(from, to square.Square) LegalMove {
	return LegalMove{Kind: KindDoubleAdvance, From: from, To: to}
}
func NewEnPassantMove(from, to square.Square) LegalMove {
	return LegalMove{Kind: KindEnPassant, From: from, To: to}
}
func NewPromotingMove(from, to square.Square, p material.Promotion) LegalMove {
	return LegalMove{Kind: KindPromoting, From: from, To: to, Promotion: p}
}
func NewShortCastleMove() LegalMove { return LegalMove{Kind: KindShortCastle} }
func NewLongCastleMove() LegalMove  { return LegalMove{Kind: KindLongCastle} }

// PreMoveKind discriminates the variants of PreMove: it is a subset of
// MoveKind, since pre-moves cannot anticipate en passant or know ahead
// of time that a pawn push is a double-advance versus single.
type PreMoveKind uint8

const (
	PreKindStandard PreMoveKind = iota
	PreKindPromoting
	PreKindShortCastle
	PreKindLongCastle
)

// PreMove is a speculative move queued against a future position; unlike
// LegalMove it carries no DoubleAdvance or EnPassant tag.
type PreMove struct {
	Kind      PreMoveKind
	From      square.Square
	To        square.Square
	Promotion material.Promotion
}

func NewStandardPreMove(from, to square.Square) PreMove {
	return PreMove{Kind: PreKindStandard, From: from, To: to}
}
func NewPromotingPreMove(from, to square.Square, p material.Promotion) PreMove {
	return PreMove{Kind: PreKindPromoting, From: from, To: to, Promotion: p}
}
func NewShortCastlePreMove() PreMove { return PreMove{Kind: PreKindShortCastle} }
func NewLongCastlePreMove() PreMove  { return PreMove{Kind: PreKindLongCastle} }

// Move is the move submitted by an external caller: a source and
// destination square, plus an optional promotion for pawn advances
// reaching the back rank.
type Move struct {
	From      square.Square
	To        square.Square
	Promotion *material.Promotion
}

// MoveSet pairs a destination mask with the move that reaches each
// destination, so callers can both report "which squares are reachable"
// and "what move reaches this square" in O(1).
type MoveSet[T any] struct {
	destinations square.Mask
	byDest       map[square.Square]T
}

func newMoveSet[T any]() MoveSet[T] {
	return MoveSet[T]{byDest: make(map[square.Square]T)}
}

// Insert records that dest is reachable via mv.
func (s *MoveSet[T]) Insert(dest square.Square, mv T) {
	if s.byDest == nil {
		s.byDest = make(map[square.Square]T)
	}
	s.destinations.Set(dest)
	s.byDest[dest] = mv
}

// InsertMask records mv for every square in dests.
func (s *MoveSet[T]) InsertMask(dests square.Mask, mv T) {
	work := dests
	for {
		sq, ok := work.Next()
		if !ok {
			break
		}
		s.Insert(sq, mv)
	}
}

// Destinations returns every reachable square.
func (s MoveSet[T]) Destinations() square.Mask { return s.destinations }

// Contains reports whether dest is a reachable square.
func (s MoveSet[T]) Contains(dest square.Square) bool { return s.destinations.Contains(dest) }

// Get returns the move that reaches dest, if any.
func (s MoveSet[T]) Get(dest square.Square) (T, bool) {
	mv, ok := s.byDest[dest]
	return mv, ok
}

// Merge folds other into s, in place.
func (s *MoveSet[T]) Merge(other MoveSet[T]) {
	s.destinations |= other.destinations
	if len(other.byDest) == 0 {
		return
	}
	if s.byDest == nil {
		s.byDest = make(map[square.Square]T, len(other.byDest))
	}
	for k, v := range other.byDest {
		s.byDest[k] = v
	}
}
