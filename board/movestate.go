package board

import (
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// MoveState layers the attacker/check/pin cache and the legal-move
// generator on top of a Position. It is rebuilt (not incrementally
// updated) every time a move is applied: init walks every opposing
// piece once, which is cheap next to the bookkeeping a fully
// incremental cache would need for castling rights, en passant and
// promotion.
type MoveState struct {
	position *Position

	checks    square.Mask
	attackers [square.NumSquares]square.Mask
	pinned    [square.NumSquares]pinEntry
}

// pinEntry records the pin lane for one square: OK is false when the
// square holds no pinned piece.
type pinEntry struct {
	lane square.Mask
	ok   bool
}

// Clone returns an independent copy of s: mutating the clone's
// position never affects s, and vice versa.
func (s *MoveState) Clone() *MoveState {
	clone := *s
	clone.position = s.position.Clone()
	return &clone
}

// NewMoveState builds a MoveState around position and computes its
// attacker/check/pin cache.
func NewMoveState(position *Position) *MoveState {
	s := &MoveState{position: position}
	s.init()
	return s
}

// Position returns the underlying position.
func (s *MoveState) Position() *Position { return s.position }

// ApplyMove mutates the underlying position and rebuilds the cache.
func (s *MoveState) ApplyMove(mv LegalMove) MoveID {
	id := s.position.ApplyMove(mv)
	s.reset()
	return id
}

// ApplyPreMove mutates the underlying position without touching the
// cache: pre-moves never change whose turn it is.
func (s *MoveState) ApplyPreMove(mv PreMove) {
	s.position.ApplyPreMove(mv)
}

func (s *MoveState) IsCheck() bool       { return !s.checks.IsEmpty() }
func (s *MoveState) IsDoubleCheck() bool { return s.checks.Len() > 1 }

func (s *MoveState) IsAttacked(sq square.Square) bool { return !s.Attackers(sq).IsEmpty() }
func (s *MoveState) IsPinned(sq square.Square) bool   { return s.pinned[sq].ok }

func (s *MoveState) Checks() square.Mask { return s.checks }

func (s *MoveState) Attackers(sq square.Square) square.Mask { return s.attackers[sq] }

// Pinned reports the pin lane for sq, if any: the set of squares the
// piece on sq may still move to without exposing its own king.
func (s *MoveState) Pinned(sq square.Square) (square.Mask, bool) {
	entry := s.pinned[sq]
	return entry.lane, entry.ok
}

// checkResolutionMask restricts non-king moves to squares that resolve a
// single check: capturing the checker or interposing on its line to our
// king. Not in check, every square is a candidate; double check is
// handled by each generator refusing to emit any non-king move at all,
// since no single move can both block two checkers.
func (s *MoveState) checkResolutionMask() square.Mask {
	if !s.IsCheck() {
		return square.All
	}
	work := s.checks
	checker, _ := work.Next()
	king := s.position.ourKing()
	return s.checks | between(checker, king)
}

func (s *MoveState) IsLaneBlocked(lane square.Mask) bool {
	return !(lane & s.position.occupied()).IsEmpty()
}

func (s *MoveState) IsLaneAttacked(lane square.Mask) bool {
	work := lane
	for {
		sq, ok := work.Next()
		if !ok {
			return false
		}
		if s.IsAttacked(sq) {
			return true
		}
	}
}

func (s *MoveState) reset() {
	s.checks = square.Empty
	s.attackers = [square.NumSquares]square.Mask{}
	s.pinned = [square.NumSquares]pinEntry{}
	s.init()
}

func (s *MoveState) init() {
	pos := s.position
	theirs := pos.theirs()
	for {
		from, ok := theirs.Next()
		if !ok {
			break
		}
		attacked := s.attacked(from)
		for {
			to, ok := attacked.Next()
			if !ok {
				break
			}
			s.attackers[to] |= from.ToMask()
		}
	}

	king := pos.ourKing()
	s.checks = s.Attackers(king)

	lines := pos.theirLinePieces()
	for {
		from, ok := lines.Next()
		if !ok {
			break
		}
		lane := between(from, king)
		if lane.IsEmpty() {
			continue
		}
		blockers := lane & pos.occupied()
		if blockers.Len() != 1 {
			continue
		}
		blockers &= pos.ours()
		if blockers.IsEmpty() {
			continue
		}
		pinnedSq, _ := blockers.Next()
		s.pinned[pinnedSq] = pinEntry{lane: lane, ok: true}
	}
}

func (s *MoveState) attacked(from square.Square) square.Mask {
	m, ok := s.position.At(from)
	if !ok {
		return square.Empty
	}
	switch m.Piece {
	case material.King:
		return kingMoves[from]
	case material.Queen:
		return s.excludeBlockedAttacks(from, queenMoves[from])
	case material.Rook:
		return s.excludeBlockedAttacks(from, rookMoves[from])
	case material.Bishop:
		return s.excludeBlockedAttacks(from, bishopMoves[from])
	case material.Knight:
		return knightMoves[from]
	default:
		if m.Color == material.White {
			return whitePawnAttacks[from]
		}
		return blackPawnAttacks[from]
	}
}

// excludeBlockedAttacks trims a sliding piece's attack set: squares past
// an opposing piece are blocked (the attack stops there, but the
// occupied square itself is still attacked so it is pinned/defended
// correctly), while squares past one of our own pieces are shielded
// (neither the piece nor anything past it is attacked).
func (s *MoveState) excludeBlockedAttacks(from square.Square, mask square.Mask) square.Mask {
	pos := s.position
	theirs := pos.theirs() & mask
	for {
		sq, ok := theirs.Next()
		if !ok {
			break
		}
		mask &= ^blocked(from, sq)
	}
	ours := pos.ours() & mask
	for {
		sq, ok := ours.Next()
		if !ok {
			break
		}
		mask &= ^shielded(from, sq)
	}
	return mask
}

// excludeBlockedMoves trims a sliding piece's move set: our own pieces
// block (the square itself, occupied by us, is not a legal destination)
// and shield everything past them; their pieces block too, but the
// occupied square is still reachable as a capture.
func (s *MoveState) excludeBlockedMoves(from square.Square, mask square.Mask) square.Mask {
	pos := s.position
	ours := pos.ours() & mask
	for {
		sq, ok := ours.Next()
		if !ok {
			break
		}
		mask &= ^blocked(from, sq)
	}
	theirs := pos.theirs() & mask
	for {
		sq, ok := theirs.Next()
		if !ok {
			break
		}
		mask &= ^shielded(from, sq)
	}
	return mask
}

// enPassantExposesCheck reports whether capturing en passant (vacating
// capturer and captured, occupying dest) would leave our king in check
// along the rank the two pawns shared. Pin detection can't see this: it
// only flags a ray with exactly one blocker, but an en passant capture
// vacates two squares on the same rank at once.
func (s *MoveState) enPassantExposesCheck(capturer, captured, dest square.Square) bool {
	pos := s.position
	king := pos.ourKing()
	if capturer.Rank() != king.Rank() {
		return false
	}
	occupied := pos.occupied()
	occupied &^= capturer.ToMask()
	occupied &^= captured.ToMask()
	occupied |= dest.ToMask()

	attackers := pos.theirs() & pos.horizontalPieces()
	for {
		atk, ok := attackers.Next()
		if !ok {
			return false
		}
		if atk.Rank() != king.Rank() {
			continue
		}
		if (between(king, atk) & occupied).IsEmpty() {
			return true
		}
	}
}

// ValidateMove checks mv against the legal moves available from mv.From
// and resolves it to a concrete LegalMove, filling in promotion where
// the caller supplied one.
func (s *MoveState) ValidateMove(mv Move) (LegalMove, error) {
	moves := s.LegalMoves(mv.From)
	if !moves.Contains(mv.To) {
		return LegalMove{}, ErrInvalidMove
	}
	m, _ := s.position.At(mv.From)
	if mv.Promotion != nil {
		if m.Piece != material.Pawn {
			return LegalMove{}, ErrInvalidMove
		}
		if !mv.To.Rank().IsBackRank(m.Color.Opposite()) {
			return LegalMove{}, ErrInvalidMove
		}
		return NewPromotingMove(mv.From, mv.To, *mv.Promotion), nil
	}
	if m.Piece == material.Pawn && mv.To.Rank().IsBackRank(m.Color.Opposite()) {
		return LegalMove{}, ErrInvalidMove
	}
	got, _ := moves.Get(mv.To)
	return got, nil
}

// LegalMoves computes the full set of legal destinations (and the move
// that reaches each one) for the piece at from, or an empty set if from
// is empty or holds one of the opponent's pieces.
func (s *MoveState) LegalMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	pos := s.position
	m, ok := pos.At(from)
	if !ok || m.Color != pos.Turn() {
		return result
	}
	switch m.Piece {
	case material.King:
		return s.allKingMoves(from)
	case material.Queen:
		return s.allLineMoves(from, queenMoves[from])
	case material.Rook:
		return s.allLineMoves(from, rookMoves[from])
	case material.Bishop:
		return s.allLineMoves(from, bishopMoves[from])
	case material.Knight:
		return s.allKnightMoves(from)
	default:
		return s.allPawnMoves(from)
	}
}

func (s *MoveState) allKingMoves(from square.Square) MoveSet[LegalMove] {
	result := s.standardKingMoves(from)
	result.Merge(s.allCastleMoves())
	return result
}

func (s *MoveState) standardKingMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	pos := s.position
	destinations := kingMoves[from] &^ pos.ours()
	if destinations.IsEmpty() {
		return result
	}
	attackers := s.Attackers(from)
	if !attackers.IsEmpty() {
		lineAttackers := attackers & pos.linePieces()
		for {
			sq, ok := lineAttackers.Next()
			if !ok {
				break
			}
			// A king move off the attacker's ray can still walk into
			// the square the attacker would reach if the king weren't
			// standing in the way.
			destinations &= ^shielded(sq, from)
		}
	}
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		if !s.IsAttacked(dest) {
			result.Insert(dest, NewStandardMove(from, dest))
		}
	}
	return result
}

func (s *MoveState) allCastleMoves() MoveSet[LegalMove] {
	result := s.shortCastleMoves()
	result.Merge(s.longCastleMoves())
	return result
}

func (s *MoveState) shortCastleMoves() MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	pos := s.position
	castling := pos.ourCastling()
	rights := *castling.rights
	if !rights.OO() {
		return result
	}
	if s.IsAttacked(castling.kingSrc()) {
		return result
	}
	if s.IsLaneBlocked(castling.ooBlockingLane()) {
		return result
	}
	if s.IsLaneAttacked(castling.ooAttackingLane()) {
		return result
	}
	kingDest := castling.ooKingDest()
	if s.IsAttacked(kingDest) {
		return result
	}
	rookSrc := castling.ooRookSrc()
	result.Insert(kingDest, NewShortCastleMove())
	result.Insert(rookSrc, NewShortCastleMove())
	return result
}

func (s *MoveState) longCastleMoves() MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	pos := s.position
	castling := pos.ourCastling()
	rights := *castling.rights
	if !rights.OOO() {
		return result
	}
	if s.IsAttacked(castling.kingSrc()) {
		return result
	}
	if s.IsLaneBlocked(castling.oooBlockingLane()) {
		return result
	}
	if s.IsLaneAttacked(castling.oooAttackingLane()) {
		return result
	}
	kingDest := castling.oooKingDest()
	if s.IsAttacked(kingDest) {
		return result
	}
	rookSrc := castling.oooRookSrc()
	result.Insert(kingDest, NewLongCastleMove())
	result.Insert(rookSrc, NewLongCastleMove())
	return result
}

func (s *MoveState) allLineMoves(from square.Square, destinations square.Mask) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	if s.IsDoubleCheck() {
		return result
	}
	if lane, pinned := s.Pinned(from); pinned {
		destinations &= lane
	}
	destinations = s.excludeBlockedMoves(from, destinations)
	destinations &= s.checkResolutionMask()
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		result.Insert(dest, NewStandardMove(from, dest))
	}
	return result
}

func (s *MoveState) allKnightMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	if s.IsDoubleCheck() {
		return result
	}
	if _, pinned := s.Pinned(from); pinned {
		return result
	}
	destinations := knightMoves[from] &^ s.position.ours()
	destinations &= s.checkResolutionMask()
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		result.Insert(dest, NewStandardMove(from, dest))
	}
	return result
}

func (s *MoveState) allPawnMoves(from square.Square) MoveSet[LegalMove] {
	result := s.standardPawnMoves(from)
	result.Merge(s.doubleAdvanceMoves(from))
	result.Merge(s.enPassantMoves(from))
	return result
}

func (s *MoveState) standardPawnMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	if s.IsDoubleCheck() {
		return result
	}
	pos := s.position
	var advances, captures square.Mask
	if pos.Turn() == material.White {
		advances, captures = whitePawnSingle[from], whitePawnAttacks[from]
	} else {
		advances, captures = blackPawnSingle[from], blackPawnAttacks[from]
	}
	if lane, pinned := s.Pinned(from); pinned {
		advances &= lane
		captures &= lane
	}
	advances &^= pos.occupied()
	captures &= pos.theirs()
	destinations := (advances | captures) & s.checkResolutionMask()
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		result.Insert(dest, NewStandardMove(from, dest))
	}
	return result
}

func (s *MoveState) doubleAdvanceMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	if s.IsDoubleCheck() {
		return result
	}
	pos := s.position
	var destinations square.Mask
	if pos.Turn() == material.White {
		destinations = whitePawnDouble[from]
	} else {
		destinations = blackPawnDouble[from]
	}
	if lane, pinned := s.Pinned(from); pinned {
		destinations &= lane
	}
	destinations &^= pos.occupied()
	destinations &= s.checkResolutionMask()
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		passedMask := between(from, dest)
		if (passedMask & pos.occupied()).IsEmpty() {
			result.Insert(dest, NewDoubleAdvanceMove(from, dest))
		}
	}
	return result
}

func (s *MoveState) enPassantMoves(from square.Square) MoveSet[LegalMove] {
	result := newMoveSet[LegalMove]()
	if s.IsDoubleCheck() {
		return result
	}
	pos := s.position
	target, ok := pos.EnPassant()
	if !ok {
		return result
	}
	var destinations square.Mask
	if pos.Turn() == material.White {
		destinations = whitePawnAttacks[from]
	} else {
		destinations = blackPawnAttacks[from]
	}
	destinations &= target.ToMask()
	if lane, pinned := s.Pinned(from); pinned {
		destinations &= lane
	}
	captured := square.NewSquare(target.File(), from.Rank())
	// En passant's captured pawn sits off the destination square, on the
	// moving pawn's own rank, so it can resolve a check that the usual
	// destination-in-checkResolutionMask test can't see: capturing the
	// checking pawn itself.
	if s.IsCheck() {
		if (destinations&s.checkResolutionMask()).IsEmpty() && !s.checks.Contains(captured) {
			destinations = square.Empty
		}
	}
	// Removing both the capturing and captured pawns from the same rank
	// can expose our king to a rook or queen along that rank even when
	// neither pawn was individually pinned (pin detection requires
	// exactly one blocker on the ray; here there are two).
	if !destinations.IsEmpty() && s.enPassantExposesCheck(from, captured, target) {
		destinations = square.Empty
	}
	for {
		dest, ok := destinations.Next()
		if !ok {
			break
		}
		result.Insert(dest, NewEnPassantMove(from, dest))
	}
	return result
}
