package board

import (
	"github.com/riffsw/riff-chess/backrank"
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// BoardResultKind classifies how a game ended.
type BoardResultKind uint8

const (
	CheckMate BoardResultKind = iota
	StaleMate
	Insufficient
	Repetition
	FiftyMoves
)

// BoardResult is the outcome of a finished game. Winner is only
// meaningful when Kind is CheckMate.
type BoardResult struct {
	Kind   BoardResultKind
	Winner material.Color
}

func (r BoardResult) String() string {
	switch r.Kind {
	case CheckMate:
		return r.Winner.String() + " wins by checkmate"
	case StaleMate:
		return "draw by stalemate"
	case Insufficient:
		return "draw by insufficient material"
	case Repetition:
		return "draw by threefold repetition"
	case FiftyMoves:
		return "draw by the fifty-move rule"
	default:
		return "unknown result"
	}
}

// core holds the state shared by every play mode: the attacker/check/pin
// cache for the live position, and the log of moves applied so far.
type core struct {
	moveState *MoveState
	history   []LegalMove
}

func newCore(br *backrank.BackRank) core {
	return core{moveState: NewMoveState(NewPosition(br))}
}

// Position returns the live position.
func (c *core) Position() *Position { return c.moveState.Position() }

// History returns the moves played so far, in order.
func (c *core) History() []LegalMove { return c.history }

func (c *core) applyMove(mv LegalMove) MoveID {
	id := c.moveState.ApplyMove(mv)
	c.history = append(c.history, mv)
	return id
}

// EngineBoard plays both sides of a game and tracks its outcome: it is
// the mode used to referee a full game rather than present one side's
// view of it.
type EngineBoard struct {
	core
	repetitions map[PositionKey]uint8
	result      *BoardResult
}

// NewEngineBoard starts a new game from the standard back rank.
func NewEngineBoard() *EngineBoard {
	return NewEngineBoardFrom(backrank.Standard())
}

// NewEngineBoardFrom starts a new game from a specific (possibly
// Chess960) back rank.
func NewEngineBoardFrom(br *backrank.BackRank) *EngineBoard {
	b := &EngineBoard{core: newCore(br), repetitions: make(map[PositionKey]uint8)}
	b.repetitions[b.Position().Key()] = 1
	return b
}

// BackRankID reports which starting configuration the game began from.
func (b *EngineBoard) BackRankID() backrank.ID { return b.Position().BackRank().ID() }

// Turn reports the side to move.
func (b *EngineBoard) Turn() material.Color { return b.Position().Turn() }

// LegalMoves returns the destinations reachable from sq by the side to
// move.
func (b *EngineBoard) LegalMoves(sq square.Square) MoveSet[LegalMove] {
	return b.moveState.LegalMoves(sq)
}

// BoardResult reports how the game ended, or nil if it is still in
// progress.
func (b *EngineBoard) BoardResult() *BoardResult { return b.result }

// AllLegalMoves enumerates every legal move for the side to move,
// across every one of its occupied squares.
func (b *EngineBoard) AllLegalMoves() []LegalMove {
	var out []LegalMove
	work := b.Position().ours()
	for {
		from, ok := work.Next()
		if !ok {
			return out
		}
		moves := b.moveState.LegalMoves(from)
		work2 := moves.Destinations()
		for {
			to, ok := work2.Next()
			if !ok {
				break
			}
			mv, _ := moves.Get(to)
			out = append(out, mv)
		}
	}
}

// Clone returns an independent copy of b: applying moves to the clone
// never affects b.
func (b *EngineBoard) Clone() *EngineBoard {
	repetitions := make(map[PositionKey]uint8, len(b.repetitions))
	for k, v := range b.repetitions {
		repetitions[k] = v
	}
	var result *BoardResult
	if b.result != nil {
		r := *b.result
		result = &r
	}
	return &EngineBoard{
		core:        core{moveState: b.moveState.Clone(), history: append([]LegalMove(nil), b.history...)},
		repetitions: repetitions,
		result:      result,
	}
}

// SubmitMove validates and applies mv for the side to move, then
// refreshes the outcome.
func (b *EngineBoard) SubmitMove(mv Move) (MoveID, error) {
	legal, err := b.moveState.ValidateMove(mv)
	if err != nil {
		return 0, err
	}
	id := b.applyMove(legal)
	b.updateResult()
	return id, nil
}

// updateRepetitions records the current position and returns how many
// times it (or an earlier position with identical PositionKey) has now
// been reached. A pawn move or capture is a trap door: no later
// position can ever match one from before it, so the table is cleared
// whenever the fifty-move counter resets.
func (b *EngineBoard) updateRepetitions() uint8 {
	if b.Position().MovesSinceProgress() == 0 {
		b.repetitions = make(map[PositionKey]uint8)
	}
	key := b.Position().Key()
	b.repetitions[key]++
	return b.repetitions[key]
}

func (b *EngineBoard) updateResult() {
	repetitions := b.updateRepetitions()
	switch {
	case !b.canMove():
		if b.moveState.IsCheck() {
			b.result = &BoardResult{Kind: CheckMate, Winner: b.Turn().Opposite()}
		} else {
			b.result = &BoardResult{Kind: StaleMate}
		}
	case repetitions >= 3:
		b.result = &BoardResult{Kind: Repetition}
	case b.Position().MovesSinceProgress() == 100:
		b.result = &BoardResult{Kind: FiftyMoves}
	case b.isInsufficient():
		b.result = &BoardResult{Kind: Insufficient}
	default:
		b.result = nil
	}
}

// canMove reports whether the side to move has any legal move at all.
func (b *EngineBoard) canMove() bool {
	ours := b.Position().ours()
	work := ours
	for {
		from, ok := work.Next()
		if !ok {
			return false
		}
		if !b.moveState.LegalMoves(from).Destinations().IsEmpty() {
			return true
		}
	}
}

// isInsufficient applies the heuristics this engine checks for: it does
// not attempt full dead-position detection, only the lone-king and
// king-plus-minor-piece cases.
func (b *EngineBoard) isInsufficient() bool {
	our := b.Position().OurMatingMaterial()
	their := b.Position().TheirMatingMaterial()
	if our == Sufficient || their == Sufficient {
		return false
	}
	if our == LoneKing || their == LoneKing {
		return true
	}
	if our == TwoKnights || their == TwoKnights {
		return false
	}
	return true
}

// PlayerBoard presents one side's view of a game: it accepts pre-moves
// queued while it is the opponent's turn, and supports reviewing past
// positions without losing track of the live one.
type PlayerBoard struct {
	core
	side     material.Color
	review   *ReviewState
	preview  *Position
	preMoves []Move
}

// NewPlayerBoard starts a new game from the standard back rank, with
// side as the perspective this board presents.
func NewPlayerBoard(side material.Color) *PlayerBoard {
	return NewPlayerBoardFrom(side, backrank.Standard())
}

// NewPlayerBoardFrom starts a new game from a specific back rank.
func NewPlayerBoardFrom(side material.Color, br *backrank.BackRank) *PlayerBoard {
	c := newCore(br)
	return &PlayerBoard{core: c, side: side, review: NewReviewState(c.moveState.Position().Clone())}
}

// BackRankID reports which starting configuration the game began from.
func (b *PlayerBoard) BackRankID() backrank.ID { return b.Position().BackRank().ID() }

// OurTurn reports whether it is this board's side to move.
func (b *PlayerBoard) OurTurn() bool { return b.Position().Turn() == b.side }

// TheirTurn reports whether it is the opponent's side to move.
func (b *PlayerBoard) TheirTurn() bool { return !b.OurTurn() }

// MoveDestinations returns the legal destinations from sq if it is our
// turn, or the pre-move destinations if it is the opponent's.
func (b *PlayerBoard) MoveDestinations(sq square.Square) square.Mask {
	if b.OurTurn() {
		return b.moveState.LegalMoves(sq).Destinations()
	}
	return b.moveState.PreMoves(sq).Destinations()
}

// SubmitOurMove plays mv if it is our turn, or queues it as a pre-move
// against the anticipated future position if it is not.
func (b *PlayerBoard) SubmitOurMove(mv Move) error {
	if b.OurTurn() {
		return b.submitLegalMove(mv)
	}
	pre, err := b.moveState.ValidatePreMove(mv)
	if err != nil {
		return err
	}
	b.previewMut().ApplyPreMove(pre)
	b.preMoves = append(b.preMoves, mv)
	return nil
}

// submitLegalMove applies mv to the live position and pushes it onto
// the review history. It must only be called with no pre-moves queued.
func (b *PlayerBoard) submitLegalMove(mv Move) error {
	legal, err := b.moveState.ValidateMove(mv)
	if err != nil {
		return err
	}
	b.applyMove(legal)
	b.review.Push(b.moveState.Clone())
	return nil
}

// SubmitTheirMove applies the opponent's move, then replays any queued
// pre-moves against the resulting position, stopping at the first one
// that is no longer legal.
func (b *PlayerBoard) SubmitTheirMove(mv Move) error {
	legal, err := b.moveState.ValidateMove(mv)
	if err != nil {
		return err
	}
	queued := b.rollbackPreMoves()
	b.applyMove(legal)
	b.review.Push(b.moveState.Clone())
	for _, pre := range queued {
		if err := b.SubmitOurMove(pre); err != nil {
			break
		}
	}
	return nil
}

// CancelPreMoves discards every queued pre-move and the speculative
// preview position they were played against.
func (b *PlayerBoard) CancelPreMoves() {
	b.preview = nil
	b.preMoves = nil
}

// View returns the position to display: the position under review if
// the cursor isn't at the end of history, otherwise the live preview
// (which folds in any queued pre-moves).
func (b *PlayerBoard) View() *Position {
	if !b.review.AtEnd() {
		return b.review.Current().Position()
	}
	return b.preview_()
}

func (b *PlayerBoard) preview_() *Position {
	if b.preview == nil {
		return b.Position()
	}
	return b.preview
}

func (b *PlayerBoard) previewMut() *Position {
	if b.preview == nil {
		b.preview = b.Position().Clone()
	}
	return b.preview
}

// rollbackPreMoves clears the speculative preview and returns the
// queued pre-moves so they can be replayed against the real position.
func (b *PlayerBoard) rollbackPreMoves() []Move {
	queued := b.preMoves
	b.preview = nil
	b.preMoves = nil
	return queued
}

// Review exposes the move-browsing cursor over this board's history.
func (b *PlayerBoard) Review() *ReviewState { return b.review }
