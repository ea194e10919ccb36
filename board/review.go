package board

import (
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// Review exposes read-only access to a move history: the full sequence
// of positions reached so far, and a cursor (offset) into it for
// stepping back and forth without losing the live position.
type Review interface {
	Len() int
	Offset() MoveID
	Get(offset MoveID) *MoveState
}

// ReviewMut additionally allows moving the cursor.
type ReviewMut interface {
	Review
	SetOffset(offset MoveID)
}

// ReviewState stores one MoveState snapshot per ply played, plus a
// cursor used to browse the game's history without mutating the live
// position.
type ReviewState struct {
	offset  MoveID
	history []*MoveState
}

// NewReviewState seeds a review with the starting position.
func NewReviewState(position *Position) *ReviewState {
	return &ReviewState{history: []*MoveState{NewMoveState(position)}}
}

func (r *ReviewState) Len() int        { return len(r.history) }
func (r *ReviewState) Offset() MoveID  { return r.offset }
func (r *ReviewState) SetOffset(o MoveID) { r.offset = o }

// Get returns the snapshot at offset.
func (r *ReviewState) Get(offset MoveID) *MoveState { return r.history[offset.Value()] }

func (r *ReviewState) AtStart() bool { return r.offset == StartMoveID }
func (r *ReviewState) AtEnd() bool   { return r.offset.Value() == r.Len()-1 }

func (r *ReviewState) First() *MoveState { return r.Get(StartMoveID) }
func (r *ReviewState) Last() *MoveState  { return r.Get(MoveID(r.Len() - 1)) }
func (r *ReviewState) Current() *MoveState { return r.Get(r.offset) }

// Push appends state as the newest ply. If the cursor was already at the
// end, it follows along to the new last entry.
func (r *ReviewState) Push(state *MoveState) {
	atEnd := r.AtEnd()
	r.history = append(r.history, state)
	if atEnd {
		r.offset = MoveID(r.Len() - 1)
	}
}

// Forward moves the cursor one ply later, if possible.
func (r *ReviewState) Forward() {
	if !r.AtEnd() {
		r.offset = r.offset.Next()
	}
}

// Back moves the cursor one ply earlier, if possible.
func (r *ReviewState) Back() {
	if !r.AtStart() {
		r.offset = r.offset.Prev()
	}
}

func (r *ReviewState) SkipToStart() { r.offset = StartMoveID }
func (r *ReviewState) SkipToEnd()   { r.offset = MoveID(r.Len() - 1) }

func (r *ReviewState) Turn() material.Color { return r.Current().Position().Turn() }

// At returns the material on sq in the position the cursor currently
// points at.
func (r *ReviewState) At(sq square.Square) (material.Material, bool) {
	return r.Current().Position().At(sq)
}
