package board

import "github.com/riffsw/riff-chess/material"

// MoveID is a monotonically increasing ply counter. Even values are
// White to move, odd values are Black to move.
type MoveID uint16

// StartMoveID is the MoveID of the initial position, before any move has
// been played.
const StartMoveID MoveID = 0

// NewMoveID builds the id for the given fullmove count and side to move.
func NewMoveID(moveCount uint16, turn material.Color) MoveID {
	if turn == material.Black {
		return MoveID(moveCount*2 + 1)
	}
	return MoveID(moveCount * 2)
}

// Turn returns the side to move at this id.
func (id MoveID) Turn() material.Color { return material.Color(id % 2) }

// Value returns the raw ply count.
func (id MoveID) Value() int { return int(id) }

// MoveCount returns the number of full moves completed before this id.
func (id MoveID) MoveCount() int { return int(id) / 2 }

// MoveNumber returns the 1-based full move number, as used in PGN.
func (id MoveID) MoveNumber() int { return 1 + id.MoveCount() }

// AtStart reports whether this is the id of the initial position.
func (id MoveID) AtStart() bool { return id == StartMoveID }

// Next returns the following ply id.
func (id MoveID) Next() MoveID { return id + 1 }

// Prev returns the preceding ply id.
func (id MoveID) Prev() MoveID { return id - 1 }

// Add advances id by n plies.
func (id MoveID) Add(n int) MoveID { return MoveID(int(id) + n) }
