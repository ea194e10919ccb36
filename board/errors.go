package board

import "errors"

// ErrInvalidMove is returned by ValidateMove and ValidatePreMove when the
// requested move is not among the legal (or pre-move) destinations for
// the piece at its source square.
var ErrInvalidMove = errors.New("board: not a legal move")
