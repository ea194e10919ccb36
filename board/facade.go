package board

import (
	"github.com/riffsw/riff-chess/backrank"
	"github.com/riffsw/riff-chess/material"
)

// NewEngineBoardShuffled starts a new game from a randomly drawn
// Chess960 back rank.
func NewEngineBoardShuffled() *EngineBoard {
	return NewEngineBoardFrom(backrank.MustLookup(backrank.Shuffled()))
}

// ReplayEngineBoard reconstructs an EngineBoard by submitting moves in
// order, starting from br.
func ReplayEngineBoard(br *backrank.BackRank, moves []Move) (*EngineBoard, error) {
	b := NewEngineBoardFrom(br)
	for _, mv := range moves {
		if _, err := b.SubmitMove(mv); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ReplayPlayerBoard reconstructs a PlayerBoard presenting side's view,
// by submitting moves in order (alternating SubmitOurMove/SubmitTheirMove
// based on whose ply each one is), starting from br.
func ReplayPlayerBoard(side material.Color, br *backrank.BackRank, moves []Move) (*PlayerBoard, error) {
	b := NewPlayerBoardFrom(side, br)
	for i, mv := range moves {
		isWhiteMove := i%2 == 0
		var err error
		if isWhiteMove == (side == material.White) {
			err = b.SubmitOurMove(mv)
		} else {
			err = b.SubmitTheirMove(mv)
		}
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}
