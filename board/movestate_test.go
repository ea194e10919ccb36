package board

import (
	"testing"

	"github.com/riffsw/riff-chess/backrank"
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandardMoveState() *MoveState {
	return NewMoveState(NewPosition(backrank.Standard()))
}

func TestStartingPositionDestinations(t *testing.T) {
	s := newStandardMoveState()

	e2 := s.LegalMoves(square.E2)
	assert.ElementsMatch(t, []square.Square{square.E3, square.E4}, e2.Destinations().Squares())

	b1 := s.LegalMoves(square.B1)
	assert.ElementsMatch(t, []square.Square{square.A3, square.C3}, b1.Destinations().Squares())

	e1 := s.LegalMoves(square.E1)
	assert.True(t, e1.Destinations().IsEmpty())
}

func TestFoolsMateCheckmate(t *testing.T) {
	b := NewEngineBoard()

	_, err := b.SubmitMove(Move{From: square.F2, To: square.F3})
	require.NoError(t, err)
	_, err = b.SubmitMove(Move{From: square.E7, To: square.E5})
	require.NoError(t, err)
	_, err = b.SubmitMove(Move{From: square.G2, To: square.G4})
	require.NoError(t, err)
	_, err = b.SubmitMove(Move{From: square.D8, To: square.H4})
	require.NoError(t, err)

	result := b.BoardResult()
	require.NotNil(t, result)
	assert.Equal(t, CheckMate, result.Kind)
	assert.Equal(t, material.Black, result.Winner)
}

func TestThreefoldRepetition(t *testing.T) {
	b := NewEngineBoard()
	moves := []Move{
		{From: square.G1, To: square.F3},
		{From: square.G8, To: square.F6},
		{From: square.F3, To: square.G1},
		{From: square.F6, To: square.G8},
		{From: square.G1, To: square.F3},
		{From: square.G8, To: square.F6},
		{From: square.F3, To: square.G1},
		{From: square.F6, To: square.G8},
	}
	var result *BoardResult
	for _, mv := range moves {
		_, err := b.SubmitMove(mv)
		require.NoError(t, err)
		result = b.BoardResult()
	}
	require.NotNil(t, result)
	assert.Equal(t, Repetition, result.Kind)
}

func TestEnPassantCapture(t *testing.T) {
	b := NewEngineBoard()
	for _, mv := range []Move{
		{From: square.E2, To: square.E4},
		{From: square.A7, To: square.A6},
		{From: square.E4, To: square.E5},
		{From: square.D7, To: square.D5},
	} {
		_, err := b.SubmitMove(mv)
		require.NoError(t, err)
	}

	destinations := b.LegalMoves(square.E5)
	assert.True(t, destinations.Contains(square.D6))

	_, err := b.SubmitMove(Move{From: square.E5, To: square.D6})
	require.NoError(t, err)

	_, captured := b.Position().At(square.D5)
	assert.False(t, captured)
	captor, ok := b.Position().At(square.D6)
	require.True(t, ok)
	assert.Equal(t, material.Pawn, captor.Piece)
	assert.Equal(t, material.White, captor.Color)
}

func TestSingleCheckRestrictsNonKingMoves(t *testing.T) {
	// White king on e1, checked down the e-file by a black rook on e7.
	// Only interposing on the file (or capturing the rook, or moving the
	// king) resolves it; a bishop on c3 can interpose on e5 but none of
	// its other diagonal squares resolve the check.
	pos := NewPosition(backrank.Standard())
	for sq := square.Square(0); sq < square.NumSquares; sq++ {
		if _, ok := pos.At(sq); ok {
			pos.remove(sq)
		}
	}
	pos.place(square.E1, material.New(material.White, material.King))
	pos.place(square.C3, material.New(material.White, material.Bishop))
	pos.place(square.A8, material.New(material.Black, material.King))
	pos.place(square.E7, material.New(material.Black, material.Rook))

	s := NewMoveState(pos)
	require.True(t, s.IsCheck())

	bishop := s.LegalMoves(square.C3)
	assert.Equal(t, []square.Square{square.E5}, bishop.Destinations().Squares())
}

func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	// White king e5, white pawn f5, black rook h5, black pawn just
	// played g7-g5. Capturing en passant (fxg6) would vacate both f5
	// and g5, exposing the king to the rook along the fifth rank.
	pos := NewPosition(backrank.Standard())
	for sq := square.Square(0); sq < square.NumSquares; sq++ {
		if _, ok := pos.At(sq); ok {
			pos.remove(sq)
		}
	}
	pos.place(square.E5, material.New(material.White, material.King))
	pos.place(square.F5, material.New(material.White, material.Pawn))
	pos.place(square.H5, material.New(material.Black, material.Rook))
	pos.place(square.G5, material.New(material.Black, material.Pawn))
	pos.place(square.A8, material.New(material.Black, material.King))
	pos.setEnPassant(square.G6)

	s := NewMoveState(pos)
	require.False(t, s.IsCheck())

	destinations := s.LegalMoves(square.F5)
	assert.False(t, destinations.Contains(square.G6))
}

func TestPromotionRequiredOnBackRankAdvance(t *testing.T) {
	pos := NewPosition(backrank.Standard())
	for sq := square.Square(0); sq < square.NumSquares; sq++ {
		if _, ok := pos.At(sq); ok {
			pos.remove(sq)
		}
	}
	pos.place(square.E1, material.New(material.White, material.King))
	pos.place(square.E8, material.New(material.Black, material.King))
	pos.place(square.A7, material.New(material.White, material.Pawn))

	s := NewMoveState(pos)
	_, err := s.ValidateMove(Move{From: square.A7, To: square.A8})
	assert.ErrorIs(t, err, ErrInvalidMove)

	promo := material.PromoteQueen
	legal, err := s.ValidateMove(Move{From: square.A7, To: square.A8, Promotion: &promo})
	require.NoError(t, err)
	assert.Equal(t, KindPromoting, legal.Kind)
}

func TestInsufficientMaterial(t *testing.T) {
	pieces := [8]material.Piece{
		material.Rook, material.Knight, material.Bishop, material.Queen,
		material.King, material.Bishop, material.Knight, material.Rook,
	}
	br, err := backrank.FromPieces(pieces)
	require.NoError(t, err)

	pos := NewPosition(br)
	for sq := square.Square(0); sq < square.NumSquares; sq++ {
		if _, ok := pos.At(sq); ok {
			pos.remove(sq)
		}
	}
	pos.place(square.E1, material.New(material.White, material.King))
	pos.place(square.E8, material.New(material.Black, material.King))
	pos.place(square.C1, material.New(material.White, material.Bishop))

	b := &EngineBoard{core: core{moveState: NewMoveState(pos)}, repetitions: make(map[PositionKey]uint8)}
	b.updateResult()
	result := b.BoardResult()
	require.NotNil(t, result)
	assert.Equal(t, Insufficient, result.Kind)
}
