// Package perft walks the legal-move generation tree to a fixed depth
// and counts leaf nodes, the standard cross-check for a legal-move
// generator's correctness against published reference counts.
package perft

import (
	"github.com/riffsw/riff-chess/board"
	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// Count walks every legal move from b to depth plies and returns the
// number of leaf positions reached.
func Count(b *board.EngineBoard, depth int) int {
	moves := expand(b)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, mv := range moves {
		child := b.Clone()
		if _, err := child.SubmitMove(mv); err != nil {
			continue
		}
		nodes += Count(child, depth-1)
	}
	return nodes
}

// expand enumerates every move SubmitMove would accept from b,
// including each individual promotion choice: AllLegalMoves collapses
// every promotion on a given destination into one Standard-tagged
// entry, since resolving to a specific piece only happens inside
// ValidateMove.
func expand(b *board.EngineBoard) []board.Move {
	var out []board.Move
	for _, legal := range b.AllLegalMoves() {
		if isPromotionDestination(b, legal.From, legal.To) {
			for _, p := range []material.Promotion{
				material.PromoteQueen, material.PromoteRook,
				material.PromoteBishop, material.PromoteKnight,
			} {
				promo := p
				out = append(out, board.Move{From: legal.From, To: legal.To, Promotion: &promo})
			}
			continue
		}
		out = append(out, board.Move{From: legal.From, To: legal.To})
	}
	return out
}

func isPromotionDestination(b *board.EngineBoard, from, to square.Square) bool {
	m, ok := b.Position().At(from)
	if !ok || m.Piece != material.Pawn {
		return false
	}
	return to.Rank().IsBackRank(m.Color.Opposite())
}
