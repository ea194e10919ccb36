package board

import "github.com/riffsw/riff-chess/square"

// This file holds the geometry tables consumed by move generation and
// castling: per-square move masks for every piece kind, and the
// between/shielded/blocked ray tables used to resolve checks, pins and
// castling lanes. Every table is a pure function of square indices and
// is built once, at package initialization, behind Go's own one-time
// guarantee for package-level variable initializers.

var (
	kingMoves   [square.NumSquares]square.Mask
	knightMoves [square.NumSquares]square.Mask
	horizontals [square.NumSquares]square.Mask
	diagonals   [square.NumSquares]square.Mask
	allLines    [square.NumSquares]square.Mask
	queenMoves  [square.NumSquares]square.Mask
	rookMoves   [square.NumSquares]square.Mask
	bishopMoves [square.NumSquares]square.Mask

	whitePawnSingle  [square.NumSquares]square.Mask
	whitePawnDouble  [square.NumSquares]square.Mask
	whitePawnAttacks [square.NumSquares]square.Mask
	blackPawnSingle  [square.NumSquares]square.Mask
	blackPawnDouble  [square.NumSquares]square.Mask
	blackPawnAttacks [square.NumSquares]square.Mask

	squaresBetween  [square.NumSquares][square.NumSquares]square.Mask
	squaresShielded [square.NumSquares][square.NumSquares]square.Mask
)

var knightOffsets = []square.Offset{
	{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
	{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
}

func rayMask(s square.Square, dirs []square.Direction) square.Mask {
	var m square.Mask
	for _, d := range dirs {
		off := d.Offset()
		cur, ok := s.Add(off)
		for ok {
			m.Set(cur)
			cur, ok = cur.Add(off)
		}
	}
	return m
}

func stepMask(s square.Square, offsets []square.Offset) square.Mask {
	var m square.Mask
	for _, off := range offsets {
		if dst, ok := s.Add(off); ok {
			m.Set(dst)
		}
	}
	return m
}

func allSquares() []square.Square {
	out := make([]square.Square, square.NumSquares)
	for i := range out {
		out[i] = square.Square(i)
	}
	return out
}

func init() {
	kingDirOffsets := make([]square.Offset, 0, 8)
	for _, d := range square.AllDirections() {
		kingDirOffsets = append(kingDirOffsets, d.Offset())
	}

	for _, s := range allSquares() {
		kingMoves[s] = stepMask(s, kingDirOffsets)
		knightMoves[s] = stepMask(s, knightOffsets)
		horizontals[s] = rayMask(s, square.Horizontals())
		diagonals[s] = rayMask(s, square.Diagonals())
		allLines[s] = horizontals[s] | diagonals[s]
		rookMoves[s] = horizontals[s]
		bishopMoves[s] = diagonals[s]
		queenMoves[s] = allLines[s]
	}

	for _, s := range allSquares() {
		if s.Rank() != square.Rank8 {
			whitePawnSingle[s] = stepMask(s, []square.Offset{{X: 0, Y: 1}})
		}
		if s.Rank() == square.Rank2 {
			whitePawnDouble[s] = stepMask(s, []square.Offset{{X: 0, Y: 2}})
		}
		if s.Rank() != square.Rank8 {
			whitePawnAttacks[s] = stepMask(s, []square.Offset{{X: -1, Y: 1}, {X: 1, Y: 1}})
		}

		if s.Rank() != square.Rank1 {
			blackPawnSingle[s] = stepMask(s, []square.Offset{{X: 0, Y: -1}})
		}
		if s.Rank() == square.Rank7 {
			blackPawnDouble[s] = stepMask(s, []square.Offset{{X: 0, Y: -2}})
		}
		if s.Rank() != square.Rank1 {
			blackPawnAttacks[s] = stepMask(s, []square.Offset{{X: -1, Y: -1}, {X: 1, Y: -1}})
		}
	}

	buildRayTables()
}

// buildRayTables fills squaresBetween and squaresShielded for every pair
// of collinear squares.
func buildRayTables() {
	for _, from := range allSquares() {
		for _, to := range allSquares() {
			if from == to || !allLines[from].Contains(to) {
				continue
			}
			step, ok := to.Sub(from).Unit()
			if !ok {
				continue
			}
			squaresBetween[from][to] = betweenMask(from, to, step)
			squaresShielded[from][to] = shieldedMask(to, step)
		}
	}
}

func betweenMask(from, to square.Square, step square.Offset) square.Mask {
	var m square.Mask
	cur, ok := from.Add(step)
	for ok && cur != to {
		m.Set(cur)
		cur, ok = cur.Add(step)
	}
	return m
}

func shieldedMask(to square.Square, step square.Offset) square.Mask {
	var m square.Mask
	cur, ok := to.Add(step)
	for ok {
		m.Set(cur)
		cur, ok = cur.Add(step)
	}
	return m
}

// between returns the squares strictly between a and b if they lie on a
// common line, else the empty mask.
func between(a, b square.Square) square.Mask { return squaresBetween[a][b] }

// shielded returns the squares on the ray from a through b, strictly
// past b, up to the board edge, if a and b are collinear; else empty.
func shielded(a, b square.Square) square.Mask { return squaresShielded[a][b] }

// blocked is shielded plus b itself.
func blocked(a, b square.Square) square.Mask { return shielded(a, b) | b.ToMask() }
