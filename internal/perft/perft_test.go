package perft

import (
	"testing"

	"github.com/riffsw/riff-chess/board"
	"github.com/stretchr/testify/assert"
)

// Reference counts from https://www.chessprogramming.org/Perft_Results
// for the standard starting position.
func TestStandardPosition(t *testing.T) {
	cases := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		got := Count(board.NewEngineBoard(), c.depth)
		assert.Equalf(t, c.nodes, got, "depth %d", c.depth)
	}
}
