// Package backrank implements the 960 Chess960 starting configurations
// and the bijection between a BackRankId and its BackRank.
package backrank

import (
	"fmt"
	"math/rand/v2"

	"github.com/riffsw/riff-chess/material"
	"github.com/riffsw/riff-chess/square"
)

// NumConfigurations is the number of distinct Chess960 starting
// arrangements.
const NumConfigurations = 960

// StandardID is the BackRankId of the classic RNBQKBNR starting position.
const StandardID = 518

// Error is a BackRank construction failure.
type Error string

const (
	// ErrArgError means the supplied piece multiset was not a valid
	// back rank (wrong counts of kings, queens, rooks, bishops, knights).
	ErrArgError Error = "backrank: wrong piece multiset"
	// ErrMisplacedBishop means the two bishops do not occupy
	// opposite-colored squares.
	ErrMisplacedBishop Error = "backrank: bishops are not on opposite colors"
	// ErrMisplacedKing means the king is not strictly between the rooks.
	ErrMisplacedKing Error = "backrank: king is not between the rooks"
	// ErrOutOfRange means the requested id is outside 0..960.
	ErrOutOfRange Error = "backrank: id out of range"
	// ErrUnregistered means the arrangement is well-formed but does not
	// correspond to any canonical id.
	ErrUnregistered Error = "backrank: arrangement is not a registered configuration"
)

func (e Error) Error() string { return string(e) }

// ID identifies one of the 960 starting configurations.
type ID int

// Default is the standard chess starting position.
func Default() ID { return StandardID }

// Shuffled returns a uniformly random id in 0..960.
func Shuffled() ID { return ID(rand.IntN(NumConfigurations)) }

// Lookup resolves id to its BackRank, or ErrOutOfRange if id is outside
// 0..960.
func Lookup(id ID) (*BackRank, error) {
	if id < 0 || int(id) >= NumConfigurations {
		return nil, ErrOutOfRange
	}
	return &backRanks[id], nil
}

// MustLookup is Lookup but panics on error; used for ids already known to
// be valid (e.g. compile-time constants).
func MustLookup(id ID) *BackRank {
	br, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return br
}

// Standard returns the classic RNBQKBNR arrangement.
func Standard() *BackRank { return MustLookup(StandardID) }

// BackRank is one of the 960 immutable starting-rank arrangements: the
// piece on each file, plus the derived file of each piece kind.
type BackRank struct {
	id      ID
	pieces  [8]material.Piece
	king    square.File
	queen   square.File
	rooks   [2]square.File // [0] queenside, [1] kingside
	bishops [2]square.File // [0] dark-square file, [1] light-square file
	knights [2]square.File
}

// ID returns the canonical id of this back rank.
func (b *BackRank) ID() ID { return b.id }

// Piece returns the piece kind placed on file f.
func (b *BackRank) Piece(f square.File) material.Piece { return b.pieces[f] }

// KingFile returns the file of the king.
func (b *BackRank) KingFile() square.File { return b.king }

// QueenFile returns the file of the queen.
func (b *BackRank) QueenFile() square.File { return b.queen }

// RookFiles returns the rook files, queenside first.
func (b *BackRank) RookFiles() [2]square.File { return b.rooks }

// BishopFiles returns the bishop files, dark-square bishop first.
func (b *BackRank) BishopFiles() [2]square.File { return b.bishops }

// KnightFiles returns the knight files, ascending.
func (b *BackRank) KnightFiles() [2]square.File { return b.knights }

// backRanks is the process-wide immutable registry of all 960
// configurations, built once at package initialization.
var backRanks = buildBackRanks()

func buildBackRanks() [NumConfigurations]BackRank {
	var out [NumConfigurations]BackRank
	for n := 0; n < NumConfigurations; n++ {
		out[n] = newBackRank(ID(n))
	}
	return out
}

// skipTable maps the 10 possible remainders of n%10 to the pair of
// "skip counts" used to place the two knights among the files still
// empty after the bishops and queen have been seated.
var skipTable = [10][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3},
	{1, 1}, {1, 2}, {1, 3},
	{2, 2}, {2, 3},
	{3, 3},
}

// newBackRank constructs the n-th Chess960 starting arrangement using the
// canonical sequential-extraction algorithm: place the bishops on
// opposite-colored files, then the queen, then the knights via the
// skip-count table, then fill the three remaining files left to right
// with Rook, King, Rook.
func newBackRank(id ID) BackRank {
	n := int(id)
	var occupied [8]bool
	var pieces [8]material.Piece

	place := func(p material.Piece, emptySkip int) square.File {
		skipped := 0
		for f := square.FileA; f <= square.FileH; f++ {
			if occupied[f] {
				continue
			}
			if skipped == emptySkip {
				occupied[f] = true
				pieces[f] = p
				return f
			}
			skipped++
		}
		panic("backrank: ran out of empty files")
	}

	darkFiles := []square.File{square.FileA, square.FileC, square.FileE, square.FileG}
	lightFiles := []square.File{square.FileB, square.FileD, square.FileF, square.FileH}

	lightBishopFile := lightFiles[n%4]
	n /= 4
	darkBishopFile := darkFiles[n%4]
	n /= 4
	occupied[darkBishopFile] = true
	pieces[darkBishopFile] = material.Bishop
	occupied[lightBishopFile] = true
	pieces[lightBishopFile] = material.Bishop

	queenFile := place(material.Queen, n%6)
	n /= 6

	skips := skipTable[n%10]
	knightFile0 := place(material.Knight, skips[0])
	knightFile1 := place(material.Knight, skips[1])

	rookFile0 := place(material.Rook, 0)
	kingFile := place(material.King, 0)
	rookFile1 := place(material.Rook, 0)

	return BackRank{
		id:      id,
		pieces:  pieces,
		king:    kingFile,
		queen:   queenFile,
		rooks:   [2]square.File{rookFile0, rookFile1},
		bishops: [2]square.File{darkBishopFile, lightBishopFile},
		knights: sortedPair(knightFile0, knightFile1),
	}
}

func sortedPair(a, b square.File) [2]square.File {
	if a <= b {
		return [2]square.File{a, b}
	}
	return [2]square.File{b, a}
}

// FromPieces reconstructs the registered BackRank matching the given
// 8-file arrangement, validating the piece multiset, bishop coloring and
// king placement before searching the registry.
func FromPieces(pieces [8]material.Piece) (*BackRank, error) {
	var counts [6]int
	for _, p := range pieces {
		counts[p]++
	}
	if counts[material.King] != 1 || counts[material.Queen] != 1 ||
		counts[material.Rook] != 2 || counts[material.Bishop] != 2 ||
		counts[material.Knight] != 2 || counts[material.Pawn] != 0 {
		return nil, ErrArgError
	}

	var bishopFiles []square.File
	var rookFiles []square.File
	var kingFile square.File
	for f := square.FileA; f <= square.FileH; f++ {
		switch pieces[f] {
		case material.Bishop:
			bishopFiles = append(bishopFiles, f)
		case material.Rook:
			rookFiles = append(rookFiles, f)
		case material.King:
			kingFile = f
		}
	}
	if bishopFiles[0]%2 == bishopFiles[1]%2 {
		return nil, ErrMisplacedBishop
	}
	if !(rookFiles[0] < kingFile && kingFile < rookFiles[1]) {
		return nil, ErrMisplacedKing
	}

	for i := range backRanks {
		if backRanks[i].pieces == pieces {
			return &backRanks[i], nil
		}
	}
	return nil, ErrUnregistered
}

func (b *BackRank) String() string {
	buf := make([]byte, 0, 8)
	for f := square.FileA; f <= square.FileH; f++ {
		buf = append(buf, pieceLetter(b.pieces[f])...)
	}
	return fmt.Sprintf("%s (#%d)", buf, b.id)
}

func pieceLetter(p material.Piece) string {
	switch p {
	case material.King:
		return "K"
	case material.Queen:
		return "Q"
	case material.Rook:
		return "R"
	case material.Bishop:
		return "B"
	case material.Knight:
		return "N"
	default:
		return "P"
	}
}
