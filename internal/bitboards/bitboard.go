package bitboards

import (
	"math/bits"
	"strings"

	. "github.com/cricklet/shogigo/internal/helpers"
)

// Bitboard is a set of squares, bit i for the square with index i. Squares
// 0..63 live in lo and squares 64..80 in the low 17 bits of hi. Every
// Bitboard handed out keeps bits 81 and up clear.
type Bitboard struct {
	lo uint64
	hi uint64
}

const (
	_loSquares = 64
	_hiMask    = uint64(1)<<(NumSquares-_loSquares) - 1

	_fileBits uint64 = 0x1FF

	// bits 0, 9, ..., 72 of the 81-bit board
	_rankBitsLo uint64 = 0x8040201008040201
	_rankBitsHi uint64 = 0x100
)

var EmptyBitboard = Bitboard{}
var FullBitboard = Bitboard{^uint64(0), _hiMask}

// MaskFiles[f] is the contiguous run of 9 bits starting at 9*f.
var MaskFiles = func() [NumFiles]Bitboard {
	result := [NumFiles]Bitboard{}
	for file := 0; file < NumFiles; file++ {
		result[file] = ShiftTowardsIndex81(Bitboard{_fileBits, 0}, file*NumRanks)
	}
	return result
}()

// MaskRanks[r] selects bits r, r+9, ..., r+72.
var MaskRanks = func() [NumRanks]Bitboard {
	result := [NumRanks]Bitboard{}
	for rank := 0; rank < NumRanks; rank++ {
		result[rank] = ShiftTowardsIndex81(Bitboard{_rankBitsLo, _rankBitsHi}, rank)
	}
	return result
}()

var (
	MaskFile1 = MaskFiles[File1]
	MaskFile2 = MaskFiles[File2]
	MaskFile3 = MaskFiles[File3]
	MaskFile4 = MaskFiles[File4]
	MaskFile5 = MaskFiles[File5]
	MaskFile6 = MaskFiles[File6]
	MaskFile7 = MaskFiles[File7]
	MaskFile8 = MaskFiles[File8]
	MaskFile9 = MaskFiles[File9]

	MaskRank1 = MaskRanks[Rank1]
	MaskRank2 = MaskRanks[Rank2]
	MaskRank3 = MaskRanks[Rank3]
	MaskRank4 = MaskRanks[Rank4]
	MaskRank5 = MaskRanks[Rank5]
	MaskRank6 = MaskRanks[Rank6]
	MaskRank7 = MaskRanks[Rank7]
	MaskRank8 = MaskRanks[Rank8]
	MaskRank9 = MaskRanks[Rank9]
)

var SingleBitboards [NumSquares]Bitboard = func() [NumSquares]Bitboard {
	result := [NumSquares]Bitboard{}
	for i := 0; i < NumSquares; i++ {
		result[i] = ShiftTowardsIndex81(Bitboard{1, 0}, i)
	}
	return result
}()

func SingleBitboard(square Square) Bitboard {
	return SingleBitboards[square.Index()]
}

func FileMask(file File) Bitboard {
	return MaskFiles[file]
}

func RankMask(rank Rank) Bitboard {
	return MaskRanks[rank]
}

func BitboardWithAllSquaresSet(squares []Square) Bitboard {
	return ReduceSlice(
		squares,
		EmptyBitboard,
		func(result Bitboard, square Square) Bitboard {
			return result.Or(SingleBitboard(square))
		},
	)
}

// BitboardFromWords drops any bits above square 80.
func BitboardFromWords(lo uint64, hi uint64) Bitboard {
	return Bitboard{lo, hi & _hiMask}
}

func (b Bitboard) Words() (uint64, uint64) {
	return b.lo, b.hi
}

// ShiftTowardsIndex81 moves every square n indices up, dropping whatever
// passes square 80. A negative n leaves b unchanged.
func ShiftTowardsIndex81(b Bitboard, n int) Bitboard {
	switch {
	case n <= 0:
		return b
	case n < _loSquares:
		return Bitboard{b.lo << n, (b.hi<<n | b.lo>>(_loSquares-n)) & _hiMask}
	case n < 2*_loSquares:
		return Bitboard{0, (b.lo << (n - _loSquares)) & _hiMask}
	default:
		return EmptyBitboard
	}
}

func (b Bitboard) And(other Bitboard) Bitboard {
	return Bitboard{b.lo & other.lo, b.hi & other.hi}
}

func (b Bitboard) Or(other Bitboard) Bitboard {
	return Bitboard{b.lo | other.lo, b.hi | other.hi}
}

func (b Bitboard) Xor(other Bitboard) Bitboard {
	return Bitboard{b.lo ^ other.lo, b.hi ^ other.hi}
}

func (b Bitboard) AndNot(other Bitboard) Bitboard {
	return Bitboard{b.lo &^ other.lo, b.hi &^ other.hi}
}

// Not is the complement within the 81 board squares.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b.lo, ^b.hi & _hiMask}
}

func (b Bitboard) Count() int {
	return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi)
}

func (b Bitboard) IsEmpty() bool {
	return b.lo|b.hi == 0
}

func (b Bitboard) IsAny() bool {
	return b.lo|b.hi != 0
}

func (b Bitboard) Has(square Square) bool {
	return b.And(SingleBitboard(square)).IsAny()
}

func (b Bitboard) With(square Square) Bitboard {
	return b.Or(SingleBitboard(square))
}

func (b Bitboard) Without(square Square) Bitboard {
	return b.AndNot(SingleBitboard(square))
}

// FirstSquare is the member with the lowest index.
func (b Bitboard) FirstSquare() Optional[Square] {
	if b.lo != 0 {
		return Some(Square(bits.TrailingZeros64(b.lo)))
	}
	if b.hi != 0 {
		return Some(Square(_loSquares + bits.TrailingZeros64(b.hi)))
	}
	return Empty[Square]()
}

// NextSquare pops the lowest member. b must not be empty.
func (b Bitboard) NextSquare() (Square, Bitboard) {
	square := b.FirstSquare().Value()
	return square, b.Without(square)
}

func (b Bitboard) EachSquare(callback func(Square)) {
	for temp := b; temp.IsAny(); {
		var square Square
		square, temp = temp.NextSquare()
		callback(square)
	}
}

// String prints rank 1 on the first line; within a line files run from 9
// down to 1, which is how the board looks from black's side.
func (b Bitboard) String() string {
	var builder strings.Builder
	builder.Grow(NumRanks * (NumFiles + 1))

	for rank := Rank1; rank <= Rank9; rank++ {
		for file := NumFiles - 1; file >= 0; file-- {
			// in range by construction
			square, _ := SquareFromCoord(File(file), rank)
			if b.Has(square) {
				builder.WriteByte('1')
			} else {
				builder.WriteByte('0')
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

// BitboardFromStrings reads the layout printed by String. Anything other
// than '1' is an empty square; characters past the ninth are ignored.
func BitboardFromStrings(lines [NumRanks]string) Bitboard {
	b := EmptyBitboard
	for rank, line := range lines {
		for column, c := range []byte(line) {
			if column >= NumFiles {
				break
			}
			if c == '1' {
				square, _ := SquareFromCoord(File(NumFiles-1-column), Rank(rank))
				b = b.With(square)
			}
		}
	}
	return b
}
