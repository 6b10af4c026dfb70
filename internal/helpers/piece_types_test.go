package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceKindFromInt(t *testing.T) {
	for i, kind := range AllPieceKinds {
		decoded, err := PieceKindFromInt(uint8(kind))
		assert.True(t, IsNil(err))
		assert.Equal(t, kind, decoded)
		assert.Equal(t, i, int(kind))
	}

	for _, value := range []int{-1, 14, 15, 16, 255, 1 << 20} {
		_, err := PieceKindFromInt(value)
		assert.ErrorIs(t, err, ErrInvalidPieceKind, "%v", value)
	}
}

func TestPieceKindPromotionBit(t *testing.T) {
	assert.Equal(t, PieceKind(8), ProPawn)
	assert.Equal(t, PieceKind(12), Horse)
	assert.Equal(t, PieceKind(13), Dragon)

	for _, kind := range AllPieceKinds {
		assert.Equal(t, kind >= ProPawn, kind.IsPromoted(), kind.String())
		if kind.IsPromoted() {
			// the low 3 bits recover the base kind
			assert.Equal(t, kind, (kind&7).Promote().Value())
		}
	}
}

func TestPromote(t *testing.T) {
	cases := []Pair[PieceKind, Optional[PieceKind]]{
		{Pawn, Some(ProPawn)},
		{Lance, Some(ProLance)},
		{Knight, Some(ProKnight)},
		{Silver, Some(ProSilver)},
		{Bishop, Some(Horse)},
		{Rook, Some(Dragon)},
		{Gold, Empty[PieceKind]()},
		{King, Empty[PieceKind]()},
		{ProPawn, Empty[PieceKind]()},
		{ProLance, Empty[PieceKind]()},
		{ProKnight, Empty[PieceKind]()},
		{ProSilver, Empty[PieceKind]()},
		{Horse, Empty[PieceKind]()},
		{Dragon, Empty[PieceKind]()},
	}
	for _, c := range cases {
		assert.Equal(t, c.Second, c.First.Promote(), c.First.String())
	}
}

func TestNewPiece(t *testing.T) {
	for _, color := range AllColors {
		for _, kind := range AllPieceKinds {
			piece := NewPiece(color, kind)
			assert.Equal(t, kind, piece.Kind())
			assert.Equal(t, color, piece.Color())
			assert.Equal(t, kind.IsPromoted(), piece.IsPromoted())
			assert.True(t, piece.IsValid())

			assert.NotEqual(t, piece.IsBlack(), piece.IsWhite())
			assert.Equal(t, color == Black, piece.IsBlack())
			assert.Equal(t, color == White, piece.IsWhite())
		}
	}

	assert.Equal(t, Piece(0), BPawn)
	assert.Equal(t, Piece(13), BDragon)
	assert.Equal(t, Piece(16), WPawn)
	assert.Equal(t, Piece(29), WDragon)
	assert.Equal(t, WHorse, NewPiece(White, Horse))
}

func TestPiecePromote(t *testing.T) {
	cases := []Pair[Piece, Optional[Piece]]{
		{BPawn, Some(BProPawn)},
		{BLance, Some(BProLance)},
		{BKnight, Some(BProKnight)},
		{BSilver, Some(BProSilver)},
		{BBishop, Some(BHorse)},
		{BRook, Some(BDragon)},
		{BGold, Empty[Piece]()},
		{BKing, Empty[Piece]()},
		{BProPawn, Empty[Piece]()},
		{BDragon, Empty[Piece]()},
		{WPawn, Some(WProPawn)},
		{WLance, Some(WProLance)},
		{WKnight, Some(WProKnight)},
		{WSilver, Some(WProSilver)},
		{WBishop, Some(WHorse)},
		{WRook, Some(WDragon)},
		{WGold, Empty[Piece]()},
		{WKing, Empty[Piece]()},
		{WProSilver, Empty[Piece]()},
		{WHorse, Empty[Piece]()},
	}
	for _, c := range cases {
		assert.Equal(t, c.Second, c.First.Promote(), c.First.String())
		if c.Second.HasValue() {
			assert.False(t, c.First.IsPromoted())
			assert.True(t, c.Second.Value().IsPromoted())
		}
	}
}

func TestPieceFromInt(t *testing.T) {
	valid := 0
	for value := 0; value < 256; value++ {
		piece, err := PieceFromInt(value)
		inRange := value <= 13 || (value >= 16 && value <= 29)
		if inRange {
			assert.True(t, IsNil(err), "%v", value)
			assert.Equal(t, value, int(piece))
			valid++
		} else {
			assert.ErrorIs(t, err, ErrInvalidPiece, "%v", value)
			assert.False(t, Piece(value).IsValid())
		}
	}
	assert.Equal(t, NumPieces, valid)

	_, err := PieceFromInt(int8(-1))
	assert.ErrorIs(t, err, ErrInvalidPiece)
}

func TestAllPieces(t *testing.T) {
	seen := map[Piece]bool{}
	for _, piece := range AllPieces {
		decoded, err := PieceFromInt(uint8(piece))
		assert.True(t, IsNil(err))
		assert.Equal(t, piece, decoded)
		seen[piece] = true
	}
	assert.Equal(t, NumPieces, len(seen))
}

func TestPieceStrings(t *testing.T) {
	assert.Equal(t, "BPawn", BPawn.String())
	assert.Equal(t, "WDragon", WDragon.String())
	assert.Equal(t, "Piece(14)", Piece(14).String())
	assert.Equal(t, "ProSilver", ProSilver.String())
	assert.Equal(t, "PieceKind(14)", PieceKind(14).String())
	assert.Equal(t, "white", Black.Other().String())
	assert.Equal(t, Black, White.Other())
}
