package helpers

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidPieceKind = errors.New("invalid piece kind")
	ErrInvalidPiece     = errors.New("invalid piece")
)

type Color uint8

const (
	Black Color = iota
	White
)

const NumColors = 2

var AllColors = [NumColors]Color{Black, White}

var _colorStrings = [NumColors]string{
	"black", "white",
}

func (c Color) String() string {
	if c >= NumColors {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return _colorStrings[c]
}

func (c Color) Other() Color {
	return c ^ 1
}

// PieceKind packs the base kind into the low 3 bits and the promotion flag
// into bit 3. Gold and King have no promoted form.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Lance
	Knight
	Silver
	Bishop
	Rook
	Gold
	King
)

const (
	ProPawn   = Pawn | promotedBit
	ProLance  = Lance | promotedBit
	ProKnight = Knight | promotedBit
	ProSilver = Silver | promotedBit
	Horse     = Bishop | promotedBit
	Dragon    = Rook | promotedBit
)

const (
	promotedBit   PieceKind = 0x08
	pieceKindMask Piece     = 0x0F
	whiteBit      Piece     = 0x10
	colorShift              = 4

	maxPieceValue = 0x1F
)

const NumPieceKinds = 14

var AllPieceKinds = [NumPieceKinds]PieceKind{
	Pawn, Lance, Knight, Silver, Bishop, Rook, Gold, King,
	ProPawn, ProLance, ProKnight, ProSilver, Horse, Dragon,
}

var _pieceKindStrings = [NumPieceKinds]string{
	"Pawn", "Lance", "Knight", "Silver", "Bishop", "Rook", "Gold", "King",
	"ProPawn", "ProLance", "ProKnight", "ProSilver", "Horse", "Dragon",
}

// PieceKindFromInt is the inverse of uint8(kind) over 0..13.
func PieceKindFromInt[T constraints.Integer](value T) (PieceKind, Error) {
	if value < 0 || value >= NumPieceKinds {
		return 0, Errorf("%w: %v is outside [0, %v]", ErrInvalidPieceKind, value, NumPieceKinds-1)
	}
	return PieceKind(value), NilError
}

func (k PieceKind) IsValid() bool {
	return k < NumPieceKinds
}

func (k PieceKind) IsPromoted() bool {
	return k&promotedBit != 0
}

// Promote is empty for Gold, King and kinds that are already promoted.
func (k PieceKind) Promote() Optional[PieceKind] {
	switch k {
	case Pawn, Lance, Knight, Silver, Bishop, Rook:
		return Some(k | promotedBit)
	}
	return Empty[PieceKind]()
}

func (k PieceKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("PieceKind(%d)", uint8(k))
	}
	return _pieceKindStrings[k]
}

// Piece is a PieceKind with the color in bit 4: black pieces are 0..13 and
// white pieces 16..29. 14, 15 and 30+ are not pieces.
type Piece uint8

const (
	BPawn      = Piece(Pawn)
	BLance     = Piece(Lance)
	BKnight    = Piece(Knight)
	BSilver    = Piece(Silver)
	BBishop    = Piece(Bishop)
	BRook      = Piece(Rook)
	BGold      = Piece(Gold)
	BKing      = Piece(King)
	BProPawn   = Piece(ProPawn)
	BProLance  = Piece(ProLance)
	BProKnight = Piece(ProKnight)
	BProSilver = Piece(ProSilver)
	BHorse     = Piece(Horse)
	BDragon    = Piece(Dragon)

	WPawn      = Piece(Pawn) | whiteBit
	WLance     = Piece(Lance) | whiteBit
	WKnight    = Piece(Knight) | whiteBit
	WSilver    = Piece(Silver) | whiteBit
	WBishop    = Piece(Bishop) | whiteBit
	WRook      = Piece(Rook) | whiteBit
	WGold      = Piece(Gold) | whiteBit
	WKing      = Piece(King) | whiteBit
	WProPawn   = Piece(ProPawn) | whiteBit
	WProLance  = Piece(ProLance) | whiteBit
	WProKnight = Piece(ProKnight) | whiteBit
	WProSilver = Piece(ProSilver) | whiteBit
	WHorse     = Piece(Horse) | whiteBit
	WDragon    = Piece(Dragon) | whiteBit
)

const NumPieces = NumColors * NumPieceKinds

var AllPieces = func() [NumPieces]Piece {
	result := [NumPieces]Piece{}
	for i, color := range AllColors {
		for j, kind := range AllPieceKinds {
			result[i*NumPieceKinds+j] = NewPiece(color, kind)
		}
	}
	return result
}()

var _colorPrefixes = [NumColors]string{
	"B", "W",
}

func NewPiece(color Color, kind PieceKind) Piece {
	return Piece(kind) | Piece(color)<<colorShift
}

// PieceFromInt is the inverse of uint8(piece) over {0..13, 16..29}.
func PieceFromInt[T constraints.Integer](value T) (Piece, Error) {
	if value < 0 || value > maxPieceValue || !PieceKind(Piece(value)&pieceKindMask).IsValid() {
		return 0, Errorf("%w: %v is outside {0..13, 16..29}", ErrInvalidPiece, value)
	}
	return Piece(value), NilError
}

func (p Piece) IsValid() bool {
	return p <= maxPieceValue && p.Kind().IsValid()
}

func (p Piece) Kind() PieceKind {
	return PieceKind(p & pieceKindMask)
}

func (p Piece) Color() Color {
	return Color(p >> colorShift)
}

func (p Piece) IsBlack() bool {
	return p&whiteBit == 0
}

func (p Piece) IsWhite() bool {
	return p&whiteBit != 0
}

func (p Piece) IsPromoted() bool {
	return p.Kind().IsPromoted()
}

func (p Piece) Promote() Optional[Piece] {
	promoted := p.Kind().Promote()
	if promoted.IsEmpty() {
		return Empty[Piece]()
	}
	return Some(NewPiece(p.Color(), promoted.Value()))
}

func (p Piece) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Piece(%d)", uint8(p))
	}
	return _colorPrefixes[p.Color()] + p.Kind().String()
}
