package verify

import (
	"errors"
	"strings"

	. "github.com/cricklet/shogigo/internal/bitboards"
	. "github.com/cricklet/shogigo/internal/helpers"
)

// Check is one family of encoding laws. Run returns every violation it
// finds joined into one Error.
type Check struct {
	Name string
	Run  func() Error
}

var Checks = []Check{
	{"square coordinates", checkSquareCoordinates},
	{"singleton bitboards", checkSingletons},
	{"file and rank masks", checkFileRankMasks},
	{"bitboard dumps", checkDumps},
	{"piece kinds", checkPieceKinds},
	{"pieces", checkPieces},
	{"raw piece integers", checkRawPieceIntegers},
}

type options struct {
	logger   Logger
	progress ProgressBar
}

type Option func(*options)

func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithProgress(progress ProgressBar) Option {
	return func(o *options) {
		o.progress = progress
	}
}

func Run(opts ...Option) Error {
	o := options{logger: SilentLogger, progress: SilentProgressBar}
	for _, opt := range opts {
		opt(&o)
	}
	defer o.progress.Close()

	result := ErrorRef{}
	for _, check := range Checks {
		err := check.Run()
		if err.HasError() {
			o.logger.Printf("%v: %v failures\n", check.Name, err.NumErrors())
		} else {
			o.logger.Printf("%v: ok\n", check.Name)
		}
		result.Add(err)
		o.progress.Add(1)
	}
	return result.Error()
}

func checkSquareCoordinates() Error {
	result := ErrorRef{}
	seen := [NumSquares]bool{}
	for file := File1; file <= File9; file++ {
		for rank := Rank1; rank <= Rank9; rank++ {
			square, err := SquareFromCoord(file, rank)
			if err.HasError() {
				result.Add(err)
				continue
			}
			if square.File() != file || square.Rank() != rank {
				result.Add(Errorf("%v decodes to file %v rank %v, expected %v %v", square, square.File(), square.Rank(), file, rank))
			}
			if !square.IsValid() || seen[square.Index()] {
				result.Add(Errorf("%v (file %v rank %v) is out of range or already used", square, file, rank))
				continue
			}
			seen[square.Index()] = true
		}
	}

	for _, invalid := range []Pair[File, Rank]{{First: NumFiles, Second: Rank1}, {First: File1, Second: NumRanks}} {
		_, err := SquareFromCoord(invalid.First, invalid.Second)
		if !errors.Is(err, ErrInvalidCoordinate) {
			result.Add(Errorf("file %v rank %v was accepted", invalid.First, invalid.Second))
		}
	}
	return result.Error()
}

func checkSingletons() Error {
	result := ErrorRef{}
	for _, square := range AllSquares {
		b := SingleBitboard(square)
		if b.Count() != 1 {
			result.Add(Errorf("singleton for %v has %v members", square, b.Count()))
		}
		first := b.FirstSquare()
		if first.IsEmpty() || first.Value() != square {
			result.Add(Errorf("singleton for %v does not have bit %v set", square, square.Index()))
		}
	}
	return result.Error()
}

func checkFileRankMasks() Error {
	result := ErrorRef{}

	if EmptyBitboard.Count() != 0 {
		result.Add(Errorf("EMPTY has %v members", EmptyBitboard.Count()))
	}
	if FullBitboard.Count() != NumSquares {
		result.Add(Errorf("FULL has %v members", FullBitboard.Count()))
	}
	if FullBitboard.Not() != EmptyBitboard {
		result.Add(Errorf("complement of FULL is not EMPTY"))
	}

	masks := []Pair[string, [NumFiles]Bitboard]{
		{First: "FILE", Second: MaskFiles},
		{First: "RANK", Second: MaskRanks},
	}
	for _, m := range masks {
		union := EmptyBitboard
		for i, a := range m.Second {
			for j, b := range m.Second {
				if i != j && a.And(b).IsAny() {
					result.Add(Errorf("%v_%v and %v_%v overlap", m.First, i+1, m.First, j+1))
				}
			}
			union = union.Or(a)
		}
		if union != FullBitboard {
			result.Add(Errorf("%v masks do not cover the board", m.First))
		}
	}
	return result.Error()
}

func dump(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func checkDumps() Error {
	zeros := "000000000"
	ones := "111111111"
	column := "010000000"

	fixtures := []Pair[string, Pair[Bitboard, string]]{
		{First: "EMPTY", Second: Pair[Bitboard, string]{First: EmptyBitboard, Second: dump(zeros, zeros, zeros, zeros, zeros, zeros, zeros, zeros, zeros)}},
		{First: "FULL", Second: Pair[Bitboard, string]{First: FullBitboard, Second: dump(ones, ones, ones, ones, ones, ones, ones, ones, ones)}},
		{First: "RANK_3", Second: Pair[Bitboard, string]{First: MaskRank3, Second: dump(zeros, zeros, ones, zeros, zeros, zeros, zeros, zeros, zeros)}},
		{First: "FILE_8", Second: Pair[Bitboard, string]{First: MaskFile8, Second: dump(column, column, column, column, column, column, column, column, column)}},
	}

	result := ErrorRef{}
	for _, fixture := range fixtures {
		b, expected := fixture.Second.First, fixture.Second.Second
		if actual := b.String(); actual != expected {
			result.Add(Errorf("%v dumps as\n%vexpected\n%v", fixture.First, actual, expected))
		}

		rows := [NumRanks]string{}
		copy(rows[:], strings.Split(expected, "\n"))
		if BitboardFromStrings(rows) != b {
			result.Add(Errorf("%v does not parse back from its dump", fixture.First))
		}
	}
	return result.Error()
}

func checkPieceKinds() Error {
	result := ErrorRef{}
	for _, kind := range AllPieceKinds {
		decoded, err := PieceKindFromInt(uint8(kind))
		if err.HasError() || decoded != kind {
			result.Add(Join(err, Errorf("%v does not round-trip through %v", kind, uint8(kind))))
		}

		promoted := kind.Promote()
		switch kind {
		case Pawn, Lance, Knight, Silver, Bishop, Rook:
			if promoted.IsEmpty() || !promoted.Value().IsPromoted() || promoted.Value()&^8 != kind {
				result.Add(Errorf("%v promotes to %v", kind, promoted.Value()))
			}
		default:
			if promoted.HasValue() {
				result.Add(Errorf("%v should not promote, got %v", kind, promoted.Value()))
			}
		}
	}
	return result.Error()
}

func checkPieces() Error {
	result := ErrorRef{}
	for _, color := range AllColors {
		for _, kind := range AllPieceKinds {
			piece := NewPiece(color, kind)
			if piece.Kind() != kind || piece.Color() != color {
				result.Add(Errorf("%v decomposes into %v %v, expected %v %v", piece, piece.Color(), piece.Kind(), color, kind))
			}
			if piece.IsBlack() == piece.IsWhite() {
				result.Add(Errorf("%v is black %v and white %v", piece, piece.IsBlack(), piece.IsWhite()))
			}

			promoted := piece.Promote()
			if promoted.HasValue() != kind.Promote().HasValue() {
				result.Add(Errorf("%v and %v disagree on promotion", piece, kind))
			} else if promoted.HasValue() && promoted.Value().Color() != color {
				result.Add(Errorf("%v changes color when promoted", piece))
			}
		}
	}
	return result.Error()
}

func checkRawPieceIntegers() Error {
	result := ErrorRef{}
	for value := 0; value < 256; value++ {
		_, kindErr := PieceKindFromInt(value)
		if (value < NumPieceKinds) == kindErr.HasError() {
			result.Add(Errorf("piece kind %v: unexpected decoding result %v", value, kindErr.Message()))
		} else if kindErr.HasError() && !errors.Is(kindErr, ErrInvalidPieceKind) {
			result.Add(Join(kindErr, Errorf("piece kind %v: wrong failure", value)))
		}

		piece, err := PieceFromInt(value)
		valid := value <= 13 || (value >= 16 && value <= 29)
		if valid != IsNil(err) {
			result.Add(Errorf("piece %v: unexpected decoding result %v", value, err.Message()))
			continue
		}
		if !valid && !errors.Is(err, ErrInvalidPiece) {
			result.Add(Join(err, Errorf("piece %v: wrong failure", value)))
		}
		if valid && int(piece) != value {
			result.Add(Errorf("piece %v decodes to %v", value, uint8(piece)))
		}
	}
	return result.Error()
}
