package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"

	. "github.com/cricklet/shogigo/internal/bitboards"
	. "github.com/cricklet/shogigo/internal/helpers"
	"github.com/cricklet/shogigo/internal/render"
	"github.com/cricklet/shogigo/internal/verify"
)

func namedMasks() []Pair[string, Bitboard] {
	result := []Pair[string, Bitboard]{
		{First: "EMPTY", Second: EmptyBitboard},
		{First: "FULL", Second: FullBitboard},
	}
	for file := File1; file <= File9; file++ {
		result = append(result, Pair[string, Bitboard]{First: "FILE_" + file.String(), Second: FileMask(file)})
	}
	for rank := Rank1; rank <= Rank9; rank++ {
		result = append(result, Pair[string, Bitboard]{First: "RANK_" + rank.String(), Second: RankMask(rank)})
	}
	return result
}

func maskByName(name string) (Bitboard, Error) {
	mask := FindInSlice(namedMasks(), func(p Pair[string, Bitboard]) bool {
		return p.First == name
	})
	if mask.HasValue() {
		return mask.Value().Second, NilError
	}

	square := FindInSlice(AllSquares[:], func(s Square) bool {
		return s.String() == name
	})
	if square.HasValue() {
		return SingleBitboard(square.Value()), NilError
	}

	return EmptyBitboard, Errorf("unknown mask %v, expected EMPTY, FULL, FILE_<n>, RANK_<n> or SQ_<file><rank>", name)
}

func printMasks() {
	for _, mask := range namedMasks() {
		fmt.Printf("%v (%v squares)\n%v\n", mask.First, mask.Second.Count(), mask.Second)
	}
}

func printSquare(args []string) Error {
	if len(args) != 2 {
		return Errorf("usage: shogiboard square <file> <rank>")
	}
	file, err := WrapReturn(strconv.Atoi(args[0]))
	if err.HasError() {
		return err
	}
	rank, err := WrapReturn(strconv.Atoi(args[1]))
	if err.HasError() {
		return err
	}
	if file < 0 || rank < 0 {
		return Errorf("%w: file %v rank %v", ErrInvalidCoordinate, file, rank)
	}

	square, err := SquareFromCoord(File(MinInt(file, 255)), Rank(MinInt(rank, 255)))
	if err.HasError() {
		return err
	}

	fmt.Printf("%v index %v\n%v", square, square.Index(), SingleBitboard(square))
	return NilError
}

// printPieces lists every raw integer below 32. verbose adds a spew dump of
// the decoded piece and its promotion.
func printPieces(out io.Writer, verbose bool) {
	for value := 0; value < 32; value++ {
		piece, err := PieceFromInt(value)
		if err.HasError() {
			fmt.Fprintf(out, "%2d  %v\n", value, err.Message())
			continue
		}

		promoted := piece.Promote()
		promotion := "-"
		if promoted.HasValue() {
			promotion = promoted.Value().String()
		}
		fmt.Fprintf(out, "%2d  %-11v %-6v %-10v promoted=%-5v promotes to %v\n",
			value, piece, piece.Color(), piece.Kind(), piece.IsPromoted(), promotion)

		if verbose {
			fmt.Fprint(out, Indent(spew.Sdump(piece, promoted), "    "))
		}
	}
}

func writeSvg(args []string) Error {
	if len(args) != 1 {
		return Errorf("usage: shogiboard svg <mask>")
	}
	mask, err := maskByName(args[0])
	if err.HasError() {
		return err
	}
	return render.WriteBitboardSVG(os.Stdout, mask, render.WithTitle(args[0]))
}

func runChecks() Error {
	logger := NewLiveLogger()
	progress := CreateProgressBar(len(verify.Checks), "checks")

	start := time.Now()
	err := verify.Run(
		verify.WithLogger(NewFooterLogger(logger, 0)),
		verify.WithProgress(progress),
	)
	logger.FlushFooter()
	if err.HasError() {
		return err
	}

	elapsed := time.Since(start)
	logger.Printf("%v checks passed in %v ns (%v squares, %v pieces, 256 raw integers)\n",
		len(verify.Checks), humanize.Comma(elapsed.Nanoseconds()), NumSquares, NumPieces)
	return NilError
}

func usage() {
	fmt.Println("usage:")
	fmt.Println(" > shogiboard masks")
	fmt.Println(" > shogiboard square <file> <rank>")
	fmt.Println(" > shogiboard pieces [-v]")
	fmt.Println(" > shogiboard svg <mask>")
	fmt.Println(" > shogiboard check [profile]")
}

func run(args []string) Error {
	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdShogiboard"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	verbose := Contains(args, "-v")
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile" && arg != "-v"
	})

	if len(args) == 0 {
		usage()
		return NilError
	}

	switch args[0] {
	case "masks":
		printMasks()
	case "square":
		return printSquare(args[1:])
	case "pieces":
		printPieces(os.Stdout, verbose)
	case "svg":
		return writeSvg(args[1:])
	case "check":
		return runChecks()
	default:
		usage()
	}
	return NilError
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(2)
		}
	}()

	err := run(os.Args[1:])
	if err.HasError() {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
