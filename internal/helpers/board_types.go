package helpers

import (
	"errors"
	"strconv"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

type File uint8
type Rank uint8

const (
	NumFiles   = 9
	NumRanks   = 9
	NumSquares = NumFiles * NumRanks
)

const (
	File1 File = iota
	File2
	File3
	File4
	File5
	File6
	File7
	File8
	File9
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
)

func (f File) IsValid() bool {
	return f < NumFiles
}

func (r Rank) IsValid() bool {
	return r < NumRanks
}

// String is the 1-based display digit.
func (f File) String() string {
	return strconv.Itoa(int(f) + 1)
}

func (r Rank) String() string {
	return strconv.Itoa(int(r) + 1)
}

// Square is a board square stored file-major: index = file*9 + rank, so the
// nine squares of a file are adjacent indices while a rank is strided by 9.
type Square uint8

// Squares are named with 1-based file then rank digits: SQ_65 is file 6, rank 5.
const (
	SQ_11 Square = iota
	SQ_12
	SQ_13
	SQ_14
	SQ_15
	SQ_16
	SQ_17
	SQ_18
	SQ_19

	SQ_21
	SQ_22
	SQ_23
	SQ_24
	SQ_25
	SQ_26
	SQ_27
	SQ_28
	SQ_29

	SQ_31
	SQ_32
	SQ_33
	SQ_34
	SQ_35
	SQ_36
	SQ_37
	SQ_38
	SQ_39

	SQ_41
	SQ_42
	SQ_43
	SQ_44
	SQ_45
	SQ_46
	SQ_47
	SQ_48
	SQ_49

	SQ_51
	SQ_52
	SQ_53
	SQ_54
	SQ_55
	SQ_56
	SQ_57
	SQ_58
	SQ_59

	SQ_61
	SQ_62
	SQ_63
	SQ_64
	SQ_65
	SQ_66
	SQ_67
	SQ_68
	SQ_69

	SQ_71
	SQ_72
	SQ_73
	SQ_74
	SQ_75
	SQ_76
	SQ_77
	SQ_78
	SQ_79

	SQ_81
	SQ_82
	SQ_83
	SQ_84
	SQ_85
	SQ_86
	SQ_87
	SQ_88
	SQ_89

	SQ_91
	SQ_92
	SQ_93
	SQ_94
	SQ_95
	SQ_96
	SQ_97
	SQ_98
	SQ_99
)

var AllSquares = func() [NumSquares]Square {
	result := [NumSquares]Square{}
	for i := range result {
		result[i] = Square(i)
	}
	return result
}()

func SquareFromCoord(file File, rank Rank) (Square, Error) {
	if !file.IsValid() || !rank.IsValid() {
		return 0, Errorf("%w: file %v and rank %v must both be in [0, 9)", ErrInvalidCoordinate, uint8(file), uint8(rank))
	}
	return Square(uint8(file)*NumRanks + uint8(rank)), NilError
}

func SquareFromIndex(index int) (Square, Error) {
	if index < 0 || index >= NumSquares {
		return 0, Errorf("%w: index %v must be in [0, %v)", ErrInvalidCoordinate, index, NumSquares)
	}
	return Square(index), NilError
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) File() File {
	return File(s / NumRanks)
}

func (s Square) Rank() Rank {
	return Rank(s % NumRanks)
}

func (s Square) Index() int {
	return int(s)
}

func (s Square) String() string {
	if !s.IsValid() {
		return "SQ_??"
	}
	return "SQ_" + s.File().String() + s.Rank().String()
}
