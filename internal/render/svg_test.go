package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/cricklet/shogigo/internal/bitboards"
	. "github.com/cricklet/shogigo/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestWriteBitboardSVG(t *testing.T) {
	boards := []Bitboard{EmptyBitboard, FullBitboard, MaskFile8, MaskRank3, SingleBitboard(SQ_65)}
	for _, b := range boards {
		out := bytes.Buffer{}
		err := WriteBitboardSVG(&out, b)
		assert.True(t, IsNil(err))

		text := out.String()
		assert.Contains(t, text, "<svg")
		assert.Contains(t, text, "</svg>")
		assert.Equal(t, b.Count(), strings.Count(text, MemberStyle))
		assert.Equal(t, NumSquares-b.Count(), strings.Count(text, EmptyStyle))
	}
}

func TestWriteBitboardSVGOrientation(t *testing.T) {
	out := bytes.Buffer{}
	err := WriteBitboardSVG(&out, SingleBitboard(SQ_11), WithCellSize(10))
	assert.True(t, IsNil(err))

	// SQ_11 sits in the top right cell: x = margin + 8*cell, y = margin
	assert.Contains(t, out.String(), `x="85" y="5" width="10" height="10" style="`+MemberStyle)
}

func TestWriteBitboardSVGOptions(t *testing.T) {
	out := bytes.Buffer{}
	err := WriteBitboardSVG(&out, MaskRank1, WithTitle("RANK_1"), WithCellSize(20))
	assert.True(t, IsNil(err))
	assert.Contains(t, out.String(), "<title>RANK_1</title>")
	assert.Contains(t, out.String(), `width="200" height="200"`)

	err = WriteBitboardSVG(&out, MaskRank1, WithCellSize(0))
	assert.True(t, err.HasError())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteBitboardSVGWriteError(t *testing.T) {
	err := WriteBitboardSVG(failingWriter{}, FullBitboard)
	assert.True(t, err.HasError())
	assert.Equal(t, "disk full", err.Message())
}
