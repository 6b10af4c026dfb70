package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	. "github.com/cricklet/shogigo/internal/bitboards"
	. "github.com/cricklet/shogigo/internal/helpers"
)

const (
	MemberStyle = "fill:#3b6ea5;stroke:#333333;stroke-width:1"
	EmptyStyle  = "fill:#f0d9a8;stroke:#333333;stroke-width:1"
	labelStyle  = "font-family:monospace;font-size:%dpx;text-anchor:middle;fill:#333333"
)

type options struct {
	cellSize int
	title    Optional[string]
}

type Option func(*options)

func WithCellSize(cellSize int) Option {
	return func(o *options) {
		o.cellSize = cellSize
	}
}

func WithTitle(title string) Option {
	return func(o *options) {
		o.title = Some(title)
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteBitboardSVG draws b as a 9x9 grid in the same orientation as
// Bitboard.String: file 9 in the leftmost column, rank 1 in the top row.
// File digits run along the top and rank digits down the right edge.
func WriteBitboardSVG(w io.Writer, b Bitboard, opts ...Option) Error {
	o := options{cellSize: 40}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cellSize <= 0 {
		return Errorf("cell size must be positive, got %v", o.cellSize)
	}

	cell := o.cellSize
	margin := cell / 2
	width := margin*2 + NumFiles*cell
	height := margin*2 + NumRanks*cell
	fontSize := MaxInt(cell/3, 6)
	labels := fmt.Sprintf(labelStyle, fontSize)

	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)
	if o.title.HasValue() {
		canvas.Title(o.title.Value())
	}

	for column := 0; column < NumFiles; column++ {
		file := File(NumFiles - 1 - column)
		canvas.Text(margin+column*cell+cell/2, margin-fontSize/3, file.String(), labels)
	}

	for rank := Rank1; rank <= Rank9; rank++ {
		y := margin + int(rank)*cell
		for column := 0; column < NumFiles; column++ {
			square, err := SquareFromCoord(File(NumFiles-1-column), rank)
			if err.HasError() {
				return err
			}

			style := EmptyStyle
			if b.Has(square) {
				style = MemberStyle
			}
			canvas.Rect(margin+column*cell, y, cell, cell, style)
		}
		canvas.Text(margin+NumFiles*cell+margin/2, y+cell/2+fontSize/3, rank.String(), labels)
	}

	canvas.End()
	return Wrap(out.err)
}
