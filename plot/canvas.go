// SPDX-License-Identifier: MIT

package plot

import (
	"io"
	"math"
	"strings"
)

// Glyphs used on the canvas.
const (
	GlyphEmpty  = ' '
	GlyphXAxis  = '-'
	GlyphYAxis  = '|'
	GlyphOrigin = '+'
	GlyphCurve  = '*'
	GlyphRoot   = 'o'
)

// Canvas is a fixed-size character grid mapped onto [XMin, XMax] × [YMin, YMax].
// Row 0 is the top (YMax); column 0 is the left (XMin).
type Canvas struct {
	Width, Height int
	XMin, XMax    float64
	YMin, YMax    float64

	cells [][]rune
}

// newCanvas allocates a blank canvas.
func newCanvas(width, height int, xmin, xmax, ymin, ymax float64) *Canvas {
	cells := make([][]rune, height)
	for r := range cells {
		row := make([]rune, width)
		for c := range row {
			row[c] = GlyphEmpty
		}
		cells[r] = row
	}

	return &Canvas{
		Width: width, Height: height,
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		cells: cells,
	}
}

// At returns the glyph at (col, row), or GlyphEmpty when out of bounds.
func (cv *Canvas) At(col, row int) rune {
	if col < 0 || col >= cv.Width || row < 0 || row >= cv.Height {
		return GlyphEmpty
	}

	return cv.cells[row][col]
}

// Column maps x to a column; ok is false when x is outside [XMin, XMax].
func (cv *Canvas) Column(x float64) (col int, ok bool) {
	if !(x >= cv.XMin && x <= cv.XMax) {
		return 0, false
	}

	return int(math.Round((x - cv.XMin) / (cv.XMax - cv.XMin) * float64(cv.Width-1))), true
}

// Row maps y to a row; ok is false when y is outside [YMin, YMax].
func (cv *Canvas) Row(y float64) (row int, ok bool) {
	if !(y >= cv.YMin && y <= cv.YMax) {
		return 0, false
	}

	return int(math.Round((cv.YMax - y) / (cv.YMax - cv.YMin) * float64(cv.Height-1))), true
}

// Count returns how many cells hold glyph g.
func (cv *Canvas) Count(g rune) int {
	n := 0
	for _, row := range cv.cells {
		for _, r := range row {
			if r == g {
				n++
			}
		}
	}

	return n
}

// String renders the grid, one line per row, trailing blanks trimmed.
func (cv *Canvas) String() string {
	var sb strings.Builder
	for _, row := range cv.cells {
		sb.WriteString(strings.TrimRight(string(row), string(GlyphEmpty)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteTo implements io.WriterTo.
func (cv *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, cv.String())

	return int64(n), err
}

func (cv *Canvas) set(col, row int, g rune) {
	if col >= 0 && col < cv.Width && row >= 0 && row < cv.Height {
		cv.cells[row][col] = g
	}
}
