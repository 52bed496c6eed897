// SPDX-License-Identifier: MIT

package plot

import (
	"io"
	"math"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/computor/solver"
)

// Render draws sol's polynomial over [-D, D] and marks its real roots.
//
// Implementation:
//   - Stage 1: sample f at every column centre; fit the y range (0 included).
//   - Stage 2: draw axes, then the curve (steep segments filled vertically),
//     then root markers on the x axis.
//
// Errors:
//   - ErrUnplottable for degree > 2, ErrBadSize for invalid options.
func Render(sol solver.Solution, opts ...Option) (*Canvas, error) {
	if sol.Degree > solver.MaxDegree || sol.Kind == solver.Unsolvable {
		return nil, ErrUnplottable
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}

	ys := sample(sol, o)
	ymin, ymax := yRange(ys)
	cv := newCanvas(o.width, o.height, -o.domain, o.domain, ymin, ymax)

	drawAxes(cv)
	drawCurve(cv, ys)
	drawRoots(cv, sol.Real)

	return cv, nil
}

// Write renders sol and writes the canvas to w.
func Write(w io.Writer, sol solver.Solution, opts ...Option) error {
	cv, err := Render(sol, opts...)
	if err != nil {
		return err
	}
	_, err = cv.WriteTo(w)

	return err
}

// sample evaluates f at width evenly spaced points spanning [-D, D].
func sample(sol solver.Solution, o Options) []float64 {
	ys := make([]float64, o.width)
	step := 2 * o.domain / float64(o.width-1)
	for i := range ys {
		ys[i] = solver.Evaluate(sol.Coefficients, -o.domain+float64(i)*step)
	}

	return ys
}

// yRange spans every finite sample and 0, clamped to ±MaxFloat64/2 so the
// span itself stays finite. An identically zero curve gets [-1, 1].
func yRange(ys []float64) (ymin, ymax float64) {
	const limit = math.MaxFloat64 / 2
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ymin, ymax = math.Min(ymin, math.Max(y, -limit)), math.Max(ymax, math.Min(y, limit))
	}
	if ymin == ymax {
		return ymin - 1, ymax + 1
	}

	return ymin, ymax
}

func drawAxes(cv *Canvas) {
	axisRow, rowOK := cv.Row(0)
	axisCol, colOK := cv.Column(0)
	if rowOK {
		for c := 0; c < cv.Width; c++ {
			cv.set(c, axisRow, GlyphXAxis)
		}
	}
	if colOK {
		for r := 0; r < cv.Height; r++ {
			cv.set(axisCol, r, GlyphYAxis)
		}
	}
	if rowOK && colOK {
		cv.set(axisCol, axisRow, GlyphOrigin)
	}
}

// drawCurve plots one point per column and fills the rows between neighbours
// so steep slopes stay connected.
func drawCurve(cv *Canvas, ys []float64) {
	prev, havePrev := 0, false
	for col, y := range ys {
		row, ok := cv.Row(y)
		if !ok {
			havePrev = false
			continue
		}
		cv.set(col, row, GlyphCurve)
		if havePrev {
			lo, hi := prev, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				cv.set(col, r, GlyphCurve)
			}
		}
		prev, havePrev = row, true
	}
}

// drawRoots marks each distinct in-domain root on the x axis.
func drawRoots(cv *Canvas, roots []float64) {
	axisRow, ok := cv.Row(0)
	if !ok || len(roots) == 0 {
		return
	}
	rs := slices.Clone(roots)
	slices.Sort(rs)
	rs = slices.Compact(rs)
	for _, x := range rs {
		if col, inDomain := cv.Column(x); inDomain {
			cv.set(col, axisRow, GlyphRoot)
		}
	}
}
