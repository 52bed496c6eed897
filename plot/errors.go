// SPDX-License-Identifier: MIT

package plot

import "errors"

var (
	// ErrUnplottable indicates a polynomial of degree above 2.
	ErrUnplottable = errors.New("plot: only polynomials of degree 2 or less can be plotted")

	// ErrBadSize indicates a canvas smaller than 3×3 or a non-positive domain.
	ErrBadSize = errors.New("plot: invalid canvas size or domain")
)
