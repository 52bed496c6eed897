// SPDX-License-Identifier: MIT

// Package plot draws f(x) = c2·x² + c1·x + c0 on a character canvas and marks
// the real roots found by the solver.
//
// Layout:
//
//   - The x range is the fixed symmetric domain [-D, D] (WithDomain, default 10).
//   - The y range fits the sampled curve and always contains 0, so the x axis
//     and any marked root are on screen.
//   - Glyphs: '-' x axis, '|' y axis, '+' origin, '*' curve, 'o' root.
//
// Errors:
//
//   - ErrUnplottable: degree above 2.
//   - ErrBadSize: canvas smaller than 3×3 or non-positive domain.
//
// Usage:
//
//	if err := plot.Write(os.Stdout, sol, plot.WithSize(61, 21)); err != nil {
//	  // ...
//	}
package plot
