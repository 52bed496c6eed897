// SPDX-License-Identifier: MIT

// Package equation turns a textual single-variable polynomial equation into a
// map from exponent to coefficient.
//
// What:
//
//   - Terms have the shape `coefficient * X^power`, separated by + and -.
//   - Exactly one '=' splits the equation; the right side is moved to the left
//     (A = B becomes A - B = 0).
//   - Terms with equal exponents are summed. Exponents 0, 1 and 2 are always
//     present so a solver can index them directly.
//
// Grammar notes:
//
//   - Whitespace is ignored everywhere.
//   - A missing coefficient means 1 ("X^2", "+X^2"), a lone '-' means -1.
//   - Text that is not part of an X^n term is skipped: "X^2 = 4" parses as
//     X^2 = 0 because the bare 4 never matches a term. That is long-standing
//     behaviour and callers rely on it.
//
// Errors:
//
//   - ErrFormat: no '=' or more than one.
//   - ErrCharset: a character outside [0-9 X ^ * + - .].
//   - ErrExponent: negative or fractional exponent.
//   - ErrCoefficient: coefficient capture that is not a number (e.g. ".").
//
// Usage:
//
//	coeffs, err := equation.Parse("5 * X^0 + 4 * X^1 = 4 * X^0")
//	if err != nil {
//	  // errors.Is(err, equation.ErrCharset) ...
//	}
//	fmt.Println(coeffs.Degree()) // 1
package equation
