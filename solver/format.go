// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/computor/equation"
)

// ReducedForm renders c as "t0 ± t1 ± ... = 0" in ascending exponent order.
//
// Behavior highlights:
//   - Zero coefficients are skipped; an all-zero polynomial renders "0 = 0".
//   - X^0 renders as the bare number, X^1 as "n * X", X^k as "n * X^k".
//   - The leading term carries its sign glued ("-3 * X"); later terms are
//     joined with " + " or " - ", so "+ -" never appears.
func ReducedForm(c equation.Coefficients) string {
	var sb strings.Builder
	for _, exp := range c.Exponents() {
		v := c[exp]
		if v == 0 {
			continue
		}
		switch {
		case sb.Len() == 0 && v < 0:
			sb.WriteByte('-')
		case sb.Len() == 0:
		case v < 0:
			sb.WriteString(" - ")
		default:
			sb.WriteString(" + ")
		}
		sb.WriteString(monomial(math.Abs(v), exp))
	}
	if sb.Len() == 0 {
		sb.WriteByte('0')
	}
	sb.WriteString(" = 0")

	return sb.String()
}

// monomial renders a non-negative magnitude with its power of X.
func monomial(mag float64, exp int) string {
	num := FormatCoefficient(mag)
	switch exp {
	case 0:
		return num
	case 1:
		return num + " * X"
	default:
		return num + " * X^" + strconv.Itoa(exp)
	}
}

// FormatCoefficient formats v to 3 decimals, then drops trailing zeros and a
// trailing dot: 5.000 → "5", 5.500 → "5.5", -0.25 → "-0.25".
func FormatCoefficient(v float64) string {
	return trimFixed(strconv.FormatFloat(normalizeZero(v), 'f', 3, 64))
}

// FormatReal formats v in the shortest decimal form that round-trips, without
// an exponent. Negative zero prints as "0".
func FormatReal(v float64) string {
	return strconv.FormatFloat(normalizeZero(v), 'f', -1, 64)
}

// FormatComplex formats z as "re + imi" or "re - imi", both parts to one
// decimal place; the imaginary magnitude is printed unsigned.
func FormatComplex(z complex128) string {
	re, im := fmt.Sprintf("%.1f", real(z)), imag(z)
	if re == "-0.0" {
		re = "0.0"
	}
	op := "+"
	if im < 0 {
		op = "-"
	}

	return fmt.Sprintf("%s %s %.1fi", re, op, math.Abs(im))
}

// trimFixed removes trailing zeros after a decimal point, then the point itself.
func trimFixed(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}

// normalizeZero maps -0 to +0 and leaves every other value untouched.
func normalizeZero[F constraints.Float](v F) F {
	if v == 0 {
		return 0
	}

	return v
}
