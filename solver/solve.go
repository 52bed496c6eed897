// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/computor/equation"
)

// Solve infers the degree of c, renders its reduced form and computes the
// solution set.
//
// Implementation:
//   - Stage 1: degree and reduced form from the coefficient map.
//   - Stage 2: dispatch on degree; only the selected branch does arithmetic.
//
// Behavior highlights:
//   - Degree > MaxDegree: Kind=Unsolvable, nothing else is computed.
//   - The branch structure guarantees no division by a zero leading coefficient.
//
// Complexity:
//   - Time O(k log k) for k exponents (sorting for the reduced form), Space O(k).
func Solve(c equation.Coefficients) Solution {
	sol := Solution{
		Coefficients: c,
		ReducedForm:  ReducedForm(c),
		Degree:       c.Degree(),
	}

	switch {
	case sol.Degree > MaxDegree:
		sol.Kind = Unsolvable
	case sol.Degree == 2:
		solveQuadratic(&sol, c.At(2), c.At(1), c.At(0))
	case sol.Degree == 1:
		solveLinear(&sol, c.At(1), c.At(0))
	default:
		solveConstant(&sol, c.At(0))
	}

	return sol
}

// Discriminant returns b² - 4ac. Both products are rounded before the
// subtraction so no platform fuses them into an FMA.
func Discriminant(a, b, c float64) float64 {
	return float64(b*b) - float64(4*a*c)
}

// Evaluate returns the value of c at x. Exponents are visited in ascending
// order so the result is deterministic for any map.
func Evaluate(c equation.Coefficients, x float64) float64 {
	var sum float64
	for _, exp := range c.Exponents() {
		if v := c[exp]; v != 0 {
			sum += v * math.Pow(x, float64(exp))
		}
	}

	return sum
}

// solveQuadratic fills the Δ, Kind and roots of a·x² + b·x + c with a ≠ 0.
func solveQuadratic(sol *Solution, a, b, c float64) {
	sol.A, sol.B, sol.C = a, b, c
	delta := Discriminant(a, b, c)
	sol.Discriminant, sol.HasDiscriminant = normalizeZero(delta), true

	switch {
	case delta > 0:
		sq := math.Sqrt(delta)
		sol.Kind = TwoReal
		sol.Real = []float64{
			normalizeZero((-b - sq) / (2 * a)),
			normalizeZero((-b + sq) / (2 * a)),
		}
	case delta == 0:
		sol.Kind = OneReal
		sol.Real = []float64{normalizeZero(-b / (2 * a))}
	default:
		sq := cmplx.Sqrt(complex(delta, 0))
		nb, den := complex(-b, 0), complex(2*a, 0)
		sol.Kind = TwoComplex
		sol.Complex = []complex128{(nb + sq) / den, (nb - sq) / den}
	}
}

// solveLinear handles b·x + c = 0. The b == 0 guards are kept for callers
// that reach it with a degenerate map.
func solveLinear(sol *Solution, b, c float64) {
	sol.B, sol.C = b, c
	if b == 0 {
		solveConstant(sol, c)

		return
	}
	sol.Kind = OneReal
	sol.Real = []float64{normalizeZero(-c / b)}
}

// solveConstant handles c = 0.
func solveConstant(sol *Solution, c float64) {
	sol.C = c
	if c == 0 {
		sol.Kind = AllReals

		return
	}
	sol.Kind = NoSolution
}
