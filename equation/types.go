// SPDX-License-Identifier: MIT

package equation

import "golang.org/x/exp/slices"

// seededExponents are always present in a fresh Coefficients map.
var seededExponents = [...]int{0, 1, 2}

// Term is one signed `coefficient * X^exponent` occurrence extracted from a side.
type Term struct {
	Coefficient float64
	Exponent    int
}

// Coefficients maps a non-negative exponent to its real coefficient.
//
// A map returned by Parse is complete: equal exponents have already been
// summed, and exponents 0, 1 and 2 are present even when zero. Treat it as
// read-only; use Clone before mutating.
type Coefficients map[int]float64

// NewCoefficients returns an empty polynomial with exponents 0, 1 and 2 seeded at 0.
func NewCoefficients() Coefficients {
	c := make(Coefficients, len(seededExponents))
	for _, exp := range seededExponents {
		c[exp] = 0
	}

	return c
}

// At returns the coefficient of X^exp, or 0 when the exponent is absent.
func (c Coefficients) At(exp int) float64 {
	return c[exp]
}

// Exponents returns every key in ascending order, zero coefficients included.
func (c Coefficients) Exponents() []int {
	exps := make([]int, 0, len(c))
	for exp := range c {
		exps = append(exps, exp)
	}
	slices.Sort(exps)

	return exps
}

// Degree returns the largest exponent whose coefficient is non-zero.
// An all-zero polynomial has degree 0.
func (c Coefficients) Degree() int {
	degree := 0
	for exp, v := range c {
		if v != 0 && exp > degree {
			degree = exp
		}
	}

	return degree
}

// Clone returns an independent copy of c.
func (c Coefficients) Clone() Coefficients {
	out := make(Coefficients, len(c))
	for exp, v := range c {
		out[exp] = v
	}

	return out
}

// accumulate folds terms into acc, each multiplied by sign, and returns acc.
// Exponents outside the seeded set are inserted on demand.
func accumulate(acc Coefficients, terms []Term, sign float64) Coefficients {
	for _, t := range terms {
		acc[t.Exponent] += sign * t.Coefficient
	}

	return acc
}
