// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/computor/equation"
)

// MaxDegree is the highest degree Solve computes roots for.
const MaxDegree = 2

// Kind classifies the solution set.
type Kind int

const (
	// NoSolution: a non-zero constant equals zero.
	NoSolution Kind = iota
	// AllReals: the equation reduces to 0 = 0.
	AllReals
	// OneReal: a linear root, or a quadratic with Δ == 0.
	OneReal
	// TwoReal: a quadratic with Δ > 0.
	TwoReal
	// TwoComplex: a quadratic with Δ < 0; roots are complex conjugates.
	TwoComplex
	// Unsolvable: degree above MaxDegree.
	Unsolvable
)

var kindNames = [...]string{
	NoSolution: "no solution",
	AllReals:   "all reals",
	OneReal:    "one real",
	TwoReal:    "two real",
	TwoComplex: "two complex",
	Unsolvable: "unsolvable",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Solution is the structured outcome of Solve. Renderers consume it; it holds
// no presentation beyond the canonical reduced form.
type Solution struct {
	// Coefficients is the polynomial that was solved (not copied; treat read-only).
	Coefficients equation.Coefficients

	// ReducedForm is the canonical rendering, always suffixed with " = 0".
	ReducedForm string

	// Degree is the largest exponent with a non-zero coefficient.
	Degree int

	// Kind selects which of Real/Complex are populated.
	Kind Kind

	// A, B, C are the coefficients of X^2, X^1, X^0 used by the branch.
	A, B, C float64

	// Discriminant is b² - 4ac; meaningful only when HasDiscriminant.
	Discriminant    float64
	HasDiscriminant bool

	// Real holds real roots in report order (OneReal: 1, TwoReal: 2).
	Real []float64

	// Complex holds (-b + i√|Δ|)/(2a) then (-b - i√|Δ|)/(2a) for TwoComplex.
	Complex []complex128
}
