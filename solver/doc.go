// SPDX-License-Identifier: MIT

// Package solver classifies a polynomial by degree and computes its solution
// set for degree 0, 1 and 2.
//
// What:
//
//   - Degree inference: the largest exponent with a non-zero coefficient.
//   - Reduced form: "c0 + c1 * X + c2 * X^2 ... = 0", ascending exponents,
//     magnitudes to 3 decimals with trailing zeros trimmed.
//   - Roots:
//     degree 0 → no solution or every real number;
//     degree 1 → x = -c/b;
//     degree 2 → sign of Δ = b² - 4ac selects two real, one real or two
//     complex conjugate roots;
//     degree > 2 → reported as Unsolvable, no numeric work.
//
// Numeric policy:
//
//   - float64 throughout, no tolerance anywhere. Δ == 0 is an exact comparison,
//     so an equation whose discriminant should be zero but carries rounding
//     noise lands in the positive or negative branch.
//   - Negative zero results are stored as +0.
//
// Solve never fails: once Coefficients exist, every branch is total.
//
// Usage:
//
//	coeffs, _ := equation.Parse("X^2 - 5 * X^1 + 4 * X^0 = 0")
//	sol := solver.Solve(coeffs)
//	fmt.Println(sol.ReducedForm) // 4 - 5 * X + 1 * X^2 = 0
//	fmt.Println(sol.Kind, sol.Real) // two real [1 4]
package solver
