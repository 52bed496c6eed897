// SPDX-License-Identifier: MIT

// Package computor solves single-variable polynomial equations of degree two
// or less, from free-form text to a formatted solution set.
//
// 🚀 What is computor?
//
//	A small, dependency-light toolkit that brings together:
//		• Parsing: "5 * X^0 + 4 * X^1 = 4 * X^0" → exponent→coefficient map
//		• Reduction: canonical "1 + 4 * X = 0" rendering and degree inference
//		• Solving: constant, linear and quadratic (real or complex roots)
//		• Reporting: plain text, step-by-step text, JSON
//		• Plotting: ASCII curve with marked real roots
//
// Under the hood, everything is organized under these subpackages:
//
//	equation/     — Parse, Coefficients, sentinel parse errors
//	solver/       — Solve, ReducedForm, number formatting
//	report/       — text/verbose/JSON renderers over solver.Solution
//	plot/         — character canvas for f(x) over [-D, D]
//	cmd/computor/ — command-line front end
//
// Quick example:
//
//	coeffs, err := equation.Parse("X^2 - 5 * X^1 + 4 * X^0 = 0")
//	sol := solver.Solve(coeffs)
//	report.Write(os.Stdout, "X^2 - 5 * X^1 + 4 * X^0 = 0", sol)
//
//	go install github.com/katalvlaran/computor/cmd/computor@latest
package computor
