// SPDX-License-Identifier: MIT

// Package report renders a solver.Solution for people or programs.
//
// One solver, several presentations:
//
//   - Text (default): the classic four-part report (equation, reduced form,
//     degree, solution narrative).
//   - Text + WithVerbose(true): adds an "Intermediate steps:" block with the
//     coefficient bindings, the discriminant and each root formula.
//   - JSON: a single indented object, stable field names.
//
// Usage:
//
//	sol := solver.Solve(coeffs)
//	err := report.Write(os.Stdout, raw, sol, report.WithVerbose(true))
package report
