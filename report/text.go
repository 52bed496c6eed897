// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/computor/solver"
)

// Narrative lines, shared by the text and JSON renderers.
const (
	msgUnsolvable = "The polynomial degree is strictly greater than 2, I can't solve."
	msgPositive   = "Discriminant is strictly positive: %s, the two solutions are:"
	msgZero       = "Discriminant is zero, the solution is:"
	msgNegative   = "Discriminant is strictly negative: %s, the two complex solutions are:"
	msgLinear     = "The solution is:"
	msgAllReals   = "Any real number is a solution."
	msgNone       = "No solution."
)

// Write renders sol with the configured format.
func Write(w io.Writer, equation string, sol solver.Solution, opts ...Option) error {
	o := gatherOptions(opts...)
	switch o.format {
	case JSON:
		return WriteJSON(w, equation, sol)
	default:
		return WriteText(w, equation, sol, o.verbose)
	}
}

// WriteEquation prints the "Equation: ..." line exactly as the user typed it.
func WriteEquation(w io.Writer, equation string) error {
	_, err := fmt.Fprintf(w, "Equation: %s\n", equation)

	return err
}

// WriteText prints the equation line followed by the body (see WriteBody).
func WriteText(w io.Writer, equation string, sol solver.Solution, verbose bool) error {
	if err := WriteEquation(w, equation); err != nil {
		return err
	}

	return WriteBody(w, sol, verbose)
}

// WriteBody prints reduced form, degree, optional steps and the narrative.
func WriteBody(w io.Writer, sol solver.Solution, verbose bool) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reduced form: %s\n", sol.ReducedForm)
	fmt.Fprintf(&sb, "Polynomial degree: %d\n", sol.Degree)
	if verbose {
		if steps := Steps(sol); len(steps) > 0 {
			sb.WriteString("Intermediate steps:\n")
			for _, s := range steps {
				sb.WriteString("  ")
				sb.WriteString(s)
				sb.WriteByte('\n')
			}
		}
	}
	sb.WriteString(Headline(sol))
	sb.WriteByte('\n')
	for _, s := range Solutions(sol) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteError prints a user-facing diagnostic line.
func WriteError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %v\n", err)

	return werr
}

// Headline returns the sentence that introduces the solutions.
func Headline(sol solver.Solution) string {
	switch sol.Kind {
	case solver.Unsolvable:
		return msgUnsolvable
	case solver.TwoReal:
		return fmt.Sprintf(msgPositive, solver.FormatReal(sol.Discriminant))
	case solver.TwoComplex:
		return fmt.Sprintf(msgNegative, solver.FormatReal(sol.Discriminant))
	case solver.OneReal:
		if sol.HasDiscriminant {
			return msgZero
		}
		return msgLinear
	case solver.AllReals:
		return msgAllReals
	default:
		return msgNone
	}
}

// Solutions returns each root formatted for display, in solver order.
func Solutions(sol solver.Solution) []string {
	out := make([]string, 0, len(sol.Real)+len(sol.Complex))
	for _, r := range sol.Real {
		out = append(out, solver.FormatReal(r))
	}
	for _, z := range sol.Complex {
		out = append(out, solver.FormatComplex(z))
	}

	return out
}

// Steps returns the intermediate computations behind sol, one per line.
// Unsolvable equations have none.
func Steps(sol solver.Solution) []string {
	f := solver.FormatReal
	switch {
	case sol.Kind == solver.Unsolvable:
		return nil
	case sol.Degree == 2:
		steps := []string{
			fmt.Sprintf("a = %s, b = %s, c = %s", f(sol.A), f(sol.B), f(sol.C)),
			fmt.Sprintf("Δ = b^2 - 4ac = (%s)^2 - 4 * %s * %s = %s", f(sol.B), f(sol.A), f(sol.C), f(sol.Discriminant)),
		}
		nb, den := f(-sol.B), f(2*sol.A)
		switch sol.Kind {
		case solver.TwoReal:
			sq := f(math.Sqrt(sol.Discriminant))
			steps = append(steps,
				fmt.Sprintf("x1 = (-b - √Δ) / (2a) = (%s - %s) / %s = %s", nb, sq, den, f(sol.Real[0])),
				fmt.Sprintf("x2 = (-b + √Δ) / (2a) = (%s + %s) / %s = %s", nb, sq, den, f(sol.Real[1])),
			)
		case solver.OneReal:
			steps = append(steps,
				fmt.Sprintf("x = -b / (2a) = %s / %s = %s", nb, den, f(sol.Real[0])))
		case solver.TwoComplex:
			sq := f(math.Sqrt(-sol.Discriminant))
			steps = append(steps,
				fmt.Sprintf("x1 = (-b + i√|Δ|) / (2a) = (%s + %si) / %s = %s", nb, sq, den, solver.FormatComplex(sol.Complex[0])),
				fmt.Sprintf("x2 = (-b - i√|Δ|) / (2a) = (%s - %si) / %s = %s", nb, sq, den, solver.FormatComplex(sol.Complex[1])),
			)
		}
		return steps
	case sol.Kind == solver.OneReal:
		return []string{
			fmt.Sprintf("b = %s, c = %s", f(sol.B), f(sol.C)),
			fmt.Sprintf("x = -c / b = %s / %s = %s", f(-sol.C), f(sol.B), f(sol.Real[0])),
		}
	case sol.Kind == solver.AllReals:
		return []string{"every coefficient cancels, 0 = 0 holds for any X"}
	default:
		return []string{fmt.Sprintf("c = %s, and %s = 0 never holds", f(sol.C), f(sol.C))}
	}
}
