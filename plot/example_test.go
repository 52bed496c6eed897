// SPDX-License-Identifier: MIT

package plot_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/computor/equation"
	"github.com/katalvlaran/computor/plot"
	"github.com/katalvlaran/computor/solver"
)

// ExampleWrite plots f(x) = x on a small canvas; the root sits on the origin.
func ExampleWrite() {
	coeffs, err := equation.Parse("X^1 = 0")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = plot.Write(os.Stdout, solver.Solve(coeffs), plot.WithSize(5, 5), plot.WithDomain(2)); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	//   | *
	//   |*
	// --o--
	//  *|
	// * |
}
