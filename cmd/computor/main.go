// SPDX-License-Identifier: MIT

// Command computor solves polynomial equations of degree 2 or less.
//
// Usage:
//
//	computor [flags] "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"
//
// Flags:
//
//	-verbose        print intermediate steps
//	-format string  output format (text, json)
//	-plot           draw the curve and its real roots after the report
//	-width int      plot width in characters
//	-height int     plot height in characters
//	-domain float   plot x range is [-domain, domain]
//
// Exit status is 1 for malformed input or usage errors and 0 otherwise,
// including equations of degree above 2.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
