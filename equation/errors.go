// SPDX-License-Identifier: MIT

package equation

import "errors"

// Every message is prefixed with "equation: ". Parse wraps these sentinels
// with the offending side or token; match them with errors.Is.
var (
	// ErrFormat indicates the equation does not contain exactly one '='.
	ErrFormat = errors.New("equation: invalid equation format, the equation must contain exactly one '='")

	// ErrCharset indicates a side contains a character outside the allowed alphabet.
	ErrCharset = errors.New("equation: equation contains invalid characters")

	// ErrExponent indicates a term exponent that is negative or not an integer.
	ErrExponent = errors.New("equation: powers must be non-negative integers")

	// ErrCoefficient indicates a coefficient capture that is not a number.
	ErrCoefficient = errors.New("equation: malformed coefficient")
)
