// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// sidePattern is the whole alphabet a side may use.
	sidePattern = regexp.MustCompile(`^[-+0-9X^*.]*$`)

	// termPattern captures (coefficient, exponent) of every `c * X^p` term.
	// Both captures may be empty or sign-only; see parseCoefficient/parseExponent.
	termPattern = regexp.MustCompile(`([+-]?\d*\.?\d*)\*?X\^([+-]?\d*\.?\d+)`)
)

// Parse parses a polynomial equation of the form "A = B" and returns the
// coefficients of A - B.
//
// Implementation:
//   - Stage 1: strip whitespace, split on the single '='.
//   - Stage 2: validate both sides against the allowed alphabet.
//   - Stage 3: extract terms from each side; any bad exponent aborts the parse.
//   - Stage 4: accumulate left terms with +1, right terms with -1.
//
// Behavior highlights:
//   - Either side may be empty ("= X^2" is valid).
//   - Characters that pass the alphabet check but belong to no X^n term are ignored.
//   - An equation without any term yields the all-zero seeded map.
//
// Errors:
//   - ErrFormat, ErrCharset, ErrExponent, ErrCoefficient (wrapped with context).
func Parse(equation string) (Coefficients, error) {
	lhs, rhs, err := split(stripSpaces(equation))
	if err != nil {
		return nil, err
	}
	for _, side := range [...]string{lhs, rhs} {
		if err = validateSide(side); err != nil {
			return nil, err
		}
	}

	left, err := ParseSide(lhs)
	if err != nil {
		return nil, err
	}
	right, err := ParseSide(rhs)
	if err != nil {
		return nil, err
	}

	coeffs := accumulate(NewCoefficients(), left, 1)
	coeffs = accumulate(coeffs, right, -1)

	return coeffs, nil
}

// ParseSide extracts the terms of a single side, in order of appearance.
// The input is expected to be whitespace-free; no alphabet check is done here.
func ParseSide(expr string) ([]Term, error) {
	matches := termPattern.FindAllStringSubmatch(expr, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	terms := make([]Term, 0, len(matches))
	for _, m := range matches {
		exp, err := parseExponent(m[2])
		if err != nil {
			return nil, err
		}
		coef, err := parseCoefficient(m[1])
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Coefficient: coef, Exponent: exp})
	}

	return terms, nil
}

// stripSpaces removes every Unicode white-space rune.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// split returns the two sides around the only '='.
func split(eq string) (lhs, rhs string, err error) {
	switch n := strings.Count(eq, "="); {
	case n == 0:
		return "", "", ErrFormat
	case n > 1:
		return "", "", fmt.Errorf("found %d '=' signs: %w", n, ErrFormat)
	}
	lhs, rhs, _ = strings.Cut(eq, "=")

	return lhs, rhs, nil
}

// validateSide reports the first character outside the allowed alphabet.
func validateSide(side string) error {
	if sidePattern.MatchString(side) {
		return nil
	}
	for _, r := range side {
		if !strings.ContainsRune("-+0123456789X^*.", r) {
			return fmt.Errorf("%w: unexpected %q in %q", ErrCharset, r, side)
		}
	}

	return fmt.Errorf("%w: %q", ErrCharset, side)
}

// parseExponent accepts "", which means power 1, or a non-negative integer.
func parseExponent(tok string) (int, error) {
	if tok == "" {
		return 1, nil
	}
	if strings.Contains(tok, ".") {
		return 0, fmt.Errorf("%w: got %q", ErrExponent, tok)
	}
	exp, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q: %v", ErrExponent, tok, err)
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: got %q", ErrExponent, tok)
	}

	return exp, nil
}

// parseCoefficient maps "" and "+" to 1, "-" to -1, anything else to its value.
func parseCoefficient(tok string) (float64, error) {
	switch tok {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrCoefficient, tok)
	}

	return v, nil
}
