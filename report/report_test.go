// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/computor/equation"
	"github.com/katalvlaran/computor/report"
	"github.com/katalvlaran/computor/solver"
)

func solve(t *testing.T, eq string) solver.Solution {
	t.Helper()
	c, err := equation.Parse(eq)
	require.NoError(t, err)

	return solver.Solve(c)
}

func render(t *testing.T, eq string, opts ...report.Option) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, eq, solve(t, eq), opts...))

	return buf.String()
}

// TestWriteText_Narratives pins the exact plain-text output of every branch.
func TestWriteText_Narratives(t *testing.T) {
	cases := []struct {
		name string
		eq   string
		want string
	}{
		{
			name: "two real",
			eq:   "X^2 - 5 * X^1 + 4 * X^0 = 0",
			want: "Equation: X^2 - 5 * X^1 + 4 * X^0 = 0\n" +
				"Reduced form: 4 - 5 * X + 1 * X^2 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is strictly positive: 9, the two solutions are:\n" +
				"1\n" +
				"4\n",
		},
		{
			name: "discriminant zero",
			eq:   "X^2 + 2 * X^1 + 1 * X^0 = 0",
			want: "Equation: X^2 + 2 * X^1 + 1 * X^0 = 0\n" +
				"Reduced form: 1 + 2 * X + 1 * X^2 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is zero, the solution is:\n" +
				"-1\n",
		},
		{
			name: "complex",
			eq:   "X^2 + X^1 + 1 * X^0 = 0",
			want: "Equation: X^2 + X^1 + 1 * X^0 = 0\n" +
				"Reduced form: 1 + 1 * X + 1 * X^2 = 0\n" +
				"Polynomial degree: 2\n" +
				"Discriminant is strictly negative: -3, the two complex solutions are:\n" +
				"-0.5 + 0.9i\n" +
				"-0.5 - 0.9i\n",
		},
		{
			name: "linear",
			eq:   "5 * X^0 + 4 * X^1 = 4 * X^0",
			want: "Equation: 5 * X^0 + 4 * X^1 = 4 * X^0\n" +
				"Reduced form: 1 + 4 * X = 0\n" +
				"Polynomial degree: 1\n" +
				"The solution is:\n" +
				"-0.25\n",
		},
		{
			name: "any real",
			eq:   "42 * X^0 = 42 * X^0",
			want: "Equation: 42 * X^0 = 42 * X^0\n" +
				"Reduced form: 0 = 0\n" +
				"Polynomial degree: 0\n" +
				"Any real number is a solution.\n",
		},
		{
			name: "no solution",
			eq:   "4 * X^0 = 8 * X^0",
			want: "Equation: 4 * X^0 = 8 * X^0\n" +
				"Reduced form: -4 = 0\n" +
				"Polynomial degree: 0\n" +
				"No solution.\n",
		},
		{
			name: "degree three",
			eq:   "8 * X^0 - 6 * X^1 + 0 * X^2 - 5.6 * X^3 = 3 * X^0",
			want: "Equation: 8 * X^0 - 6 * X^1 + 0 * X^2 - 5.6 * X^3 = 3 * X^0\n" +
				"Reduced form: 5 - 6 * X - 5.6 * X^3 = 0\n" +
				"Polynomial degree: 3\n" +
				"The polynomial degree is strictly greater than 2, I can't solve.\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, render(t, tc.eq))
		})
	}
}

func TestWriteText_VerboseQuadratic(t *testing.T) {
	got := render(t, "X^2 - 5 * X^1 + 4 * X^0 = 0", report.WithVerbose(true))
	assert.Contains(t, got, "Polynomial degree: 2\nIntermediate steps:\n")
	assert.Contains(t, got, "  a = 1, b = -5, c = 4\n")
	assert.Contains(t, got, "  Δ = b^2 - 4ac = (-5)^2 - 4 * 1 * 4 = 9\n")
	assert.Contains(t, got, "  x1 = (-b - √Δ) / (2a) = (5 - 3) / 2 = 1\n")
	assert.Contains(t, got, "  x2 = (-b + √Δ) / (2a) = (5 + 3) / 2 = 4\n")
	assert.Contains(t, got, "Discriminant is strictly positive: 9, the two solutions are:\n1\n4\n")
}

func TestWriteText_VerboseOtherBranches(t *testing.T) {
	got := render(t, "5 * X^0 + 4 * X^1 = 4 * X^0", report.WithVerbose(true))
	assert.Contains(t, got, "  x = -c / b = -1 / 4 = -0.25\n")

	got = render(t, "X^2 + X^1 + 1 * X^0 = 0", report.WithVerbose(true))
	assert.Contains(t, got, "  x1 = (-b + i√|Δ|) / (2a) = (-1 + 1.7320508075688772i) / 2 = -0.5 + 0.9i\n")

	got = render(t, "X^2 + 2 * X^1 + 1 * X^0 = 0", report.WithVerbose(true))
	assert.Contains(t, got, "  x = -b / (2a) = -2 / 2 = -1\n")

	got = render(t, "4 * X^0 = 8 * X^0", report.WithVerbose(true))
	assert.Contains(t, got, "  c = -4, and -4 = 0 never holds\n")

	got = render(t, "1 * X^3 = 0", report.WithVerbose(true))
	assert.NotContains(t, got, "Intermediate steps:")
}

func TestWriteJSON(t *testing.T) {
	out := render(t, "X^2 + X^1 + 1 * X^0 = 0", report.WithFormat(report.JSON))

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "X^2 + X^1 + 1 * X^0 = 0", doc["equation"])
	assert.Equal(t, "1 + 1 * X + 1 * X^2 = 0", doc["reduced_form"])
	assert.Equal(t, 2.0, doc["degree"])
	assert.Equal(t, "two complex", doc["kind"])
	assert.Equal(t, -3.0, doc["discriminant"])
	assert.Equal(t, []any{"-0.5 + 0.9i", "-0.5 - 0.9i"}, doc["solutions"])
}

func TestWriteJSON_NoDiscriminantForLinear(t *testing.T) {
	out := render(t, "2 * X^1 = 0", report.WithFormat(report.JSON), report.WithVerbose(true))
	assert.NotContains(t, out, "discriminant")
	assert.Contains(t, out, `"solutions": [`)
	assert.Contains(t, out, `"message": "The solution is:"`)
}

func TestWriteJSON_EmptySolutionsIsArray(t *testing.T) {
	out := render(t, "1 * X^4 = 0", report.WithFormat(report.JSON))
	assert.Contains(t, out, `"solutions": []`)
	assert.Contains(t, out, `"kind": "unsolvable"`)
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, report.JSON, f)

	f, err = report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.Text, f)

	_, err = report.ParseFormat("yaml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.Equal(t, "json", report.JSON.String())
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteError(&buf, errors.New("equation: boom")))
	assert.Equal(t, "Error: equation: boom\n", buf.String())
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	sol := solve(t, "X^1 = 0")
	assert.Error(t, report.Write(failWriter{}, "X^1 = 0", sol))
	assert.Error(t, report.Write(failWriter{}, "X^1 = 0", sol, report.WithFormat(report.JSON)))
}
