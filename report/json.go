// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/computor/solver"
)

// Document is the JSON shape of a report.
type Document struct {
	Equation     string      `json:"equation"`
	ReducedForm  string      `json:"reduced_form"`
	Degree       int         `json:"degree"`
	Kind         solver.Kind `json:"kind"`
	Message      string      `json:"message"`
	Discriminant *float64    `json:"discriminant,omitempty"`
	Solutions    []string    `json:"solutions"`
}

// NewDocument builds the JSON view of sol.
func NewDocument(equation string, sol solver.Solution) Document {
	doc := Document{
		Equation:    equation,
		ReducedForm: sol.ReducedForm,
		Degree:      sol.Degree,
		Kind:        sol.Kind,
		Message:     Headline(sol),
		Solutions:   Solutions(sol),
	}
	if sol.HasDiscriminant {
		d := sol.Discriminant
		doc.Discriminant = &d
	}

	return doc
}

// WriteJSON writes the report as one indented JSON object.
func WriteJSON(w io.Writer, equation string, sol solver.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(equation, sol))
}
