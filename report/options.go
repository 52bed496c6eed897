// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects the renderer used by Write.
type Format int

const (
	// Text is the human-readable report.
	Text Format = iota
	// JSON is a single indented JSON object.
	JSON
)

// Defaults, the single source of truth for zero-value behaviour.
const (
	DefaultFormat  = Text
	DefaultVerbose = false
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "text" or "json" (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the resolved renderer configuration.
type Options struct {
	format  Format
	verbose bool
}

// WithFormat selects the renderer.
func WithFormat(f Format) Option {
	return func(o *Options) { o.format = f }
}

// WithVerbose toggles the intermediate-steps block in text output.
// JSON output ignores it.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{format: DefaultFormat, verbose: DefaultVerbose}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
