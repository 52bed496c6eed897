// SPDX-License-Identifier: MIT

package plot

import "math"

// Defaults, the single source of truth for zero-value behaviour.
const (
	DefaultWidth  = 61
	DefaultHeight = 21
	DefaultDomain = 10.0

	// minSide is the smallest canvas side that still fits axes and a curve.
	minSide = 3
)

// Option mutates Options. Setters only store; Render validates.
type Option func(*Options)

// Options is the resolved plot configuration.
type Options struct {
	width, height int
	domain        float64
}

// WithSize sets the canvas size in character cells.
func WithSize(width, height int) Option {
	return func(o *Options) { o.width, o.height = width, height }
}

// WithDomain sets D for the symmetric x range [-D, D].
func WithDomain(d float64) Option {
	return func(o *Options) { o.domain = d }
}

// gatherOptions applies opts over the defaults and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := Options{width: DefaultWidth, height: DefaultHeight, domain: DefaultDomain}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.width < minSide || o.height < minSide {
		return Options{}, ErrBadSize
	}
	if !(o.domain > 0) || math.IsInf(o.domain, 1) {
		return Options{}, ErrBadSize
	}

	return o, nil
}
