// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"math"
)

const (
	// DefaultCellSize is the cell edge in canvas pixels.
	DefaultCellSize = 10.0

	// DefaultMaxDeviation is the distance mapped to value 1.
	DefaultMaxDeviation = 45.0
)

// Mode selects which side's samples feed the grid.
type Mode int

const (
	// ModeBoth takes the maximum of ModeUser and ModeTemplate.
	ModeBoth Mode = iota
	// ModeUser measures user ink against the template.
	ModeUser
	// ModeTemplate measures the template against the user ink.
	ModeTemplate
)

// String returns the configuration name of m.
func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeUser:
		return "user"
	case ModeTemplate:
		return "template"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode maps a configuration name back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "both", "":
		return ModeBoth, true
	case "user":
		return ModeUser, true
	case "template":
		return ModeTemplate, true
	}
	return ModeBoth, false
}

const (
	panicCellSize     = "heatmap: WithCellSize: size must be finite and > 0"
	panicMaxDeviation = "heatmap: WithMaxDeviation: deviation must be finite and > 0"
	panicMode         = "heatmap: WithMode: unknown mode"
)

// Option configures GenerateHeatmapData.
type Option func(*Options)

// Options holds the generator configuration.
type Options struct {
	cellSize     float64
	maxDeviation float64
	mode         Mode
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		cellSize:     DefaultCellSize,
		maxDeviation: DefaultMaxDeviation,
		mode:         ModeBoth,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// WithCellSize sets the cell edge length in pixels.
func WithCellSize(size float64) Option {
	if !positive(size) {
		panic(panicCellSize)
	}
	return func(o *Options) { o.cellSize = size }
}

// WithMaxDeviation sets the distance that saturates a cell at 1.
func WithMaxDeviation(d float64) Option {
	if !positive(d) {
		panic(panicMaxDeviation)
	}
	return func(o *Options) { o.maxDeviation = d }
}

// WithMode selects which samples feed the grid.
func WithMode(m Mode) Option {
	if m < ModeBoth || m > ModeTemplate {
		panic(panicMode)
	}
	return func(o *Options) { o.mode = m }
}
