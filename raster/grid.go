// SPDX-License-Identifier: MIT

// Package raster - Grid storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Reject NaN/Inf on Set so heatmap and feature values stay finite.
//
// Consumers:
//   - heatmap.Data stores per-cell deviation in a Grid.
//   - features.Vector stores the normalized bitmap in a Grid.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Max/Sum: O(r*c).

package raster

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ---------- sentinel errors ----------

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set.
	ErrNaNInf = errors.New("raster: NaN or Inf encountered")
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a rows×cols matrix of float64 stored row-major.
type Grid struct {
	r, c int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)

// NewGrid creates a rows×cols zero grid.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.c }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) (float64, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return g.data[row*g.c+col], nil
}

// Set stores v at (row, col). NaN and ±Inf are rejected.
func (g *Grid) Set(row, col int, v float64) error {
	if !g.InBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return gridErrorf(ctxSet, row, col, ErrNaNInf)
	}
	g.data[row*g.c+col] = v

	return nil
}

// SetMax stores max(current, v) at (row, col); same validation as Set.
func (g *Grid) SetMax(row, col int, v float64) error {
	cur, err := g.At(row, col)
	if err != nil {
		return err
	}
	if v <= cur {
		return nil
	}

	return g.Set(row, col, v)
}

// Apply replaces every cell with fn(row, col, value) in row-major order.
// Stops at the first non-finite result.
func (g *Grid) Apply(fn func(row, col int, v float64) float64) error {
	for i := 0; i < g.r; i++ {
		base := i * g.c
		for j := 0; j < g.c; j++ {
			nv := fn(i, j, g.data[base+j])
			if math.IsNaN(nv) || math.IsInf(nv, 0) {
				return gridErrorf(ctxApply, i, j, ErrNaNInf)
			}
			g.data[base+j] = nv
		}
	}

	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	buf := make([]float64, len(g.data))
	copy(buf, g.data)

	return &Grid{r: g.r, c: g.c, data: buf}
}

// Row returns a copy of row i, or nil when i is out of range.
func (g *Grid) Row(i int) []float64 {
	if i < 0 || i >= g.r {
		return nil
	}
	out := make([]float64, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out
}

// Flat returns a copy of the row-major buffer.
func (g *Grid) Flat() []float64 {
	out := make([]float64, len(g.data))
	copy(out, g.data)

	return out
}

// To2D returns the grid as a fresh [][]float64.
func (g *Grid) To2D() [][]float64 {
	out := make([][]float64, g.r)
	for i := range out {
		out[i] = g.Row(i)
	}

	return out
}

// Max returns the largest cell value.
func (g *Grid) Max() float64 {
	best := g.data[0]
	for _, v := range g.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// Sum returns the sum of all cells.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.data {
		s += v
	}

	return s
}

// CountAtLeast returns how many cells hold a value >= threshold.
func (g *Grid) CountAtLeast(threshold float64) int {
	n := 0
	for _, v := range g.data {
		if v >= threshold {
			n++
		}
	}

	return n
}

// String renders the grid one bracketed row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < g.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", g.data[i*g.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
