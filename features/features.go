// SPDX-License-Identifier: MIT

// Package features turns a drawing into a fixed-size binary grid, the usual
// input of a character recognizer.
//
// Steps:
//  1. Take the bounding box of all points.
//  2. Scale so the longer side spans Fill (80%) of a Size×Size grid and
//     center the drawing.
//  3. Resample every stroke at one-cell spacing and mark each sample's cell
//     plus its 8 neighbours with 1.
//
// The flattened grid (row-major) and metadata describing the normalization
// are returned together.
package features

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/raster"
)

const (
	// DefaultGridSize is the edge of the output grid.
	DefaultGridSize = 28

	// Fill is the share of the grid the longer drawing side occupies.
	Fill = 0.8
)

var (
	// ErrEmptyDrawing indicates no stroke has a point.
	ErrEmptyDrawing = errors.New("features: drawing has no strokes with points")

	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("features: grid size must be positive")
)

// Metadata describes how the drawing was mapped onto the grid.
type Metadata struct {
	AspectRatio   float64        `json:"aspectRatio"`
	TotalPoints   int            `json:"totalPoints"`
	StrokeCount   int            `json:"strokeCount"`
	BoundingBox   geometry.Box   `json:"boundingBox"`
	Width         float64        `json:"width"`
	Height        float64        `json:"height"`
	CenterOffsets geometry.Point `json:"centerOffsets"`
	ScaleFactor   float64        `json:"scaleFactor"`
}

// Vector is the converted drawing.
type Vector struct {
	Grid     *raster.Grid `json:"-"`
	Features []float64    `json:"featureVector"`
	Metadata Metadata     `json:"metadata"`
}

// Convert rasterizes strokes onto a size×size grid.
func Convert(strokes []geometry.Stroke, size int) (*Vector, error) {
	if size <= 0 {
		return nil, fmt.Errorf("features: Convert(size=%d): %w", size, ErrInvalidSize)
	}
	if geometry.CountUsable(strokes) == 0 {
		return nil, ErrEmptyDrawing
	}

	box := geometry.BoundingBox(strokes)
	w, h := box.Width(), box.Height()
	grid, err := raster.NewGrid(size, size)
	if err != nil {
		return nil, fmt.Errorf("features: Convert: %w", err)
	}

	n := float64(size)
	scale := 1.0
	if longest := math.Max(w, h); longest > 0 {
		scale = n * Fill / longest
	}
	off := geometry.Point{X: (n - w*scale) / 2, Y: (n - h*scale) / 2}

	meta := Metadata{
		AspectRatio:   w / nonZero(h),
		StrokeCount:   geometry.CountUsable(strokes),
		BoundingBox:   box,
		Width:         w,
		Height:        h,
		CenterOffsets: off,
		ScaleFactor:   scale,
	}

	for _, s := range strokes {
		meta.TotalPoints += s.Len()
		for _, p := range geometry.ResampleSpacing(s.Points, 1/scale) {
			gx := math.Floor(off.X + (p.X-box.MinX)*scale)
			gy := math.Floor(off.Y + (p.Y-box.MinY)*scale)
			if math.IsNaN(gx) || math.IsNaN(gy) {
				continue
			}
			mark(grid, int(gy), int(gx))
		}
	}

	return &Vector{Grid: grid, Features: grid.Flat(), Metadata: meta}, nil
}

// mark sets (row, col) and its 8 neighbours to 1 when the center is on the grid.
func mark(g *raster.Grid, row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if g.InBounds(row+dr, col+dc) {
				_ = g.Set(row+dr, col+dc, 1)
			}
		}
	}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
