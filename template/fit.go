// SPDX-License-Identifier: MIT

package template

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
)

const (
	// DefaultPadding is the margin, in template units, kept around the letter.
	DefaultPadding = 20.0

	// MaxFitScale caps how far Fit enlarges a small template.
	MaxFitScale = 2.0
)

// Fit centers t on a width×height canvas and scales it to fill the canvas
// while keeping its aspect ratio.
//
// The template bounds are grown by padding on every side, then
//
//	factor = min(width/paddedWidth, height/paddedHeight, MaxFitScale)
//	p'     = canvasCenter + (p - boundsCenter)·factor
//
// Stroke widths are scaled by the same factor. The factor is returned so
// callers can scale distance thresholds accordingly
// (evaluate.WithScaleFactor).
func Fit(t Template, width, height, padding float64) (Template, float64, error) {
	if !(width > 0) || !(height > 0) {
		return Template{}, 0, fmt.Errorf("template: Fit(%vx%v): %w", width, height, ErrInvalidCanvas)
	}
	box := geometry.BoundingBox(t.Strokes)
	if box.Empty {
		return Template{}, 0, fmt.Errorf("template %q: Fit: %w", t.Name, ErrNoStrokes)
	}
	padding = math.Max(0, padding)

	pw := box.Width() + 2*padding
	ph := box.Height() + 2*padding
	factor := MaxFitScale
	if pw > 0 {
		factor = math.Min(factor, width/pw)
	}
	if ph > 0 {
		factor = math.Min(factor, height/ph)
	}

	c := box.Center()
	canvas := geometry.Point{X: width / 2, Y: height / 2}

	out := Template{Name: t.Name, Strokes: make([]geometry.Stroke, len(t.Strokes))}
	for i, s := range t.Strokes {
		pts := make([]geometry.Point, len(s.Points))
		for j, p := range s.Points {
			pts[j] = geometry.Point{
				X: canvas.X + (p.X-c.X)*factor,
				Y: canvas.Y + (p.Y-c.Y)*factor,
			}
		}
		out.Strokes[i] = geometry.Stroke{ID: s.ID, Points: pts, Width: s.Width * factor}
	}

	return out, factor, nil
}
