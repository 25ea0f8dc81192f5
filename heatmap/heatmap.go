// SPDX-License-Identifier: MIT

package heatmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/raster"
)

var (
	// ErrInvalidDimensions indicates a non-positive canvas width or height.
	ErrInvalidDimensions = errors.New("heatmap: width and height must be positive")

	// ErrEmptyDrawing indicates the user drawing has no usable stroke.
	ErrEmptyDrawing = errors.New("heatmap: user drawing has no strokes with points")

	// ErrEmptyTemplate indicates the template has no stroke with a segment.
	ErrEmptyTemplate = errors.New("heatmap: template has no strokes with at least two points")
)

// Data is a deviation grid over a canvas.
type Data struct {
	Width, Height int
	CellSize      float64
	Cols, Rows    int
	Mode          Mode

	// Cells is Rows×Cols; Cells.At(row, col) is in [0,1], the normalized
	// distance from the cell centre to the geometry Mode measures against.
	Cells *raster.Grid

	// Coverage is Rows×Cols; a cell holds 1 when a sample of the measured
	// side (user ink, template or both, per Mode) falls inside it, else 0.
	Coverage *raster.Grid
}

// GenerateHeatmapData builds the deviation grid for user against template on
// a width×height canvas.
//
// Implementation:
//   - Stage 1: validate dimensions, then the drawing, then the template.
//   - Stage 2: every cell takes min(1, d/MaxDeviation), d being the distance
//     from its centre to the template segments (ModeUser), to the user ink
//     (ModeTemplate) or the larger of both (ModeBoth).
//   - Stage 3: mark Coverage by sampling each measured segment, clipped to
//     the canvas, at CellSize/2 spacing.
//
// Values depend only on a cell's distance to the reference geometry, so a
// cell farther from it never holds a smaller value than a nearer one.
//
// Complexity: O(Rows·Cols·P) for P segments, plus O(canvas diagonal/CellSize)
// samples per segment.
func GenerateHeatmapData(template, user []geometry.Stroke, width, height int, opts ...Option) (*Data, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("GenerateHeatmapData(%dx%d): %w", width, height, ErrInvalidDimensions)
	}
	if geometry.CountUsable(user) == 0 {
		return nil, ErrEmptyDrawing
	}
	if geometry.CountSegmented(template) == 0 {
		return nil, ErrEmptyTemplate
	}

	o := gatherOptions(opts...)
	cols := int(math.Ceil(float64(width) / o.cellSize))
	rows := int(math.Ceil(float64(height) / o.cellSize))
	cells, err := raster.NewGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("GenerateHeatmapData: %w", err)
	}

	d := &Data{
		Width:    width,
		Height:   height,
		CellSize: o.cellSize,
		Cols:     cols,
		Rows:     rows,
		Mode:     o.mode,
		Cells:    cells,
		Coverage: cells.Clone(),
	}

	measureUser := o.mode == ModeUser || o.mode == ModeBoth
	measureTemplate := o.mode == ModeTemplate || o.mode == ModeBoth

	err = d.Cells.Apply(func(row, col int, _ float64) float64 {
		c := d.centre(col, row)
		var dist float64
		if measureUser {
			dist = geometry.NearestSegmentDistance(c, template)
		}
		if measureTemplate {
			dist = math.Max(dist, geometry.NearestDistance(c, user))
		}
		// NaN only comes from NaN input; report it as full deviation.
		if math.IsNaN(dist) {
			return 1
		}
		return math.Min(1, dist/o.maxDeviation)
	})
	if err != nil {
		return nil, fmt.Errorf("GenerateHeatmapData: %w", err)
	}

	spacing := o.cellSize / 2
	if measureUser {
		for _, s := range user {
			d.cover(s.Points, spacing)
		}
	}
	if measureTemplate {
		for _, s := range template {
			if s.HasSegment() {
				d.cover(s.Points, spacing)
			}
		}
	}

	return d, nil
}

// centre returns the pixel centre of cell (col, row), clipped to the canvas
// for partial edge cells.
func (d *Data) centre(col, row int) geometry.Point {
	x0, y0 := float64(col)*d.CellSize, float64(row)*d.CellSize
	x1 := math.Min(float64(d.Width), x0+d.CellSize)
	y1 := math.Min(float64(d.Height), y0+d.CellSize)

	return geometry.Point{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
}

// cover marks the cells traversed by the polyline pts. Each segment is
// clipped to the canvas first, so far-off coordinates cost no samples.
func (d *Data) cover(pts []geometry.Point, spacing float64) {
	canvas := geometry.Box{MaxX: float64(d.Width), MaxY: float64(d.Height)}
	if len(pts) == 1 {
		d.mark(pts[0])
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b, ok := geometry.ClipSegment(pts[i-1], pts[i], canvas)
		if !ok {
			continue
		}
		for _, p := range geometry.ResampleSpacing([]geometry.Point{a, b}, spacing) {
			d.mark(p)
		}
	}
}

// mark sets the coverage of the cell under p.
func (d *Data) mark(p geometry.Point) {
	col, row, ok := d.CellAt(p.X, p.Y)
	if !ok {
		return
	}
	// In range by construction.
	_ = d.Coverage.Set(row, col, 1)
}

// Covered reports whether a measured sample fell into cell (col, row).
func (d *Data) Covered(col, row int) bool {
	v, err := d.Coverage.At(row, col)
	return err == nil && v > 0
}

// CoveredCells returns how many cells received a measured sample.
func (d *Data) CoveredCells() int {
	return d.Coverage.CountAtLeast(1)
}

// HotCells returns how many covered cells hold a value >= threshold.
func (d *Data) HotCells(threshold float64) int {
	hot := d.Cells.Clone()
	// -1 keeps uncovered cells below any threshold in [0,1].
	_ = hot.Apply(func(row, col int, v float64) float64 {
		if d.Covered(col, row) {
			return v
		}
		return -1
	})

	return hot.CountAtLeast(threshold)
}

// CellAt maps a canvas position to its cell. ok is false outside the canvas
// or for non-finite coordinates.
func (d *Data) CellAt(x, y float64) (col, row int, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) || x < 0 || y < 0 ||
		x > float64(d.Width) || y > float64(d.Height) {
		return 0, 0, false
	}
	col = int(x / d.CellSize)
	row = int(y / d.CellSize)
	// The far canvas edge belongs to the last cell.
	if col == d.Cols {
		col--
	}
	if row == d.Rows {
		row--
	}

	return col, row, true
}

// At returns the value of cell (col, row).
func (d *Data) At(col, row int) (float64, error) {
	v, err := d.Cells.At(row, col)
	if err != nil {
		return 0, fmt.Errorf("heatmap: At(%d,%d): %w", col, row, err)
	}

	return v, nil
}

// Max returns the largest cell value.
func (d *Data) Max() float64 {
	return d.Cells.Max()
}

// MarshalJSON emits the grid as nested rows.
func (d *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Width    int         `json:"width"`
		Height   int         `json:"height"`
		CellSize float64     `json:"cellSize"`
		Cols     int         `json:"cols"`
		Rows     int         `json:"rows"`
		Mode     Mode        `json:"mode"`
		Cells    [][]float64 `json:"cells"`
		Coverage [][]float64 `json:"coverage"`
	}{d.Width, d.Height, d.CellSize, d.Cols, d.Rows, d.Mode, d.Cells.To2D(), d.Coverage.To2D()})
}
