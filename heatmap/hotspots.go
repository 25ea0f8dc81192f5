// SPDX-License-Identifier: MIT

package heatmap

import (
	"math"
	"sort"

	"github.com/katalvlaran/tracegrade/geometry"
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Cell addresses one heatmap cell.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Region is a connected group of hot cells.
type Region struct {
	// Cells in BFS order from the first cell met in a row-major scan.
	Cells []Cell `json:"cells"`
	// Peak and Mean summarize the cell values.
	Peak float64 `json:"peak"`
	Mean float64 `json:"mean"`
	// Bounds is the pixel rectangle covered by the cells, clipped to the canvas.
	Bounds geometry.Box `json:"bounds"`
}

// Hotspots finds connected regions of covered cells with value >= threshold,
// i.e. where the measured strokes actually run far from the reference.
// Regions are ordered by Peak descending; ties keep row-major discovery order.
//
// Time:   O(Rows·Cols·d), where d = 4 or 8.
// Memory: O(Rows·Cols) for visited flags and output.
func (d *Data) Hotspots(threshold float64, conn Connectivity) []Region {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	hot := func(col, row int) bool {
		v, err := d.Cells.At(row, col)
		return err == nil && v >= threshold && d.Covered(col, row)
	}

	seen := make([]bool, d.Rows*d.Cols)
	var regions []Region
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Cols; col++ {
			i0 := row*d.Cols + col
			if seen[i0] || !hot(col, row) {
				continue
			}
			// BFS to collect the region.
			queue := []Cell{{Col: col, Row: row}}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, off := range offsets {
					vc, vr := u.Col+off[0], u.Row+off[1]
					if !d.Cells.InBounds(vr, vc) || !hot(vc, vr) {
						continue
					}
					vi := vr*d.Cols + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, Cell{Col: vc, Row: vr})
					}
				}
			}
			regions = append(regions, d.summarize(queue))
		}
	}

	sort.SliceStable(regions, func(a, b int) bool {
		return regions[a].Peak > regions[b].Peak
	})

	return regions
}

// summarize computes peak, mean and pixel bounds of a region.
func (d *Data) summarize(cells []Cell) Region {
	r := Region{Cells: cells}
	minC, minR := math.MaxInt, math.MaxInt
	maxC, maxR := -1, -1
	var sum float64
	for _, c := range cells {
		v, _ := d.Cells.At(c.Row, c.Col)
		sum += v
		r.Peak = math.Max(r.Peak, v)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
	}
	r.Mean = sum / float64(len(cells))
	r.Bounds = geometry.Box{
		MinX: float64(minC) * d.CellSize,
		MinY: float64(minR) * d.CellSize,
		MaxX: math.Min(float64(d.Width), float64(maxC+1)*d.CellSize),
		MaxY: math.Min(float64(d.Height), float64(maxR+1)*d.CellSize),
	}

	return r
}
