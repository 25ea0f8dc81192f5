package heatmap_test

import (
	"fmt"

	"github.com/katalvlaran/tracegrade/geometry"
	"github.com/katalvlaran/tracegrade/heatmap"
)

// ExampleGenerateHeatmapData reports where a drawing strayed from a bar.
func ExampleGenerateHeatmapData() {
	template := []geometry.Stroke{{Points: []geometry.Point{{X: 0, Y: 50}, {X: 100, Y: 50}}}}
	user := []geometry.Stroke{{Points: []geometry.Point{{X: 0, Y: 50}, {X: 50, Y: 50}, {X: 100, Y: 95}}}}

	d, err := heatmap.GenerateHeatmapData(template, user, 100, 100, heatmap.WithMode(heatmap.ModeUser))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d cells, covered %d, hot %d\n", d.Cols, d.Rows, d.CoveredCells(), d.HotCells(0.5))
	for _, r := range d.Hotspots(0.5, heatmap.Conn8) {
		fmt.Printf("hotspot %v-%v cells=%d\n",
			geometry.Point{X: r.Bounds.MinX, Y: r.Bounds.MinY},
			geometry.Point{X: r.Bounds.MaxX, Y: r.Bounds.MaxY}, len(r.Cells))
	}
	// Output:
	// 10x10 cells, covered 14, hot 5
	// hotspot {70 70}-{100 100} cells=5
}
