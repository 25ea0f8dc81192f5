// Package heatmap rasterizes the deviation between a drawing and its template
// into a coarse grid of cells.
//
// What:
//
//   - GenerateHeatmapData returns Data: a Rows×Cols grid covering a
//     width×height canvas with square cells of CellSize pixels
//     (Cols = ceil(width/CellSize), Rows = ceil(height/CellSize)).
//   - Each cell holds a value in [0,1]: the distance from the cell centre to
//     the reference geometry, divided by MaxDeviation and capped at 1. The
//     value is a function of that distance alone, so it never improves as a
//     cell moves away from the reference.
//   - Coverage marks the cells the measured strokes pass through.
//   - Hotspots groups neighbouring covered cells above a threshold into Regions.
//
// Modes:
//
//   - ModeUser:     distance to the nearest template segment; coverage from
//     the user ink (ink drawn off the path).
//   - ModeTemplate: distance to the nearest user stroke; coverage from the
//     template (parts of the letter that were missed).
//   - ModeBoth:     the larger distance, coverage from either side (default).
//
// Coverage samples every segment at CellSize/2 spacing after clipping it to
// the canvas, so each cell a stroke passes through is marked and off-canvas
// coordinates cost nothing.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyDrawing / ErrEmptyTemplate: same policy as package evaluate.
//
// Complexity:
//
//   - O(Rows·Cols·P) for P template/user segments, plus O(diagonal/CellSize)
//     coverage samples per segment.
package heatmap
