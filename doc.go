// Package tracegrade scores freehand letter tracing: how closely a drawing
// follows a template letter, whether its strokes came in the right order,
// and whether its proportions match, plus a heatmap of where it strayed.
//
// 🚀 What is inside?
//
//	A pure, deterministic scoring engine for a letter-tracing trainer:
//		• Geometry: points, strokes, point-to-segment distance, arc-length
//		  interpolation and resampling
//		• Scoring: overlap (bidirectional coverage), stroke order (greedy
//		  assignment + inversions), proportion (aspect angle + scale)
//		• Feedback: real-time excellent / good / neutral classification and
//		  per-line tracking
//		• Heatmap: per-cell deviation grid with hotspot regions
//		• Data: YAML/JSON templates, built-in A–Z and 0–9 glyphs, 28×28
//		  feature grids for recognizers
//
// ✨ Why tracegrade?
//
//   - Deterministic – the same drawing always scores the same
//   - Total – degenerate input returns sentinel errors, never panics
//   - Tunable – every threshold and weight is a functional option or a
//     YAML setting
//
// Packages:
//
//	geometry/ : Point, Stroke, distances, interpolation, resampling
//	evaluate/ : CalculateAccuracy, Evaluator, Classify, LineTracker, ScoreBatch
//	heatmap/  : GenerateHeatmapData, Hotspots
//	dtw/      : Dynamic Time Warping over 2D point sequences
//	assign/   : deterministic greedy assignment and inversion counting
//	raster/   : dense row-major float grid
//	template/ : template files and canvas fitting
//	glyphs/   : built-in 5×7 skeleton templates
//	features/ : 28×28 binary feature grid
//	config/   : YAML settings with defaults
//	log/      : leveled loggers for loaders and the CLI
//	cmd/tracegrade: command line scorer
//
// Quick ASCII example:
//
//	template  ──────────      user  ~~~~~~~~~~   (5px below)
//
//	overlap 100, strokeOrder 100, proportion 100
//
//	go install github.com/katalvlaran/tracegrade/cmd/tracegrade@latest
package tracegrade
