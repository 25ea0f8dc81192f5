// SPDX-License-Identifier: MIT

package evaluate

import (
	"math"

	"github.com/katalvlaran/tracegrade/assign"
	"github.com/katalvlaran/tracegrade/dtw"
	"github.com/katalvlaran/tracegrade/geometry"
)

// strokeOrder scores the drawing sequence.
//
// Implementation:
//   - Stage 1: cost[i][j] = matching cost of template stroke i vs user stroke j.
//   - Stage 2: assign.Greedy pairs strokes; assign.Inversions counts matched
//     template pairs whose user indices run backwards.
//   - Stage 3: order = 1 - inv/(k(k-1)/2) for k matched pairs (1 if k < 2),
//     count = min(T,U)/max(T,U), score = round(100·order·count).
//
// Returns the score, match (template index -> user index in usr, or -1), the
// inversion count and the summed cost of the matched pairs.
func (e *Evaluator) strokeOrder(tmpl, usr []geometry.Stroke) (int, []int, int, float64) {
	cost := e.costTable(tmpl, usr)
	match, err := assign.Greedy(cost)
	if err != nil {
		// costTable always builds a rectangular table.
		return 0, nil, 0, 0
	}

	inv, k := assign.Inversions(match)
	order := 1.0
	if k >= 2 {
		pairs := float64(k*(k-1)) / 2
		order = 1 - float64(inv)/pairs
	}

	t, u := float64(len(tmpl)), float64(len(usr))
	count := math.Min(t, u) / math.Max(t, u)

	return clampScore(100 * order * count), match, inv, assign.Total(cost, match)
}

// costTable builds the T×U matching cost table.
func (e *Evaluator) costTable(tmpl, usr []geometry.Stroke) [][]float64 {
	n := e.opts.samples
	ts := make([][]geometry.Point, len(tmpl))
	for i, s := range tmpl {
		ts[i] = geometry.Resample(s.Points, n)
	}
	us := make([][]geometry.Point, len(usr))
	for j, s := range usr {
		us[j] = geometry.Resample(s.Points, n)
	}

	cost := make([][]float64, len(tmpl))
	for i := range tmpl {
		cost[i] = make([]float64, len(usr))
		for j := range usr {
			cost[i][j] = e.strokeCost(tmpl[i], usr[j], ts[i], us[j])
		}
	}

	return cost
}

// strokeCost returns the configured distance between two strokes; smaller is
// a better match. ta and ua are the resampled points of t and u.
func (e *Evaluator) strokeCost(t, u geometry.Stroke, ta, ua []geometry.Point) float64 {
	switch e.opts.matching {
	case MatchStartPoint:
		return geometry.Distance(t.Points[0], u.Points[0])
	case MatchDTW:
		opts := dtw.DefaultOptions()
		opts.Window, opts.SlopePenalty = e.opts.dtwWindow, e.opts.dtwSlope
		// A dot resamples to one point; the band must still reach (n,m).
		if diff := len(ta) - len(ua); opts.Window >= 0 {
			opts.Window = max(opts.Window, diff, -diff)
		}
		d, _, err := dtw.DTW(ta, ua, &opts)
		if err != nil {
			return math.Inf(1)
		}
		return d / float64(max(len(ta), len(ua)))
	default:
		return (meanDistance(ta, u.Points) + meanDistance(ua, t.Points)) / 2
	}
}

// meanDistance is the mean distance from samples to the polyline pts.
func meanDistance(samples, pts []geometry.Point) float64 {
	if len(samples) == 0 {
		return math.Inf(1)
	}
	var sum float64
	for _, p := range samples {
		sum += geometry.DistanceToPolyline(p, pts)
	}

	return sum / float64(len(samples))
}
