// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracegrade/evaluate"
	"github.com/katalvlaran/tracegrade/geometry"
)

// stroke builds a stroke from x,y pairs.
func stroke(coords ...float64) geometry.Stroke {
	return geometry.Stroke{Points: geometry.MustFromFlat(coords), Width: 4}
}

// square is a 100×100 open square drawn as one stroke, scaled by k.
func square(k float64) geometry.Stroke {
	return stroke(0, 0, 100*k, 0, 100*k, 100*k, 0, 100*k)
}

// twoBars is a template with two horizontal strokes, top first.
func twoBars() []geometry.Stroke {
	return []geometry.Stroke{
		stroke(0, 0, 100, 0),
		stroke(0, 100, 100, 100),
	}
}

//------------------------------------------------------------------------------
// Empty input policy
//------------------------------------------------------------------------------

// TestEvaluate_EmptyDrawing reports ErrEmptyDrawing with a zero score.
func TestEvaluate_EmptyDrawing(t *testing.T) {
	for _, user := range [][]geometry.Stroke{nil, {}, {{}}, {{Points: []geometry.Point{}}}} {
		s, err := evaluate.CalculateAccuracy(twoBars(), user)
		assert.ErrorIs(t, err, evaluate.ErrEmptyDrawing)
		assert.Equal(t, evaluate.Score{}, s)
	}
}

// TestEvaluate_EmptyTemplate requires at least one template segment.
func TestEvaluate_EmptyTemplate(t *testing.T) {
	user := []geometry.Stroke{stroke(0, 0, 10, 10)}
	for _, tmpl := range [][]geometry.Stroke{nil, {stroke(5, 5)}} {
		s, err := evaluate.CalculateAccuracy(tmpl, user)
		assert.ErrorIs(t, err, evaluate.ErrEmptyTemplate)
		assert.Equal(t, evaluate.Score{}, s)
	}
}

// TestEvaluate_BothEmpty checks the drawing first.
func TestEvaluate_BothEmpty(t *testing.T) {
	_, err := evaluate.CalculateAccuracy(nil, nil)
	assert.ErrorIs(t, err, evaluate.ErrEmptyDrawing)
}

//------------------------------------------------------------------------------
// Sub-scores
//------------------------------------------------------------------------------

// TestEvaluate_Identical scores a perfect copy at the top.
func TestEvaluate_Identical(t *testing.T) {
	tmpl := []geometry.Stroke{square(1), stroke(20, 50, 80, 50)}
	s, err := evaluate.CalculateAccuracy(tmpl, tmpl)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Overlap, 95)
	assert.Equal(t, 100, s.StrokeOrder)
	assert.Equal(t, 100, s.Proportion)
	assert.Equal(t, 100, s.Score)
}

// TestEvaluate_ParallelLine is the boundary case: every sample sits exactly
// on the excellent threshold and both boxes have zero height.
func TestEvaluate_ParallelLine(t *testing.T) {
	tmpl := []geometry.Stroke{stroke(0, 0, 100, 0)}
	user := []geometry.Stroke{stroke(0, 5, 100, 5)}

	s, err := evaluate.CalculateAccuracy(tmpl, user)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, s.Overlap, 90)
	assert.Equal(t, 100, s.StrokeOrder)
	assert.Equal(t, 100, s.Proportion)
}

// TestEvaluate_GoodCredit puts every sample in the good band.
func TestEvaluate_GoodCredit(t *testing.T) {
	tmpl := []geometry.Stroke{stroke(0, 0, 100, 0)}
	user := []geometry.Stroke{stroke(0, 10, 100, 10)}

	s, err := evaluate.CalculateAccuracy(tmpl, user)
	require.NoError(t, err)
	assert.Equal(t, 50, s.Overlap)
	assert.Equal(t, 70, s.Score)

	s, err = evaluate.CalculateAccuracy(tmpl, user, evaluate.WithGoodCredit(1))
	require.NoError(t, err)
	assert.Equal(t, 100, s.Overlap)

	// Doubling the thresholds turns the band into excellent.
	s, err = evaluate.CalculateAccuracy(tmpl, user, evaluate.WithScaleFactor(2))
	require.NoError(t, err)
	assert.Equal(t, 100, s.Overlap)
}

// TestEvaluate_ScribbleDoesNotCover: ink near one end cannot earn full overlap.
func TestEvaluate_ScribbleDoesNotCover(t *testing.T) {
	tmpl := []geometry.Stroke{stroke(0, 0, 200, 0)}
	user := []geometry.Stroke{stroke(0, 0, 10, 0)}

	r, err := evaluate.New().Report(tmpl, user)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Precision)
	assert.Less(t, r.Recall, 0.2)
	assert.Less(t, r.Overlap, 60)
}

// TestEvaluate_SwappedOrder reverses two strokes under every matching strategy.
func TestEvaluate_SwappedOrder(t *testing.T) {
	tmpl := twoBars()
	user := []geometry.Stroke{tmpl[1], tmpl[0]}

	for _, m := range []evaluate.Matching{evaluate.MatchAverageDistance, evaluate.MatchStartPoint, evaluate.MatchDTW} {
		t.Run(m.String(), func(t *testing.T) {
			ev := evaluate.New(evaluate.WithMatching(m))
			inOrder, err := ev.Evaluate(tmpl, tmpl)
			require.NoError(t, err)
			swapped, err := ev.Report(tmpl, user)
			require.NoError(t, err)

			assert.Equal(t, 100, inOrder.StrokeOrder)
			assert.Equal(t, 0, swapped.StrokeOrder)
			assert.Equal(t, 1, swapped.Inversions)
			assert.Equal(t, []int{1, 0}, swapped.Match)
			assert.Equal(t, 100, swapped.Overlap, "order must not affect overlap")
			assert.Equal(t, 80, swapped.Score.Score)
		})
	}
}

// TestReport_MatchCost sums the cost of the paired strokes; a 10px shift
// costs 10 per stroke under every strategy.
func TestReport_MatchCost(t *testing.T) {
	tmpl := twoBars()
	shifted := []geometry.Stroke{stroke(0, 10, 100, 10), stroke(0, 110, 100, 110)}

	for _, m := range []evaluate.Matching{evaluate.MatchAverageDistance, evaluate.MatchStartPoint, evaluate.MatchDTW} {
		t.Run(m.String(), func(t *testing.T) {
			ev := evaluate.New(evaluate.WithMatching(m))
			same, err := ev.Report(tmpl, tmpl)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, same.MatchCost, 1e-9)

			r, err := ev.Report(tmpl, shifted)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1}, r.Match)
			assert.InDelta(t, 20.0, r.MatchCost, 1e-9)
		})
	}
}

// TestEvaluate_DTWWindow runs MatchDTW inside a band, including a dot whose
// single sample needs the band widened to reach the last template sample.
func TestEvaluate_DTWWindow(t *testing.T) {
	tmpl := twoBars()
	ev := evaluate.New(evaluate.WithMatching(evaluate.MatchDTW), evaluate.WithDTW(4, 0.5))
	window, slope := ev.Options().DTW()
	assert.Equal(t, 4, window)
	assert.Equal(t, 0.5, slope)

	swapped, err := ev.Report(tmpl, []geometry.Stroke{tmpl[1], tmpl[0]})
	require.NoError(t, err)
	assert.Equal(t, 1, swapped.Inversions)
	assert.InDelta(t, 0.0, swapped.MatchCost, 1e-9)

	dot := []geometry.Stroke{stroke(50, 0)}
	r, err := evaluate.New(evaluate.WithMatching(evaluate.MatchDTW), evaluate.WithDTW(0, 0)).Report(tmpl[:1], dot)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Match)
	assert.False(t, math.IsInf(r.MatchCost, 0))
	assert.Greater(t, r.MatchCost, 0.0)
	assert.Equal(t, 100, r.StrokeOrder)

	assert.Panics(t, func() { evaluate.WithDTW(-2, 0) })
	assert.Panics(t, func() { evaluate.WithDTW(3, -1) })
	assert.Panics(t, func() { evaluate.WithDTW(3, math.NaN()) })
}

// TestEvaluate_MissingStroke penalizes the stroke-count ratio.
func TestEvaluate_MissingStroke(t *testing.T) {
	tmpl := twoBars()
	s, err := evaluate.CalculateAccuracy(tmpl, tmpl[:1])
	require.NoError(t, err)
	assert.Equal(t, 50, s.StrokeOrder)

	extra := append(append([]geometry.Stroke{}, tmpl...), stroke(0, 200, 100, 200), stroke(0, 300, 100, 300))
	s, err = evaluate.CalculateAccuracy(tmpl, extra)
	require.NoError(t, err)
	assert.Equal(t, 50, s.StrokeOrder)
}

// TestEvaluate_ScalingLowersProportion holds the aspect and grows the size.
func TestEvaluate_ScalingLowersProportion(t *testing.T) {
	tmpl := []geometry.Stroke{square(1)}
	prev := 101
	for _, k := range []float64{1, 1.1, 1.3, 1.6} {
		s, err := evaluate.CalculateAccuracy(tmpl, []geometry.Stroke{square(k)})
		require.NoError(t, err)
		assert.Less(t, s.Proportion, prev, "k=%v", k)
		prev = s.Proportion
	}
	assert.Equal(t, 40, prev)
}

// TestEvaluate_AspectChange squashes the drawing vertically.
func TestEvaluate_AspectChange(t *testing.T) {
	tmpl := []geometry.Stroke{square(1)}
	flat := []geometry.Stroke{stroke(0, 0, 100, 0, 100, 50, 0, 50)}

	s, err := evaluate.CalculateAccuracy(tmpl, flat, evaluate.WithPenaltyFactors(2, 0))
	require.NoError(t, err)
	// |atan2(50,100) - π/4| / (π/2) ≈ 0.2048, doubled ≈ 0.41.
	assert.Equal(t, 59, s.Proportion)
}

// TestReport_MatchUsesCallerIndices skips degenerate strokes but reports the
// caller's numbering.
func TestReport_MatchUsesCallerIndices(t *testing.T) {
	bars := twoBars()
	tmpl := []geometry.Stroke{bars[0], stroke(50, 50), bars[1]}
	user := []geometry.Stroke{{}, bars[0], bars[1]}

	r, err := evaluate.New().Report(tmpl, user)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1, 2}, r.Match)
	assert.Equal(t, 2, r.TemplateStrokes)
	assert.Equal(t, 2, r.UserStrokes)
	assert.Equal(t, 100, r.StrokeOrder)
}

// TestEvaluate_DotDrawing accepts a single tap as a drawing.
func TestEvaluate_DotDrawing(t *testing.T) {
	s, err := evaluate.CalculateAccuracy(twoBars(), []geometry.Stroke{stroke(50, 0)})
	require.NoError(t, err)
	assert.Equal(t, 50, s.StrokeOrder)
	assert.Less(t, s.Overlap, 60)
}

// TestEvaluate_Bounds runs random drawings and checks every score range.
func TestEvaluate_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() []geometry.Stroke {
		n := 1 + rng.Intn(4)
		out := make([]geometry.Stroke, n)
		for i := range out {
			m := 1 + rng.Intn(6)
			coords := make([]float64, 0, 2*m)
			for j := 0; j < m; j++ {
				coords = append(coords, rng.Float64()*300-50, rng.Float64()*300-50)
			}
			out[i] = stroke(coords...)
		}
		return out
	}

	for i := 0; i < 200; i++ {
		tmpl, user := random(), random()
		s, err := evaluate.CalculateAccuracy(tmpl, user)
		if err != nil {
			assert.ErrorIs(t, err, evaluate.ErrEmptyTemplate)
			continue
		}
		for _, v := range []int{s.Score, s.Overlap, s.StrokeOrder, s.Proportion} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
	}
}

// TestEvaluate_NaNCoordinates never panics and stays in range.
func TestEvaluate_NaNCoordinates(t *testing.T) {
	nan := math.NaN()
	user := []geometry.Stroke{stroke(nan, 0, 100, nan)}
	s, err := evaluate.CalculateAccuracy(twoBars(), user)
	require.NoError(t, err)
	for _, v := range []int{s.Score, s.Overlap, s.StrokeOrder, s.Proportion} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}

// TestEvaluate_Weights changes only the composite.
func TestEvaluate_Weights(t *testing.T) {
	tmpl := twoBars()
	user := []geometry.Stroke{tmpl[1], tmpl[0]}

	s, err := evaluate.CalculateAccuracy(tmpl, user, evaluate.WithWeights(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Score)

	s, err = evaluate.CalculateAccuracy(tmpl, user, evaluate.WithWeights(3, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 100, s.Score)
}

//------------------------------------------------------------------------------
// Options
//------------------------------------------------------------------------------

// TestOptions_Panics rejects nonsensical values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { evaluate.WithThresholds(10, 5) })
	assert.Panics(t, func() { evaluate.WithThresholds(-1, 5) })
	assert.Panics(t, func() { evaluate.WithThresholds(math.NaN(), 5) })
	assert.Panics(t, func() { evaluate.WithGoodCredit(1.5) })
	assert.Panics(t, func() { evaluate.WithSamples(1) })
	assert.Panics(t, func() { evaluate.WithWeights(0, 0, 0) })
	assert.Panics(t, func() { evaluate.WithWeights(-1, 1, 1) })
	assert.Panics(t, func() { evaluate.WithMatching(evaluate.Matching(9)) })
	assert.Panics(t, func() { evaluate.WithScaleFactor(0) })
	assert.Panics(t, func() { evaluate.WithPenaltyFactors(math.Inf(1), 1) })
}

// TestOptions_Effective reads back the scaled thresholds.
func TestOptions_Effective(t *testing.T) {
	o := evaluate.New(evaluate.WithThresholds(4, 12), evaluate.WithScaleFactor(1.5), evaluate.WithSamples(16)).Options()
	assert.Equal(t, 6.0, o.Excellent())
	assert.Equal(t, 18.0, o.Good())
	assert.Equal(t, 16, o.Samples())
	assert.Equal(t, evaluate.MatchAverageDistance, o.Matching())
}

// TestParseMatching round-trips the configuration names.
func TestParseMatching(t *testing.T) {
	for _, m := range []evaluate.Matching{evaluate.MatchAverageDistance, evaluate.MatchStartPoint, evaluate.MatchDTW} {
		got, ok := evaluate.ParseMatching(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := evaluate.ParseMatching("hungarian")
	assert.False(t, ok)
}
