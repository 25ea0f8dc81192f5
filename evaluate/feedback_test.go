// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracegrade/evaluate"
	"github.com/katalvlaran/tracegrade/geometry"
)

// TestClassify uses inclusive thresholds.
func TestClassify(t *testing.T) {
	tmpl := []geometry.Stroke{stroke(0, 0, 100, 0)}
	cases := []struct {
		y    float64
		want evaluate.Accuracy
	}{
		{0, evaluate.Excellent},
		{5, evaluate.Excellent},
		{5.5, evaluate.Good},
		{15, evaluate.Good},
		{15.01, evaluate.Neutral},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, evaluate.Classify(geometry.Point{X: 50, Y: c.y}, tmpl), "y=%v", c.y)
	}

	// Scaled canvas widens the bands.
	assert.Equal(t, evaluate.Excellent, evaluate.Classify(geometry.Point{X: 50, Y: 10}, tmpl, evaluate.WithScaleFactor(2)))

	// No template segments: nothing is close.
	assert.Equal(t, evaluate.Neutral, evaluate.Classify(geometry.Point{}, nil))
}

// TestLineTracker_Degrade walks the degrade table.
func TestLineTracker_Degrade(t *testing.T) {
	lt := evaluate.NewLineTracker()

	_, ok := lt.Get("a")
	assert.False(t, ok)

	// Unseen takes the first observation.
	assert.Equal(t, evaluate.Good, lt.Observe("a", evaluate.Good))
	// Good never climbs back.
	assert.Equal(t, evaluate.Good, lt.Observe("a", evaluate.Excellent))
	// Good drops to Neutral.
	assert.Equal(t, evaluate.Neutral, lt.Observe("a", evaluate.Neutral))
	// Neutral is final.
	assert.Equal(t, evaluate.Neutral, lt.Observe("a", evaluate.Excellent))

	// Excellent drops to any lower value.
	assert.Equal(t, evaluate.Excellent, lt.Observe("b", evaluate.Excellent))
	assert.Equal(t, evaluate.Excellent, lt.Observe("b", evaluate.Excellent))
	assert.Equal(t, evaluate.Good, lt.Observe("b", evaluate.Good))

	assert.Equal(t, evaluate.Excellent, lt.Observe("c", evaluate.Excellent))
	assert.Equal(t, evaluate.Neutral, lt.Observe("c", evaluate.Neutral))

	// Unset observations change nothing.
	assert.Equal(t, evaluate.Neutral, lt.Observe("c", evaluate.Unset))

	assert.Equal(t, map[string]evaluate.Accuracy{
		"a": evaluate.Neutral,
		"b": evaluate.Good,
		"c": evaluate.Neutral,
	}, lt.Snapshot())

	lt.Reset()
	assert.Empty(t, lt.Snapshot())
}

// TestLineTracker_ZeroValue works without the constructor, concurrently.
func TestLineTracker_ZeroValue(t *testing.T) {
	var lt evaluate.LineTracker
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lt.Observe("line", evaluate.Excellent)
			lt.Observe("line", evaluate.Good)
		}()
	}
	wg.Wait()
	a, ok := lt.Get("line")
	require.True(t, ok)
	assert.Equal(t, evaluate.Good, a)
}

// TestAccuracy_JSON encodes names.
func TestAccuracy_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]evaluate.Accuracy{"l1": evaluate.Excellent})
	require.NoError(t, err)
	assert.JSONEq(t, `{"l1":"excellent"}`, string(b))
}

//------------------------------------------------------------------------------
// ScoreBatch
//------------------------------------------------------------------------------

// TestScoreBatch keeps attempt order.
func TestScoreBatch(t *testing.T) {
	tmpl := twoBars()
	attempts := [][]geometry.Stroke{
		tmpl,
		{tmpl[1], tmpl[0]},
		tmpl[:1],
	}
	scores, err := evaluate.ScoreBatch(context.Background(), tmpl, attempts)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, 100, scores[0].StrokeOrder)
	assert.Equal(t, 0, scores[1].StrokeOrder)
	assert.Equal(t, 50, scores[2].StrokeOrder)

	for i, a := range attempts {
		want, err := evaluate.CalculateAccuracy(tmpl, a)
		require.NoError(t, err)
		assert.Equal(t, want, scores[i])
	}
}

// TestScoreBatch_AttemptError names the failing attempt.
func TestScoreBatch_AttemptError(t *testing.T) {
	tmpl := twoBars()
	_, err := evaluate.ScoreBatch(context.Background(), tmpl, [][]geometry.Stroke{tmpl, nil})
	require.Error(t, err)

	var ae *evaluate.AttemptError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 1, ae.Index)
	assert.ErrorIs(t, err, evaluate.ErrEmptyDrawing)
	assert.Contains(t, err.Error(), "attempt 1")
}

// TestScoreBatch_Cancelled honors a dead context.
func TestScoreBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tmpl := twoBars()
	_, err := evaluate.ScoreBatch(ctx, tmpl, [][]geometry.Stroke{tmpl, tmpl})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestScoreBatch_Empty returns an empty result.
func TestScoreBatch_Empty(t *testing.T) {
	scores, err := evaluate.ScoreBatch(context.Background(), twoBars(), nil)
	require.NoError(t, err)
	assert.Empty(t, scores)
}
