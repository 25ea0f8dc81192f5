// SPDX-License-Identifier: MIT

package evaluate

import "github.com/katalvlaran/tracegrade/geometry"

// coverage returns (precision, recall), each in [0,1].
//
//   - precision: mean credit of user samples measured against template segments.
//   - recall:    mean credit of template samples measured against the user ink.
//
// Both sides are resampled per stroke, so long strokes weigh more than short
// ones only through their sample count, which is fixed per stroke.
func (e *Evaluator) coverage(tmpl, usr []geometry.Stroke) (precision, recall float64) {
	n := e.opts.samples

	userSamples := geometry.SampleStrokes(usr, n)
	precision = e.meanCredit(userSamples, func(p geometry.Point) float64 {
		return geometry.NearestSegmentDistance(p, tmpl)
	})

	tmplSamples := geometry.SampleSegmented(tmpl, n)
	recall = e.meanCredit(tmplSamples, func(p geometry.Point) float64 {
		return geometry.NearestDistance(p, usr)
	})

	return precision, recall
}

// meanCredit averages credit(dist(p)) over samples; 0 when there are none.
func (e *Evaluator) meanCredit(samples []geometry.Point, dist func(geometry.Point) float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, p := range samples {
		sum += e.credit(dist(p))
	}

	return sum / float64(len(samples))
}

// credit maps a distance to 1, GoodCredit or 0. NaN distances earn nothing.
func (e *Evaluator) credit(d float64) float64 {
	switch {
	case d <= e.opts.Excellent():
		return 1
	case d <= e.opts.Good():
		return e.opts.goodCredit
	default:
		return 0
	}
}
