// SPDX-License-Identifier: MIT

package evaluate

import (
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
)

// Score is the result of one evaluation. Every field is in [0,100].
type Score struct {
	Score       int `json:"score"`
	Overlap     int `json:"overlap"`
	StrokeOrder int `json:"strokeOrder"`
	Proportion  int `json:"proportion"`
}

// Report is a Score together with the intermediate quantities it was derived
// from, for diagnostics and per-stroke feedback.
type Report struct {
	Score

	// Precision is the mean credit of user samples against the template.
	Precision float64 `json:"precision"`
	// Recall is the mean credit of template samples against the drawing.
	Recall float64 `json:"recall"`

	// Match[i] is the index (into the caller's user slice) of the stroke that
	// traced template stroke i, or -1. Template strokes without a segment are
	// always -1.
	Match []int `json:"match"`
	// Inversions counts matched template stroke pairs drawn in reverse order.
	Inversions int `json:"inversions"`
	// MatchCost sums the matching cost of the paired strokes, in the units of
	// the configured Matching (pixels for all three strategies).
	MatchCost float64 `json:"matchCost"`

	// TemplateStrokes and UserStrokes count the strokes that took part.
	TemplateStrokes int `json:"templateStrokes"`
	UserStrokes     int `json:"userStrokes"`
}

// Evaluator computes scores with a fixed configuration. The zero value is not
// usable; construct with New.
type Evaluator struct {
	opts Options
}

// New returns an Evaluator configured by opts over the defaults.
func New(opts ...Option) *Evaluator {
	return &Evaluator{opts: gatherOptions(opts...)}
}

// Options returns a copy of the evaluator configuration.
func (e *Evaluator) Options() Options {
	return e.opts
}

// CalculateAccuracy scores user against template with a one-off Evaluator.
func CalculateAccuracy(template, user []geometry.Stroke, opts ...Option) (Score, error) {
	return New(opts...).Evaluate(template, user)
}

// Evaluate returns the composite and sub-scores for user against template.
//
// Errors:
//   - ErrEmptyDrawing when no user stroke has a point.
//   - ErrEmptyTemplate when no template stroke has a segment.
func (e *Evaluator) Evaluate(template, user []geometry.Stroke) (Score, error) {
	r, err := e.Report(template, user)
	if err != nil {
		return Score{}, err
	}

	return r.Score, nil
}

// Report is Evaluate with intermediate results.
//
// Implementation:
//   - Stage 1: keep usable strokes, remembering their original indices.
//   - Stage 2: overlap from bidirectional sample credit.
//   - Stage 3: stroke order from greedy assignment + inversions.
//   - Stage 4: proportion from bounding boxes.
//   - Stage 5: weighted composite.
//
// Complexity: O(S·P) for S samples and P segments, plus O(T·U·cost) for the
// stroke cost table; tiny for a handwritten character.
func (e *Evaluator) Report(template, user []geometry.Stroke) (Report, error) {
	usr, usrIdx := filter(user, geometry.Stroke.Usable)
	if len(usr) == 0 {
		return Report{}, ErrEmptyDrawing
	}
	tmpl, tmplIdx := filter(template, geometry.Stroke.HasSegment)
	if len(tmpl) == 0 {
		return Report{}, ErrEmptyTemplate
	}

	precision, recall := e.coverage(tmpl, usr)
	overlap := clampScore(100 * (precision + recall) / 2)

	order, match, inv, matchCost := e.strokeOrder(tmpl, usr)
	proportion := e.proportion(tmpl, usr)

	// Translate match indices back into the caller's numbering.
	fullMatch := make([]int, len(template))
	for i := range fullMatch {
		fullMatch[i] = -1
	}
	for k, j := range match {
		if j >= 0 {
			fullMatch[tmplIdx[k]] = usrIdx[j]
		}
	}

	s := Score{
		Overlap:     overlap,
		StrokeOrder: order,
		Proportion:  proportion,
	}
	s.Score = e.composite(s)

	return Report{
		Score:           s,
		Precision:       precision,
		Recall:          recall,
		Match:           fullMatch,
		Inversions:      inv,
		MatchCost:       matchCost,
		TemplateStrokes: len(tmpl),
		UserStrokes:     len(usr),
	}, nil
}

// composite returns the weighted mean of the sub-scores.
func (e *Evaluator) composite(s Score) int {
	o := e.opts
	sum := o.weightOverlap + o.weightStrokeOrder + o.weightProportion
	v := (o.weightOverlap*float64(s.Overlap) +
		o.weightStrokeOrder*float64(s.StrokeOrder) +
		o.weightProportion*float64(s.Proportion)) / sum

	return clampScore(v)
}

// filter keeps strokes accepted by keep and returns them with their indices.
func filter(strokes []geometry.Stroke, keep func(geometry.Stroke) bool) ([]geometry.Stroke, []int) {
	out := make([]geometry.Stroke, 0, len(strokes))
	idx := make([]int, 0, len(strokes))
	for i, s := range strokes {
		if keep(s) {
			out = append(out, s)
			idx = append(idx, i)
		}
	}

	return out, idx
}

// clampScore rounds v and clamps it to [0,100]; NaN maps to 0.
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return int(v)
}
