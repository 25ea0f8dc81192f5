// SPDX-License-Identifier: MIT

// Package evaluate: functional configuration for the accuracy evaluator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Every knob changes a documented part of the score.

package evaluate

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

// Distance thresholds, in the coordinate units of the inputs (canvas pixels).
const (
	// DefaultThresholdExcellent: a sample at most this far from the other side
	// earns full credit. Inclusive.
	DefaultThresholdExcellent = 5.0

	// DefaultThresholdGood: a sample at most this far earns GoodCredit. Inclusive.
	DefaultThresholdGood = 15.0

	// DefaultGoodCredit is the overlap credit of a "good" sample.
	DefaultGoodCredit = 0.5

	// DefaultThresholdScale multiplies both thresholds; set it to the factor a
	// template was scaled by when fitted onto the canvas.
	DefaultThresholdScale = 1.0
)

// Sampling.
const (
	// DefaultSamples is the number of samples taken along each stroke.
	DefaultSamples = 64
)

// Composite weights.
const (
	DefaultWeightOverlap     = 0.6
	DefaultWeightStrokeOrder = 0.2
	DefaultWeightProportion  = 0.2
)

// DTW matching.
const (
	// DefaultDTWWindow is the Sakoe–Chiba band for MatchDTW; -1 is unlimited.
	DefaultDTWWindow = -1

	// DefaultDTWSlopePenalty is the extra cost of a DTW insertion or deletion.
	DefaultDTWSlopePenalty = 0.0
)

// Proportion penalties.
const (
	// DefaultAspectPenaltyFactor scales the aspect-angle difference (0..1).
	DefaultAspectPenaltyFactor = 2.0

	// DefaultScalePenaltyFactor scales the relative size difference.
	DefaultScalePenaltyFactor = 1.0
)

// ---------- Matching strategy ----------

// Matching selects how a template stroke is compared with a user stroke when
// deciding which user stroke traced it.
type Matching int

const (
	// MatchAverageDistance uses the symmetric mean sample-to-polyline distance.
	MatchAverageDistance Matching = iota

	// MatchStartPoint uses the distance between the two first points.
	MatchStartPoint

	// MatchDTW uses the Dynamic Time Warping distance between resampled
	// strokes, normalized by the sample count.
	MatchDTW
)

// String returns the configuration name of m.
func (m Matching) String() string {
	switch m {
	case MatchAverageDistance:
		return "average"
	case MatchStartPoint:
		return "start"
	case MatchDTW:
		return "dtw"
	default:
		return fmt.Sprintf("Matching(%d)", int(m))
	}
}

// ParseMatching maps a configuration name back to a Matching.
func ParseMatching(s string) (Matching, bool) {
	switch s {
	case "average", "":
		return MatchAverageDistance, true
	case "start":
		return MatchStartPoint, true
	case "dtw":
		return MatchDTW, true
	}
	return MatchAverageDistance, false
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholds   = "evaluate: WithThresholds: need 0 <= excellent <= good, both finite"
	panicGoodCredit   = "evaluate: WithGoodCredit: credit must be in [0,1]"
	panicSamples      = "evaluate: WithSamples: need at least 2 samples"
	panicWeights      = "evaluate: WithWeights: weights must be finite, non-negative and not all zero"
	panicMatching     = "evaluate: WithMatching: unknown strategy"
	panicScaleFactor  = "evaluate: WithScaleFactor: factor must be finite and > 0"
	panicPenaltyScale = "evaluate: WithPenaltyFactors: factors must be finite and non-negative"
	panicDTW          = "evaluate: WithDTW: need window >= -1 and a finite, non-negative slope penalty"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options holds the evaluator configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	thresholdExcellent float64
	thresholdGood      float64
	goodCredit         float64
	thresholdScale     float64

	samples  int
	matching Matching

	dtwWindow int
	dtwSlope  float64

	weightOverlap     float64
	weightStrokeOrder float64
	weightProportion  float64

	aspectPenalty float64
	scalePenalty  float64
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		thresholdExcellent: DefaultThresholdExcellent,
		thresholdGood:      DefaultThresholdGood,
		goodCredit:         DefaultGoodCredit,
		thresholdScale:     DefaultThresholdScale,
		samples:            DefaultSamples,
		matching:           MatchAverageDistance,
		dtwWindow:          DefaultDTWWindow,
		dtwSlope:           DefaultDTWSlopePenalty,
		weightOverlap:      DefaultWeightOverlap,
		weightStrokeOrder:  DefaultWeightStrokeOrder,
		weightProportion:   DefaultWeightProportion,
		aspectPenalty:      DefaultAspectPenaltyFactor,
		scalePenalty:       DefaultScalePenaltyFactor,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WithThresholds sets the excellent and good distance thresholds.
// Panics unless 0 <= excellent <= good and both are finite.
func WithThresholds(excellent, good float64) Option {
	if !finite(excellent) || !finite(good) || excellent < 0 || excellent > good {
		panic(panicThresholds)
	}
	return func(o *Options) {
		o.thresholdExcellent = excellent
		o.thresholdGood = good
	}
}

// WithGoodCredit sets the overlap credit of a sample within the good threshold.
func WithGoodCredit(credit float64) Option {
	if !finite(credit) || credit < 0 || credit > 1 {
		panic(panicGoodCredit)
	}
	return func(o *Options) { o.goodCredit = credit }
}

// WithScaleFactor multiplies both thresholds by factor, mirroring how the
// template was scaled onto the canvas.
func WithScaleFactor(factor float64) Option {
	if !finite(factor) || factor <= 0 {
		panic(panicScaleFactor)
	}
	return func(o *Options) { o.thresholdScale = factor }
}

// WithSamples sets the number of samples per stroke.
func WithSamples(n int) Option {
	if n < 2 {
		panic(panicSamples)
	}
	return func(o *Options) { o.samples = n }
}

// WithWeights sets the composite weights for overlap, stroke order and
// proportion. They are normalized by their sum.
func WithWeights(overlap, strokeOrder, proportion float64) Option {
	for _, w := range []float64{overlap, strokeOrder, proportion} {
		if !finite(w) || w < 0 {
			panic(panicWeights)
		}
	}
	if overlap+strokeOrder+proportion == 0 {
		panic(panicWeights)
	}
	return func(o *Options) {
		o.weightOverlap = overlap
		o.weightStrokeOrder = strokeOrder
		o.weightProportion = proportion
	}
}

// WithMatching selects the stroke matching strategy.
func WithMatching(m Matching) Option {
	if m < MatchAverageDistance || m > MatchDTW {
		panic(panicMatching)
	}
	return func(o *Options) { o.matching = m }
}

// WithDTW tunes MatchDTW: window bounds |i-j| of the warping path (-1 for
// none) and slopePenalty is added to every non-diagonal step. A window
// narrower than the difference of two sample counts is widened to it.
func WithDTW(window int, slopePenalty float64) Option {
	if window < -1 || !finite(slopePenalty) || slopePenalty < 0 {
		panic(panicDTW)
	}
	return func(o *Options) {
		o.dtwWindow = window
		o.dtwSlope = slopePenalty
	}
}

// WithPenaltyFactors sets the proportion penalty factors for the aspect-angle
// difference and the relative scale difference.
func WithPenaltyFactors(aspect, scale float64) Option {
	if !finite(aspect) || !finite(scale) || aspect < 0 || scale < 0 {
		panic(panicPenaltyScale)
	}
	return func(o *Options) {
		o.aspectPenalty = aspect
		o.scalePenalty = scale
	}
}

// Excellent returns the effective excellent threshold (scaled).
func (o Options) Excellent() float64 { return o.thresholdExcellent * o.thresholdScale }

// Good returns the effective good threshold (scaled).
func (o Options) Good() float64 { return o.thresholdGood * o.thresholdScale }

// Samples returns the per-stroke sample count.
func (o Options) Samples() int { return o.samples }

// Matching returns the configured strategy.
func (o Options) Matching() Matching { return o.matching }

// DTW returns the MatchDTW window and slope penalty.
func (o Options) DTW() (window int, slopePenalty float64) { return o.dtwWindow, o.dtwSlope }
