// SPDX-License-Identifier: MIT

package evaluate

import (
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
)

// proportion compares the overall bounding boxes of both drawings.
//
//	aspect  = |atan2(hu, wu) - atan2(ht, wt)| / (π/2)   in [0,1]
//	scale   = |du/dt - 1|                                 (d = box diagonal)
//	penalty = min(1, AspectPenalty·aspect + ScalePenalty·scale)
//	score   = round(100·(1 - penalty))
//
// A zero template diagonal gives scale 0 when the user box is also a point
// and 1 otherwise.
func (e *Evaluator) proportion(tmpl, usr []geometry.Stroke) int {
	tb := geometry.BoundingBox(tmpl)
	ub := geometry.BoundingBox(usr)

	aspect := math.Abs(math.Atan2(ub.Height(), ub.Width())-math.Atan2(tb.Height(), tb.Width())) / (math.Pi / 2)

	var scale float64
	dt, du := tb.Diagonal(), ub.Diagonal()
	switch {
	case dt == 0 && du == 0:
		scale = 0
	case dt == 0:
		scale = 1
	default:
		scale = math.Abs(du/dt - 1)
	}

	penalty := math.Min(1, e.opts.aspectPenalty*aspect+e.opts.scalePenalty*scale)

	return clampScore(100 * (1 - penalty))
}
