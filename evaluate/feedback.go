// SPDX-License-Identifier: MIT

package evaluate

import (
	"sync"

	"github.com/katalvlaran/tracegrade/geometry"
)

// Accuracy is the real-time quality of a pen position or a drawn line.
type Accuracy int

const (
	// Unset means no sample has been observed yet.
	Unset Accuracy = iota
	// Neutral: farther than the good threshold.
	Neutral
	// Good: within the good threshold.
	Good
	// Excellent: within the excellent threshold.
	Excellent
)

// String returns the lower-case name used in JSON and logs.
func (a Accuracy) String() string {
	switch a {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Neutral:
		return "neutral"
	default:
		return "unset"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Accuracy) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Classify grades p by its distance to the nearest template segment, with the
// default thresholds modified by opts.
func Classify(p geometry.Point, template []geometry.Stroke, opts ...Option) Accuracy {
	return New(opts...).Classify(p, template)
}

// Classify grades p by its distance to the nearest template segment. A
// template without segments classifies everything as Neutral.
func (e *Evaluator) Classify(p geometry.Point, template []geometry.Stroke) Accuracy {
	d := geometry.NearestSegmentDistance(p, template)
	switch {
	case d <= e.opts.Excellent():
		return Excellent
	case d <= e.opts.Good():
		return Good
	default:
		return Neutral
	}
}

// LineTracker keeps one Accuracy per drawn line. A line only ever degrades:
//
//   - unseen line    -> takes the observed value;
//   - Excellent line -> drops to any lower observation;
//   - Good line      -> drops to Neutral only;
//   - Neutral line   -> stays Neutral.
//
// The zero value is ready to use and safe for concurrent use.
type LineTracker struct {
	mu    sync.Mutex
	lines map[string]Accuracy
}

// NewLineTracker returns an empty tracker.
func NewLineTracker() *LineTracker {
	return &LineTracker{lines: make(map[string]Accuracy)}
}

// Observe records a for line id and returns the line's resulting accuracy.
// Observing Unset is a no-op.
func (t *LineTracker) Observe(id string, a Accuracy) Accuracy {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lines == nil {
		t.lines = make(map[string]Accuracy)
	}
	cur, seen := t.lines[id]
	if a == Unset {
		return cur
	}

	next := cur
	switch {
	case !seen || cur == Unset:
		next = a
	case cur == Excellent && a != Excellent:
		next = a
	case cur == Good && a == Neutral:
		next = Neutral
	}
	t.lines[id] = next

	return next
}

// Get returns the accuracy of line id and whether it has been observed.
func (t *LineTracker) Get(id string) (Accuracy, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.lines[id]

	return a, ok
}

// Reset forgets every line.
func (t *LineTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = make(map[string]Accuracy)
}

// Snapshot returns a copy of all tracked lines.
func (t *LineTracker) Snapshot() map[string]Accuracy {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]Accuracy, len(t.lines))
	for k, v := range t.lines {
		out[k] = v
	}

	return out
}
