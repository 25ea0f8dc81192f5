// SPDX-License-Identifier: MIT

package geometry

import "math"

// PointToSegmentDistance returns the Euclidean distance from (px,py) to the
// closed segment (x1,y1)-(x2,y2).
//
// Implementation:
//   - Stage 1: a degenerate segment (both ends equal) is a point; return the
//     distance to it.
//   - Stage 2: project onto the supporting line, clamp the parameter t to
//     [0,1] so the foot lies on the segment.
//   - Stage 3: return the distance to the clamped foot.
//
// Complexity: O(1). Total for finite inputs.
func PointToSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-x1, py-y1)
	}

	t := ((px-x1)*dx + (py-y1)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}

// DistanceToSegment is PointToSegmentDistance over Point values.
func DistanceToSegment(p, a, b Point) float64 {
	return PointToSegmentDistance(p.X, p.Y, a.X, a.Y, b.X, b.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// DistanceToPolyline returns the minimum distance from p to the polyline.
// A single point polyline is treated as that point; an empty one yields +Inf.
func DistanceToPolyline(p Point, points []Point) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, points[0])
	}

	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		if d := DistanceToSegment(p, points[i-1], points[i]); d < best {
			best = d
		}
	}

	return best
}

// NearestSegmentDistance returns the minimum distance from p to any segment of
// any stroke. Strokes with fewer than two points are skipped; if no segment
// exists the result is +Inf.
func NearestSegmentDistance(p Point, strokes []Stroke) float64 {
	best := math.Inf(1)
	for _, s := range strokes {
		if !s.HasSegment() {
			continue
		}
		if d := DistanceToPolyline(p, s.Points); d < best {
			best = d
		}
	}

	return best
}

// NearestDistance returns the minimum distance from p to any stroke, treating
// single-point strokes as dots. Used when the reference is a user drawing,
// where a tap is still ink.
func NearestDistance(p Point, strokes []Stroke) float64 {
	best := math.Inf(1)
	for _, s := range strokes {
		if d := DistanceToPolyline(p, s.Points); d < best {
			best = d
		}
	}

	return best
}
