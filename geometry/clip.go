// SPDX-License-Identifier: MIT

package geometry

import "math"

// ClipSegment clips the segment a→b to the closed rectangle box using the
// Liang–Barsky parametric test. ok is false when no part of the segment lies
// inside box or when a coordinate is NaN. The returned endpoints keep the
// direction of travel.
//
// Complexity: O(1).
func ClipSegment(a, b Point, box Box) (Point, Point, bool) {
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return Point{}, Point{}, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) || math.IsNaN(dx) || math.IsNaN(dy) {
		return Point{}, Point{}, false
	}

	t0, t1 := 0.0, 1.0
	// p·t <= q for each of the four edges.
	edges := [4][2]float64{
		{-dx, a.X - box.MinX},
		{dx, box.MaxX - a.X},
		{-dy, a.Y - box.MinY},
		{dy, box.MaxY - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Point{}, Point{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return Point{}, Point{}, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return lerp(a, b, t0), lerp(a, b, t1), true
}
