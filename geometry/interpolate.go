// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// InterpolatedPoint returns the point at normalized arc-length progress along
// the flat polyline x0,y0,x1,y1,...
//
// Behavior highlights:
//   - progress <= 0 (or NaN) → first point; progress >= 1 → last point.
//   - single point or zero total length → that point, for every progress.
//   - empty input → zero Point.
//
// Panics if len(points) is odd: the caller built a malformed polyline.
//
// Complexity: O(n).
func InterpolatedPoint(points []float64, progress float64) Point {
	if len(points)%2 != 0 {
		panic(fmt.Sprintf("geometry: InterpolatedPoint: %v (len=%d)", ErrOddCoordinates, len(points)))
	}
	pts, _ := FromFlat(points)

	return Interpolate(pts, progress)
}

// Interpolate is InterpolatedPoint over a Point slice.
//
// Implementation:
//   - Stage 1: resolve trivial cases (empty, single point, progress bounds).
//   - Stage 2: walk cumulative segment lengths until the running total reaches
//     progress × total.
//   - Stage 3: linearly interpolate inside that segment by the local fraction.
//
// Zero-length segments are stepped over, so no division by zero occurs.
func Interpolate(points []Point, progress float64) Point {
	switch len(points) {
	case 0:
		return Point{}
	case 1:
		return points[0]
	}
	if math.IsNaN(progress) || progress <= 0 {
		return points[0]
	}
	last := points[len(points)-1]
	if progress >= 1 {
		return last
	}

	total := PathLength(points)
	if total == 0 {
		return points[0]
	}

	target := progress * total
	var cum float64
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		seg := Distance(a, b)
		if seg > 0 && cum+seg >= target {
			t := (target - cum) / seg
			return lerp(a, b, t)
		}
		cum += seg
	}

	return last
}

// PathLength returns the sum of segment lengths of the polyline.
func PathLength(points []Point) float64 {
	var d float64
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}

	return d
}

// lerp returns a + (b-a)*t.
func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
