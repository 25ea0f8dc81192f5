// SPDX-License-Identifier: MIT

package geometry

import "math"

// Resample returns n points spaced equally by arc-length along the polyline,
// starting at the first point and ending exactly at the last one.
//
// Behavior highlights:
//   - empty input → nil.
//   - single point or zero length → one sample (the first point); a dot is
//     sampled once no matter how large n is.
//   - n < 2 on a real path is raised to 2 (both endpoints).
//
// The input slice is never modified.
//
// Complexity: O(len(points) + n).
func Resample(points []Point, n int) []Point {
	if len(points) == 0 {
		return nil
	}
	total := PathLength(points)
	if len(points) == 1 || total == 0 {
		return []Point{points[0]}
	}
	if n < 2 {
		n = 2
	}

	step := total / float64(n-1)
	out := make([]Point, 0, n)
	out = append(out, points[0])

	// seg is the end index of the current segment; segStart is the
	// arc-length at points[seg-1].
	seg := 1
	var segStart float64
	segLen := Distance(points[0], points[1])
	for k := 1; k < n-1; k++ {
		target := float64(k) * step
		for segStart+segLen < target && seg < len(points)-1 {
			segStart += segLen
			seg++
			segLen = Distance(points[seg-1], points[seg])
		}
		if segLen == 0 {
			out = append(out, points[seg])
			continue
		}
		t := (target - segStart) / segLen
		t = math.Max(0, math.Min(1, t))
		out = append(out, lerp(points[seg-1], points[seg], t))
	}
	out = append(out, points[len(points)-1])

	return out
}

// MaxSpacingSamples bounds the output of ResampleSpacing. Paths longer than
// MaxSpacingSamples·spacing get samples further apart than spacing.
const MaxSpacingSamples = 1 << 16

// ResampleSpacing resamples so that consecutive samples are at most spacing
// apart, up to MaxSpacingSamples samples. A non-positive spacing returns a
// copy of the input.
func ResampleSpacing(points []Point, spacing float64) []Point {
	if spacing <= 0 || math.IsNaN(spacing) {
		return append([]Point(nil), points...)
	}
	total := PathLength(points)
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return append([]Point(nil), points...)
	}
	steps := math.Ceil(total / spacing)
	if steps >= MaxSpacingSamples {
		return Resample(points, MaxSpacingSamples)
	}

	return Resample(points, int(steps)+1)
}

// SampleStrokes resamples every usable stroke to n points and concatenates
// the result. Empty strokes contribute nothing.
func SampleStrokes(strokes []Stroke, n int) []Point {
	var out []Point
	for _, s := range strokes {
		out = append(out, Resample(s.Points, n)...)
	}

	return out
}

// SampleSegmented is SampleStrokes restricted to strokes with a segment.
// Template sampling uses it so single-point template strokes are skipped.
func SampleSegmented(strokes []Stroke, n int) []Point {
	var out []Point
	for _, s := range strokes {
		if !s.HasSegment() {
			continue
		}
		out = append(out, Resample(s.Points, n)...)
	}

	return out
}
