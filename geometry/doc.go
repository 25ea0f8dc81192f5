// Package geometry provides the 2D primitives shared by the evaluator and the
// heatmap generator: points, strokes, bounding boxes, point-to-segment
// distance, arc-length interpolation and resampling.
//
// What:
//
//   - Point / Stroke / Box value types.
//   - PointToSegmentDistance: distance to a closed segment (not the infinite line).
//   - InterpolatedPoint: the point at a normalized arc-length along a flat polyline.
//   - Resample / ResampleSpacing: equidistant samples along a polyline.
//   - DistanceToPolyline / NearestDistance: minimum distances to stroke sets.
//   - ClipSegment: Liang–Barsky clipping of a segment to a Box.
//
// Why:
//
//   - Tracing evaluation needs a single, well-defined notion of "how far is
//     this pen position from that stroke".
//   - Guide animation needs a position at a fraction of the total path.
//
// Degenerate input:
//
//   - Strokes without points are ignored everywhere.
//   - A template stroke with a single point has no segment; NearestDistance
//     skips it (it contributes nothing, not an infinite distance).
//   - Odd-length flat coordinate lists are a programmer error: FromFlat
//     returns ErrOddCoordinates, MustFromFlat and InterpolatedPoint panic.
//
// Complexity:
//
//   - PointToSegmentDistance: O(1).
//   - InterpolatedPoint, PathLength, Resample: O(n) for n points.
//   - NearestDistance: O(S) for S segments in the stroke set.
//
// Every function is pure; concurrent use is safe as long as the caller does
// not mutate the input slices during the call.
package geometry
