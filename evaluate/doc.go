// Package evaluate scores a freehand drawing against a template letter.
//
// What:
//
//   - CalculateAccuracy / Evaluator.Evaluate produce a Score with three
//     independent sub-scores and a weighted composite, all integers in [0,100]:
//     – Overlap:     how closely the ink follows the template AND how much of
//     the template the ink covers (bidirectional sample credit).
//     – StrokeOrder: whether template strokes were drawn in their prescribed
//     sequence; missing or extra strokes reduce it.
//     – Proportion:  aspect-ratio and scale fidelity of the whole drawing.
//   - Classify and LineTracker give real-time "excellent / good / neutral"
//     feedback for a pen position and per drawn line.
//   - ScoreBatch scores many independent drawings concurrently.
//
// How:
//
//  1. Degenerate strokes are dropped: user strokes without points, template
//     strokes without a segment.
//  2. Overlap: resample every stroke to a fixed number of samples; credit each
//     sample by its nearest distance to the other side (1 within the
//     excellent threshold, GoodCredit within the good threshold, else 0).
//     Overlap = mean(precision, recall).
//  3. StrokeOrder: build a template×user cost table with the configured
//     Matching strategy, assign greedily (see package assign), count
//     inversions among matched pairs, and multiply by the stroke-count ratio.
//  4. Proportion: compare bounding boxes by aspect angle atan2(h, w) and by
//     relative diagonal size.
//  5. Score = weighted mean of the three.
//
// Errors:
//
//   - ErrEmptyDrawing:  no user stroke has a point.
//   - ErrEmptyTemplate: no template stroke has a segment.
//
// Both return the zero Score. Non-finite coordinates never loop forever; a
// sub-score that evaluates to NaN is reported as 0.
//
// Concurrency:
//
//   - An Evaluator is immutable after New and safe for concurrent use.
//   - LineTracker is guarded by a mutex.
package evaluate
