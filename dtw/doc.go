// Package dtw computes Dynamic Time Warping (DTW) distances between two
// sequences of 2D points, with an optional alignment path.
//
// 🚀 What is DTW here?
//
//	DTW aligns two pen trajectories that trace the same shape at different
//	speeds or point densities. The local cost of matching a[i] with b[j] is
//	their Euclidean distance; DTW finds the monotone alignment with minimal
//	total cost. The tracing evaluator uses it as one of its stroke-matching
//	strategies (template stroke ↔ user stroke).
//
// ✨ Key features:
//   - FullMatrix mode: exact O(N·M) time & memory, supports ReturnPath
//   - TwoRows mode: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 8
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Errors:
//   - ErrEmptyInput     : either sequence is empty.
//   - ErrBadInput       : Window < -1 or a negative/NaN SlopePenalty.
//   - ErrPathNeedsMatrix: ReturnPath requested without FullMatrix.
package dtw
