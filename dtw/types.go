package dtw

import "errors"

// Sentinel errors for DTW.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates contradictory or out-of-range options.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix. Allows backtracking.
//     Memory: O(n·m).
//   - TwoRows: keep only the previous and current rows. Distance only.
//     Memory: O(m).
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps a rolling pair of rows; no path recovery.
	TwoRows
)

// Coord is one step (I in a, J in b) of a warping path.
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window      : maximum |i-j| allowed (Sakoe–Chiba band); -1 means unlimited.
//   - SlopePenalty: extra cost for insertion/deletion steps.
//   - ReturnPath  : backtrack and return the warping path (FullMatrix only).
//   - MemoryMode  : FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unlimited window, zero penalty, no path, TwoRows.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}
