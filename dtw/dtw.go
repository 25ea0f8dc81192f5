package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tracegrade/geometry"
)

// DTW computes the Dynamic Time Warping distance between point sequences a
// and b. Returns (distance, path, error); path is nil unless
// opts.ReturnPath is set.
//
// Algorithm Outline:
//  1. n = len(a), m = len(b). D[0][0] = 0, D[i][0] = D[0][j] = +∞.
//  2. For i = 1..n, j = 1..m (and |i-j| ≤ Window when constrained):
//     cost    = ‖a[i-1] − b[j-1]‖
//     D[i][j] = cost + min(D[i-1][j-1], D[i-1][j]+SlopePenalty, D[i][j-1]+SlopePenalty)
//  3. distance = D[n][m].
//  4. With ReturnPath, backtrack from (n,m) choosing the cheapest
//     predecessor (diagonal first on ties).
//
// A nil opts means DefaultOptions().
//
// Complexity: Time O(n·m); Memory O(n·m) (FullMatrix) or O(m) (TwoRows).
func DTW(a, b []geometry.Point, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, fmt.Errorf("Window=%d: %w", o.Window, ErrBadInput)
	}
	if o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, fmt.Errorf("SlopePenalty=%v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == FullMatrix {
		dp := fillFull(a, b, o)
		dist := dp[n][m]
		if !o.ReturnPath || math.IsInf(dist, 1) {
			return dist, nil, nil
		}
		return dist, backtrack(dp, o.SlopePenalty), nil
	}

	return fillTwoRows(a, b, o), nil, nil
}

// outside reports whether (i,j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// fillFull builds the complete (n+1)x(m+1) DP matrix.
func fillFull(a, b []geometry.Point, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				continue
			}
			best := min3(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
			dp[i][j] = geometry.Distance(a[i-1], b[j-1]) + best
		}
	}

	return dp
}

// fillTwoRows computes only the distance with a rolling pair of rows.
func fillTwoRows(a, b []geometry.Point, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = geometry.Distance(a[i-1], b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) back to (1,1) and returns the path in forward
// order with zero-based coordinates.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := math.Inf(1), math.Inf(1), math.Inf(1)
		if i > 1 && j > 1 {
			diag = dp[i-1][j-1]
		}
		if i > 1 {
			up = dp[i-1][j] + penalty
		}
		if j > 1 {
			left = dp[i][j-1] + penalty
		}
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
