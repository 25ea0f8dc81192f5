// SPDX-License-Identifier: MIT

// Package assign pairs the rows of a cost table with its columns.
//
// Purpose:
//   - Resolve the bipartite "which user stroke traced which template stroke"
//     question with a deterministic heuristic. Stroke counts of a handwritten
//     character are single-digit, so a greedy global-minimum pass is both
//     cheap and close to optimal in practice.
//
// Contract:
//   - Greedy returns match[i] = column assigned to row i, or Unmatched.
//   - At most min(rows, cols) pairs are produced; each row and column is used
//     at most once.
//   - NaN and +Inf costs are never selected.
//
// Determinism:
//   - Candidates are ordered by (cost, row, column); ties always resolve to
//     the lower row, then the lower column.
//
// Complexity:
//   - Time O(R·C·log(R·C)), Memory O(R·C).
package assign

import (
	"errors"
	"math"
	"sort"
)

// Unmatched marks a row without a partner.
const Unmatched = -1

// ErrRagged indicates rows of differing lengths in the cost table.
var ErrRagged = errors.New("assign: all cost rows must have the same length")

// pair is one candidate (row, column) with its cost.
type pair struct {
	row, col int
	cost     float64
}

// Greedy repeatedly takes the cheapest remaining (row, column) pair whose row
// and column are both still free.
//
// Inputs:
//   - cost: R×C table; cost[i][j] is the price of pairing row i with column j.
//
// Returns:
//   - []int of length R with the chosen column per row or Unmatched.
//
// Errors:
//   - ErrRagged if the rows have different lengths.
func Greedy(cost [][]float64) ([]int, error) {
	rows := len(cost)
	match := make([]int, rows)
	for i := range match {
		match[i] = Unmatched
	}
	if rows == 0 {
		return match, nil
	}
	cols := len(cost[0])
	for _, r := range cost {
		if len(r) != cols {
			return nil, ErrRagged
		}
	}

	cands := make([]pair, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c := cost[i][j]
			if math.IsNaN(c) || math.IsInf(c, 1) {
				continue
			}
			cands = append(cands, pair{row: i, col: j, cost: c})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].cost != cands[b].cost {
			return cands[a].cost < cands[b].cost
		}
		if cands[a].row != cands[b].row {
			return cands[a].row < cands[b].row
		}
		return cands[a].col < cands[b].col
	})

	colUsed := make([]bool, cols)
	left := min(rows, cols)
	for _, p := range cands {
		if left == 0 {
			break
		}
		if match[p.row] != Unmatched || colUsed[p.col] {
			continue
		}
		match[p.row] = p.col
		colUsed[p.col] = true
		left--
	}

	return match, nil
}

// Inversions counts pairs (a < b) of matched rows whose columns appear in the
// opposite order, i.e. match[a] > match[b]. Unmatched rows are ignored.
// Returns the inversion count and the number of matched rows.
//
// Complexity: O(k²) for k matched rows; k is tiny for stroke sets.
func Inversions(match []int) (inv, matched int) {
	seq := make([]int, 0, len(match))
	for _, c := range match {
		if c != Unmatched {
			seq = append(seq, c)
		}
	}
	for a := 0; a < len(seq); a++ {
		for b := a + 1; b < len(seq); b++ {
			if seq[a] > seq[b] {
				inv++
			}
		}
	}

	return inv, len(seq)
}

// Total returns the summed cost of all matched pairs.
func Total(cost [][]float64, match []int) float64 {
	var sum float64
	for i, j := range match {
		if j != Unmatched {
			sum += cost[i][j]
		}
	}
	return sum
}
