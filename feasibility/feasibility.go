// Package feasibility decides whether any clearable rectangle remains on a board.
//
// The search is exhaustive over every (r1, r2, c1, c2) band. For the standard 10x17 board
// that is about 200K cell reads in the worst case, cheap enough to run after every clear.
package feasibility

import (
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/selection"
)

// HasMatch reports whether some rectangle's occupied cells sum to the match target
func HasMatch(b *board.Board) bool {
	_, ok := FindMatch(b)
	return ok
}

// FindMatch returns the first rectangle found whose occupied cells sum to the match target
// Row bands are scanned top-down, then columns left to right; empty cells count as zero
func FindMatch(b *board.Board) (selection.Rect, bool) {
	rows, cols := b.Rows(), b.Cols()
	colSums := make([]int, cols)

	for r1 := 0; r1 < rows; r1++ {
		// colSums[c] accumulates rows r1..r2 as r2 grows
		for c := range colSums {
			colSums[c] = 0
		}
		for r2 := r1; r2 < rows; r2++ {
			for c := 0; c < cols; c++ {
				colSums[c] += b.At(r2, c)
			}
			for c1 := 0; c1 < cols; c1++ {
				acc := 0
				for c2 := c1; c2 < cols; c2++ {
					acc += colSums[c2]
					if acc == constants.MatchTarget {
						return selection.Rect{RowMin: r1, RowMax: r2, ColMin: c1, ColMax: c2}, true
					}
					// Values are non-negative: once past the target, widening cannot return to it
					if acc > constants.MatchTarget {
						break
					}
				}
			}
		}
	}
	return selection.Rect{}, false
}
