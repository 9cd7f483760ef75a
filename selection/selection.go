// Package selection maps drag gestures onto board rectangles and validates matches.
package selection

import (
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/constants"
)

// Rect is an inclusive, normalized cell rectangle
type Rect struct {
	RowMin, RowMax int
	ColMin, ColMax int
}

// Contains reports whether the coordinate lies inside the rectangle
func (r Rect) Contains(c board.Coord) bool {
	return c.Row >= r.RowMin && c.Row <= r.RowMax && c.Col >= r.ColMin && c.Col <= r.ColMax
}

// Area returns the number of cells spanned
func (r Rect) Area() int {
	return (r.RowMax - r.RowMin + 1) * (r.ColMax - r.ColMin + 1)
}

// RectangleOf returns the rectangle spanned by two endpoints
// Normalization by min/max makes the result independent of drag direction
func RectangleOf(anchor, current *board.Coord) (Rect, bool) {
	if anchor == nil || current == nil {
		return Rect{}, false
	}
	return Rect{
		RowMin: min(anchor.Row, current.Row),
		RowMax: max(anchor.Row, current.Row),
		ColMin: min(anchor.Col, current.Col),
		ColMax: max(anchor.Col, current.Col),
	}, true
}

// Evaluate sums the occupied cells of the rectangle in row-major order
// Cells outside the board are skipped
func Evaluate(b *board.Board, r Rect) (int, []board.Coord) {
	sum := 0
	var cells []board.Coord
	for row := r.RowMin; row <= r.RowMax; row++ {
		for col := r.ColMin; col <= r.ColMax; col++ {
			v := b.At(row, col)
			if v == board.Empty {
				continue
			}
			sum += v
			cells = append(cells, board.Coord{Row: row, Col: col})
		}
	}
	return sum, cells
}

// IsMatch reports whether an evaluated selection clears
func IsMatch(sum int, cells []board.Coord) bool {
	return len(cells) > 0 && sum == constants.MatchTarget
}

// Selection tracks the endpoints of an in-progress drag
// Either endpoint may be absent when the gesture began outside the grid
type Selection struct {
	Anchor  *board.Coord
	Current *board.Coord
	active  bool
}

// Begin starts a gesture at the given cell, which may be absent
func (s *Selection) Begin(c *board.Coord) {
	s.Anchor = copyCoord(c)
	s.Current = copyCoord(c)
	s.active = true
}

// Extend moves the current endpoint; absent cells are ignored
func (s *Selection) Extend(c *board.Coord) {
	if !s.active || c == nil {
		return
	}
	s.Current = copyCoord(c)
}

// Rect returns the normalized rectangle of the gesture, if both endpoints exist
func (s *Selection) Rect() (Rect, bool) {
	if !s.active {
		return Rect{}, false
	}
	return RectangleOf(s.Anchor, s.Current)
}

// Active reports whether a gesture is in progress
func (s *Selection) Active() bool { return s.active }

// Clear discards the gesture
func (s *Selection) Clear() {
	s.Anchor = nil
	s.Current = nil
	s.active = false
}

func copyCoord(c *board.Coord) *board.Coord {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
