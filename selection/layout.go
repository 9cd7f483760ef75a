package selection

import (
	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/constants"
)

// Layout positions the board on screen in terminal cells
type Layout struct {
	OriginX, OriginY      int
	CellWidth, CellHeight int
	Rows, Cols            int
}

// DefaultLayout returns the standard board placement
func DefaultLayout() Layout {
	return Layout{
		OriginX:    constants.BoardOriginX,
		OriginY:    constants.BoardOriginY,
		CellWidth:  constants.CellWidth,
		CellHeight: constants.CellHeight,
		Rows:       constants.BoardRows,
		Cols:       constants.BoardCols,
	}
}

// ToCell maps a screen position to a board coordinate
// Returns false when the position falls outside the grid
func (l Layout) ToCell(x, y int) (board.Coord, bool) {
	if l.CellWidth <= 0 || l.CellHeight <= 0 {
		return board.Coord{}, false
	}
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return board.Coord{}, false
	}
	c := board.Coord{Row: dy / l.CellHeight, Col: dx / l.CellWidth}
	if c.Row >= l.Rows || c.Col >= l.Cols {
		return board.Coord{}, false
	}
	return c, true
}

// CellOrigin returns the top-left screen position of a cell
func (l Layout) CellOrigin(c board.Coord) (int, int) {
	return l.OriginX + c.Col*l.CellWidth, l.OriginY + c.Row*l.CellHeight
}

// Width returns the board width in terminal columns
func (l Layout) Width() int { return l.Cols * l.CellWidth }

// Height returns the board height in terminal rows
func (l Layout) Height() int { return l.Rows * l.CellHeight }
