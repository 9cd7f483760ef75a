package board

import (
	"errors"

	"github.com/lixenwraith/apple-ten/constants"
)

// Empty marks a cleared cell
const Empty = 0

// ErrOutOfBounds is returned when a coordinate lies outside the board
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Coord addresses a single cell by row and column
type Coord struct {
	Row, Col int
}

// Board is a fixed-size grid of apple values
// Cells hold a value in [MinCellValue, MaxCellValue] or Empty; dimensions never change after creation
type Board struct {
	rows, cols int
	cells      []int
}

// New creates an empty board with the given dimensions
func New(rows, cols int) *Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// NewDefault creates an empty board with the standard game dimensions
func NewDefault() *Board {
	return New(constants.BoardRows, constants.BoardCols)
}

// FromValues builds a board from row-major values, 0 meaning empty
// Rows shorter than the first row are padded with empty cells
func FromValues(values [][]int) *Board {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	b := New(rows, cols)
	for r, row := range values {
		for c := 0; c < cols && c < len(row); c++ {
			b.cells[r*cols+c] = clampValue(row[c])
		}
	}
	return b
}

// Rows returns the row count
func (b *Board) Rows() int { return b.rows }

// Cols returns the column count
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether the coordinate addresses a cell
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Generate replaces every cell with a uniform random value
func (b *Board) Generate(rng RandSource) {
	for i := range b.cells {
		b.cells[i] = rng.NextInt(constants.MinCellValue, constants.MaxCellValue)
	}
}

// ValueAt returns the cell value, Empty for cleared cells
func (b *Board) ValueAt(c Coord) (int, error) {
	if !b.InBounds(c) {
		return Empty, ErrOutOfBounds
	}
	return b.cells[c.Row*b.cols+c.Col], nil
}

// At returns the cell value without bounds reporting, Empty when out of bounds
// Hot-path accessor for scans that iterate known-valid ranges
func (b *Board) At(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return Empty
	}
	return b.cells[row*b.cols+col]
}

// IsEmpty reports whether an in-bounds cell has been cleared
func (b *Board) IsEmpty(c Coord) bool {
	v, err := b.ValueAt(c)
	return err == nil && v == Empty
}

// Set writes a single cell, used for fixtures and restore
func (b *Board) Set(c Coord, value int) error {
	if !b.InBounds(c) {
		return ErrOutOfBounds
	}
	b.cells[c.Row*b.cols+c.Col] = clampValue(value)
	return nil
}

// Clear marks the given cells empty
// Out-of-bounds and already-empty coordinates are ignored
func (b *Board) Clear(cells []Coord) {
	for _, c := range cells {
		if !b.InBounds(c) {
			continue
		}
		b.cells[c.Row*b.cols+c.Col] = Empty
	}
}

// Occupied returns the number of non-empty cells
func (b *Board) Occupied() int {
	n := 0
	for _, v := range b.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	cp := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make([]int, len(b.cells)),
	}
	copy(cp.cells, b.cells)
	return cp
}

func clampValue(v int) int {
	if v < constants.MinCellValue || v > constants.MaxCellValue {
		return Empty
	}
	return v
}
