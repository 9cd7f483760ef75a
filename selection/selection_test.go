package selection

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/lixenwraith/apple-ten/board"
)

func coord(r, c int) *board.Coord { return &board.Coord{Row: r, Col: c} }

// TestRectangleOfDirectionIndependent verifies swapping endpoints yields the same rectangle
func TestRectangleOfDirectionIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		a := coord(rng.Intn(10), rng.Intn(17))
		b := coord(rng.Intn(10), rng.Intn(17))

		ab, ok1 := RectangleOf(a, b)
		ba, ok2 := RectangleOf(b, a)
		if !ok1 || !ok2 {
			t.Fatal("Expected rectangle for two present endpoints")
		}
		if ab != ba {
			t.Fatalf("RectangleOf(%v,%v)=%v differs from reverse %v", *a, *b, ab, ba)
		}
		if ab.RowMin > ab.RowMax || ab.ColMin > ab.ColMax {
			t.Fatalf("Rectangle %v not normalized", ab)
		}
	}
}

// TestRectangleOfAbsentEndpoint verifies a missing endpoint yields no rectangle
func TestRectangleOfAbsentEndpoint(t *testing.T) {
	if _, ok := RectangleOf(nil, coord(1, 1)); ok {
		t.Error("Expected no rectangle with absent anchor")
	}
	if _, ok := RectangleOf(coord(1, 1), nil); ok {
		t.Error("Expected no rectangle with absent current")
	}
}

// TestEvaluateMatchesValueAt verifies evaluate agrees with per-cell lookups
func TestEvaluateMatchesValueAt(t *testing.T) {
	b := board.New(6, 8)
	b.Generate(board.NewRand(11))
	b.Clear([]board.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 3}, {Row: 4, Col: 4}, {Row: 5, Col: 7}})

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		r, _ := RectangleOf(coord(rng.Intn(6), rng.Intn(8)), coord(rng.Intn(6), rng.Intn(8)))
		sum, cells := Evaluate(b, r)

		wantSum := 0
		var wantCells []board.Coord
		for row := r.RowMin; row <= r.RowMax; row++ {
			for col := r.ColMin; col <= r.ColMax; col++ {
				v, err := b.ValueAt(board.Coord{Row: row, Col: col})
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if v != board.Empty {
					wantSum += v
					wantCells = append(wantCells, board.Coord{Row: row, Col: col})
				}
			}
		}

		if sum != wantSum {
			t.Errorf("Rect %v: expected sum %d, got %d", r, wantSum, sum)
		}
		if !reflect.DeepEqual(cells, wantCells) {
			t.Errorf("Rect %v: expected cells %v, got %v", r, wantCells, cells)
		}
	}
}

// TestEvaluateEmptyRegion verifies a fully cleared region yields no cells
func TestEvaluateEmptyRegion(t *testing.T) {
	b := board.FromValues([][]int{{0, 0}, {0, 0}})
	sum, cells := Evaluate(b, Rect{0, 1, 0, 1})
	if sum != 0 || len(cells) != 0 {
		t.Errorf("Expected sum 0 and no cells, got %d and %v", sum, cells)
	}
	if IsMatch(sum, cells) {
		t.Error("Empty selection must never match")
	}
}

// TestIsMatch covers the match rule
func TestIsMatch(t *testing.T) {
	one := []board.Coord{{Row: 0, Col: 0}}
	tests := []struct {
		name  string
		sum   int
		cells []board.Coord
		want  bool
	}{
		{"exact ten", 10, one, true},
		{"under", 9, one, false},
		{"over", 11, one, false},
		{"no cells", 10, nil, false},
		{"zero no cells", 0, nil, false},
	}
	for _, tt := range tests {
		if got := IsMatch(tt.sum, tt.cells); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

// TestEmptyCellsDoNotInvalidateMatch verifies cleared cells inside a rectangle are ignored
func TestEmptyCellsDoNotInvalidateMatch(t *testing.T) {
	b := board.FromValues([][]int{
		{4, 0, 6},
	})
	sum, cells := Evaluate(b, Rect{0, 0, 0, 2})
	if !IsMatch(sum, cells) {
		t.Errorf("Expected match across a cleared cell, sum=%d cells=%v", sum, cells)
	}
	if len(cells) != 2 {
		t.Errorf("Expected 2 occupied cells, got %d", len(cells))
	}
}

// TestEvaluateWholeGridAndRow covers whole-grid and single-row selections on a 2x2 board
func TestEvaluateWholeGridAndRow(t *testing.T) {
	b := board.FromValues([][]int{{5, 5}, {3, 7}})

	whole, _ := RectangleOf(coord(0, 0), coord(1, 1))
	sum, cells := Evaluate(b, whole)
	if sum != 20 || IsMatch(sum, cells) {
		t.Errorf("Expected whole grid sum 20 and no match, got %d", sum)
	}

	row, _ := RectangleOf(coord(0, 1), coord(0, 0))
	sum, cells = Evaluate(b, row)
	if sum != 10 || !IsMatch(sum, cells) {
		t.Fatalf("Expected row 0 to match with sum 10, got %d", sum)
	}
	b.Clear(cells)
	if !b.IsEmpty(board.Coord{Row: 0, Col: 0}) || !b.IsEmpty(board.Coord{Row: 0, Col: 1}) {
		t.Error("Expected row 0 cleared")
	}
}

// TestSelectionLifecycle verifies begin, extend and clear
func TestSelectionLifecycle(t *testing.T) {
	var s Selection
	if _, ok := s.Rect(); ok {
		t.Error("Expected no rectangle before Begin")
	}

	s.Begin(coord(3, 4))
	s.Extend(nil)
	s.Extend(coord(1, 6))
	r, ok := s.Rect()
	if !ok {
		t.Fatal("Expected rectangle after Begin and Extend")
	}
	if r != (Rect{RowMin: 1, RowMax: 3, ColMin: 4, ColMax: 6}) {
		t.Errorf("Unexpected rectangle %v", r)
	}

	s.Clear()
	if s.Active() {
		t.Error("Expected inactive selection after Clear")
	}
}

// TestSelectionBeginOutsideGrid verifies a gesture started off-grid has no rectangle
func TestSelectionBeginOutsideGrid(t *testing.T) {
	var s Selection
	s.Begin(nil)
	s.Extend(coord(2, 2))
	if _, ok := s.Rect(); ok {
		t.Error("Expected no rectangle when the anchor is absent")
	}
}

// TestLayoutToCell verifies pixel to cell mapping and out-of-bounds handling
func TestLayoutToCell(t *testing.T) {
	l := Layout{OriginX: 2, OriginY: 3, CellWidth: 4, CellHeight: 2, Rows: 10, Cols: 17}

	tests := []struct {
		x, y int
		want board.Coord
		ok   bool
	}{
		{2, 3, board.Coord{Row: 0, Col: 0}, true},
		{5, 4, board.Coord{Row: 0, Col: 0}, true},
		{6, 5, board.Coord{Row: 1, Col: 1}, true},
		{2 + 17*4 - 1, 3 + 10*2 - 1, board.Coord{Row: 9, Col: 16}, true},
		{1, 3, board.Coord{}, false},
		{2, 2, board.Coord{}, false},
		{2 + 17*4, 3, board.Coord{}, false},
		{2, 3 + 10*2, board.Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := l.ToCell(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ToCell(%d,%d): expected %v/%v, got %v/%v", tt.x, tt.y, tt.want, tt.ok, got, ok)
		}
	}
}

// TestLayoutCellOriginRoundTrip verifies CellOrigin maps back through ToCell
func TestLayoutCellOriginRoundTrip(t *testing.T) {
	l := DefaultLayout()
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			x, y := l.CellOrigin(board.Coord{Row: r, Col: c})
			got, ok := l.ToCell(x, y)
			if !ok || got != (board.Coord{Row: r, Col: c}) {
				t.Fatalf("Round trip failed for (%d,%d): got %v ok=%v", r, c, got, ok)
			}
		}
	}
}
