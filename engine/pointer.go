package engine

import "github.com/lixenwraith/apple-ten/board"

// PointerHandler is the capability set an input source drives
type PointerHandler interface {
	OnPointerDown(id, x, y int)
	OnPointerMove(id, x, y int)
	OnPointerUp(id, x, y int)
	OnPointerCancel(id int)
}

var _ PointerHandler = (*Session)(nil)

// OnPointerDown captures the pointer and anchors a selection
// A press outside the grid still captures, leaving the anchor absent
// A press from another pointer while one is captured is ignored
func (s *Session) OnPointerDown(id, x, y int) {
	if s.phase != PhaseRunning || (s.captured && s.pointerID != id) {
		return
	}
	s.pointerID = id
	s.captured = true
	s.sel.Begin(s.cellAt(x, y))
}

// OnPointerMove extends the selection; positions outside the grid keep the last cell
func (s *Session) OnPointerMove(id, x, y int) {
	if !s.owns(id) || s.phase != PhaseRunning {
		return
	}
	if s.sel.Anchor == nil {
		return
	}
	s.sel.Extend(s.cellAt(x, y))
}

// OnPointerUp finalizes the drag and submits it
func (s *Session) OnPointerUp(id, x, y int) {
	if !s.owns(id) || s.phase != PhaseRunning {
		return
	}
	if s.sel.Anchor == nil {
		s.releasePointer()
		return
	}
	s.sel.Extend(s.cellAt(x, y))
	s.SubmitSelection()
}

// OnPointerCancel abandons the drag without touching board or score
func (s *Session) OnPointerCancel(id int) {
	if !s.owns(id) {
		return
	}
	s.releasePointer()
	s.emit(EventCancelled, nil)
}

// Dragging reports whether a pointer is captured
func (s *Session) Dragging() bool { return s.captured }

func (s *Session) owns(id int) bool {
	return s.captured && s.pointerID == id
}

func (s *Session) releasePointer() {
	s.sel.Clear()
	s.captured = false
	s.pointerID = 0
}

func (s *Session) cellAt(x, y int) *board.Coord {
	c, ok := s.layout.ToCell(x, y)
	if !ok {
		return nil
	}
	return &c
}
