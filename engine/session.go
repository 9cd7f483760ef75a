package engine

import (
	"log"

	"github.com/lixenwraith/apple-ten/board"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/feasibility"
	"github.com/lixenwraith/apple-ten/selection"
)

// BoardView is the read-only board surface exposed to renderers
type BoardView interface {
	Rows() int
	Cols() int
	At(row, col int) int
}

// SessionConfig configures a new session; zero fields take game defaults
type SessionConfig struct {
	Rows, Cols int
	TimeLimit  int // Seconds
	Rand       board.RandSource
	Scheduler  Scheduler
	Layout     *selection.Layout
}

// Session owns every piece of mutable game state: board, score, countdown and the in-progress drag
// All operations are expected to run on a single event loop goroutine
type Session struct {
	// Board and collaborators
	board     *board.Board
	rng       board.RandSource
	scheduler Scheduler
	layout    selection.Layout

	// Round state
	phase         Phase
	score         int
	timeLimit     int
	timeRemaining int
	lastReason    EndReason

	// Drag state
	sel selection.Selection

	// Pointer capture: only events from the pointer that began the drag are honored
	pointerID int
	captured  bool

	// Highlighted hint, nil when none is shown
	hint *selection.Rect

	// Subscribers, notified synchronously in registration order
	listeners []Listener
}

// NewSession creates a stopped session with a generated board
func NewSession(cfg SessionConfig) *Session {
	if cfg.Rows <= 0 {
		cfg.Rows = constants.BoardRows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = constants.BoardCols
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = constants.DefaultTimeLimit
	}
	if cfg.Rand == nil {
		cfg.Rand = board.NewRand(0)
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewCountdown(constants.CountdownInterval)
	}
	layout := selection.DefaultLayout()
	if cfg.Layout != nil {
		layout = *cfg.Layout
	}
	layout.Rows, layout.Cols = cfg.Rows, cfg.Cols

	s := &Session{
		board:         board.New(cfg.Rows, cfg.Cols),
		rng:           cfg.Rand,
		scheduler:     cfg.Scheduler,
		layout:        layout,
		phase:         PhaseStopped,
		timeLimit:     cfg.TimeLimit,
		timeRemaining: cfg.TimeLimit,
	}
	// Idle board shown behind the start prompt
	s.board.Generate(s.rng)
	return s
}

// Subscribe registers a listener for session events
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(t EventType, cells []board.Coord) {
	ev := Event{
		Type:          t,
		Score:         s.score,
		TimeRemaining: s.timeRemaining,
		Reason:        s.lastReason,
		Cells:         cells,
	}
	for _, l := range s.listeners {
		l(ev)
	}
}

// Start begins a fresh play-through from any phase
func (s *Session) Start() {
	s.reinitialize()
	s.phase = PhaseRunning
	s.lastReason = ReasonNone
	s.scheduler.Arm()
	s.emit(EventStarted, nil)
}

// Reset regenerates the board and restores score and time of a running session
func (s *Session) Reset() {
	if s.phase != PhaseRunning {
		return
	}
	s.reinitialize()
	s.scheduler.Arm()
	s.emit(EventReset, nil)
}

func (s *Session) reinitialize() {
	s.board.Generate(s.rng)
	s.score = 0
	s.timeRemaining = s.timeLimit
	s.hint = nil
	s.releasePointer()
}

// Pause suspends the countdown; an in-progress drag is abandoned
func (s *Session) Pause() {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhasePaused
	s.scheduler.Disarm()
	s.releasePointer()
	s.emit(EventPaused, nil)
}

// Resume continues a paused session
func (s *Session) Resume() {
	if s.phase != PhasePaused {
		return
	}
	s.phase = PhaseRunning
	s.scheduler.Arm()
	s.emit(EventResumed, nil)
}

// TogglePause switches between running and paused; no-op when stopped
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// Tick advances the countdown by one second
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}
	s.timeRemaining = max(0, s.timeRemaining-1)
	s.emit(EventTick, nil)
	if s.timeRemaining == 0 {
		s.End(ReasonTimeout)
	}
}

// SubmitSelection finalizes the current drag
// A match clears its apples and scores; the board is then checked for remaining moves
func (s *Session) SubmitSelection() {
	if s.phase != PhaseRunning {
		return
	}
	rect, ok := s.sel.Rect()
	s.releasePointer()
	if !ok {
		return
	}

	sum, cells := selection.Evaluate(s.board, rect)
	if !selection.IsMatch(sum, cells) {
		if len(cells) > 0 {
			s.emit(EventMismatch, cells)
		}
		return
	}

	s.board.Clear(cells)
	s.score += constants.ScorePerMatch
	s.hint = nil
	s.emit(EventMatched, cells)

	if !feasibility.HasMatch(s.board) {
		s.End(ReasonNoMoves)
	}
}

// End stops the session and notifies listeners with the final score
func (s *Session) End(reason EndReason) {
	if s.phase == PhaseStopped {
		return
	}
	s.phase = PhaseStopped
	s.scheduler.Disarm()
	s.releasePointer()
	s.hint = nil
	s.lastReason = reason
	log.Printf("session ended: reason=%s score=%d remaining=%ds", reason, s.score, s.timeRemaining)
	s.emit(EventEnded, nil)
}

// Hint locates a clearable rectangle on the current board without changing state
func (s *Session) Hint() (selection.Rect, bool) {
	if s.phase != PhaseRunning {
		return selection.Rect{}, false
	}
	r, ok := feasibility.FindMatch(s.board)
	if ok {
		s.hint = &r
	} else {
		s.hint = nil
	}
	return r, ok
}

// Phase returns the lifecycle state
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// TimeRemaining returns seconds left
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// TimeLimit returns the configured session length
func (s *Session) TimeLimit() int { return s.timeLimit }

// LastReason returns why the previous session ended
func (s *Session) LastReason() EndReason { return s.lastReason }

// Board returns a read-only view of the grid
func (s *Session) Board() BoardView { return s.board }

// Layout returns the screen placement used for pointer mapping
func (s *Session) Layout() selection.Layout { return s.layout }

// SelectionRect returns the rectangle of the in-progress drag
func (s *Session) SelectionRect() (selection.Rect, bool) { return s.sel.Rect() }

// SelectionSum returns the occupied sum under the in-progress drag
func (s *Session) SelectionSum() (int, bool) {
	r, ok := s.sel.Rect()
	if !ok {
		return 0, false
	}
	sum, _ := selection.Evaluate(s.board, r)
	return sum, true
}

// HintRect returns the last hint while it is still valid
func (s *Session) HintRect() (selection.Rect, bool) {
	if s.hint == nil {
		return selection.Rect{}, false
	}
	return *s.hint, true
}
