package engine

import "github.com/lixenwraith/apple-ten/board"

// EventType identifies a session notification
type EventType int

const (
	EventStarted EventType = iota
	EventReset
	EventPaused
	EventResumed
	EventTick
	EventMatched  // Selection cleared, Cells holds the removed apples
	EventMismatch // Non-empty selection that did not sum to the target
	EventCancelled
	EventEnded // Score and Reason are final
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventReset:
		return "reset"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventTick:
		return "tick"
	case EventMatched:
		return "matched"
	case EventMismatch:
		return "mismatch"
	case EventCancelled:
		return "cancelled"
	case EventEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event carries a snapshot of the session at the time of the notification
type Event struct {
	Type          EventType
	Score         int
	TimeRemaining int
	Reason        EndReason
	Cells         []board.Coord
}

// Listener receives session events synchronously on the caller's goroutine
type Listener func(Event)
