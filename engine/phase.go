package engine

// Phase is the lifecycle state of a session
type Phase int

const (
	PhaseStopped Phase = iota
	PhaseRunning
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// EndReason explains why a session stopped
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonTimeout
	ReasonNoMoves
	ReasonQuit
)

func (r EndReason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonNoMoves:
		return "no-moves"
	case ReasonQuit:
		return "quit"
	default:
		return "none"
	}
}
