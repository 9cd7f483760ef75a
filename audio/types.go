package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundClear SoundType = iota // Selection summed to ten
	SoundFail                   // Selection missed
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundClear:
		return "clear"
	case SoundFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
