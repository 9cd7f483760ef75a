package constants

import "time"

// Clear Sound Timing (two-note chime)
const (
	ClearSoundNote1Duration = 90 * time.Millisecond
	ClearSoundNote2Duration = 260 * time.Millisecond
	ClearSoundAttack        = 5 * time.Millisecond
	ClearSoundNote1Release  = 40 * time.Millisecond
	ClearSoundNote2Release  = 200 * time.Millisecond
)

// Fail Sound Timing
const (
	FailSoundDuration = 120 * time.Millisecond
	FailSoundAttack   = 5 * time.Millisecond
	FailSoundRelease  = 40 * time.Millisecond
)

// Background Music
const (
	// MusicBeatDuration is the length of one bar step (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond
)
