package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/apple-ten/constants"
)

// SoundManager owns the speaker, the background music voice and one-shot effects
// Every operation is safe before Initialize and after Cleanup; the game runs silent then
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig
	mixer  *beep.Mixer

	music        *beep.Ctrl
	musicEnabled bool // User toggle, independent of whether music is currently playing

	initialized bool
}

// NewSoundManager creates a sound manager with the given configuration, defaults when nil
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config:       cfg,
		mixer:        &beep.Mixer{},
		musicEnabled: true,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.music = nil
	speaker.Close()
	sm.initialized = false
}

// Play fires a one-shot effect
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := GetSoundEffect(soundType, sm.config)
	if s == nil {
		log.Printf("audio: unknown sound type %d", soundType)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMusicEnabled applies the music toggle; disabling stops playback immediately
func (sm *SoundManager) SetMusicEnabled(enabled bool) {
	sm.mu.Lock()
	sm.musicEnabled = enabled
	sm.mu.Unlock()

	if !enabled {
		sm.StopMusic()
	}
}

// MusicEnabled returns the music toggle state
func (sm *SoundManager) MusicEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicEnabled
}

// StartMusic plays the loop from the beginning, or resumes it if paused
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.musicEnabled {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	vol := sm.config.MusicVolume * sm.config.MasterVolume
	ctrl := &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(beep.SampleRate(sm.config.SampleRate)), vol)}
	sm.music = ctrl
	sm.mixer.Add(ctrl)
}

// PauseMusic holds the loop at its current position
func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// StopMusic ends the loop; the next StartMusic begins from the top
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	// A Ctrl with a nil streamer reports drained and the mixer drops it
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// MusicPlaying reports whether the loop is audible
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.music.Paused
}
