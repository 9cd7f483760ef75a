package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/apple-ten/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// waveAt evaluates a unit-amplitude wave at phase in [0, 1)
func waveAt(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := e.totalSamples - e.position
	if remaining <= 0 {
		return 0, false
	}
	if len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with linear gain; math.Log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateClearSound generates a rising two-note chime with a short sparkle
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// G5 then C6
	n1 := NewOscillator(783.99, constants.ClearSoundNote1Duration, WaveTriangle, rate)
	n1Shaped := NewEnvelope(n1, constants.ClearSoundNote1Duration, constants.ClearSoundAttack, constants.ClearSoundNote1Release, rate)

	n2 := NewOscillator(1046.50, constants.ClearSoundNote2Duration, WaveTriangle, rate)
	n2Shaped := NewEnvelope(n2, constants.ClearSoundNote2Duration, constants.ClearSoundAttack, constants.ClearSoundNote2Release, rate)

	chime := beep.Seq(n1Shaped, n2Shaped)

	// Octave overtone layered over the second note
	sparkle := beep.Streamer(beep.Silence(0))
	if tone, err := generators.SineTone(rate, 2093.0); err == nil {
		shaped := NewEnvelope(tone, constants.ClearSoundNote2Duration, constants.ClearSoundAttack, constants.ClearSoundNote2Release, rate)
		sparkle = beep.Seq(beep.Silence(rate.N(constants.ClearSoundNote1Duration)), newVolume(shaped, 0.25))
	}

	vol := cfg.EffectVolumes[SoundClear] * cfg.MasterVolume
	return newVolume(beep.Mix(chime, sparkle), vol)
}

// CreateFailSound generates a short low buzz
func CreateFailSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(110.0, constants.FailSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.FailSoundDuration, constants.FailSoundAttack, constants.FailSoundRelease, rate)

	vol := cfg.EffectVolumes[SoundFail] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// GetSoundEffect returns the streamer for the given effect, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundClear:
		return CreateClearSound(cfg)
	case SoundFail:
		return CreateFailSound(cfg)
	default:
		return nil
	}
}

// musicGenerator plays an endless kick and bass arpeggio, one note per beat
type musicGenerator struct {
	rate      beep.SampleRate
	pos       int
	beat      int
	bassPhase float64
}

// arpeggio in Hz: C3 E3 G3 E3 A2 C3 E3 C3
var arpeggio = [...]float64{130.81, 164.81, 196.00, 164.81, 110.00, 130.81, 164.81, 130.81}

// NewMusicGenerator creates the background loop; it never ends on its own
func NewMusicGenerator(rate beep.SampleRate) beep.Streamer {
	return &musicGenerator{rate: rate, beat: rate.N(constants.MusicBeatDuration)}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.rate.N(constants.MusicBeatDuration / 6)
	for i := range samples {
		beatPos := g.pos % g.beat
		note := arpeggio[(g.pos/g.beat)%len(arpeggio)]

		kick := 0.0
		if beatPos < kickLen {
			env := 1.0 - float64(beatPos)/float64(kickLen)
			t := float64(beatPos) / float64(g.rate)
			kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}

		// Pluck envelope per beat
		bassEnv := math.Exp(-3 * float64(beatPos) / float64(g.beat))
		bass := 0.2 * bassEnv * waveAt(WaveTriangle, g.bassPhase)
		g.bassPhase += note / float64(g.rate)
		g.bassPhase -= math.Floor(g.bassPhase)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error { return nil }
