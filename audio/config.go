package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// AudioConfig holds mixer levels and the output format
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	MusicVolume   float64 // 0.0-1.0, applied on top of master
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in levels
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		MusicVolume:  0.4,
		EffectVolumes: map[SoundType]float64{
			SoundClear: 1.0,
			SoundFail:  0.7,
		},
		SampleRate: 44100,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("APPLE_TEN_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are given as 0-100
	if volume := os.Getenv("APPLE_TEN_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}
	if volume := os.Getenv("APPLE_TEN_MUSIC_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MusicVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON, e.g. {"clear":0.8,"fail":0.5}
	if effectVols := os.Getenv("APPLE_TEN_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("APPLE_TEN_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
