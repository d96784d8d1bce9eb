package cue

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/lane-runner/parameter"
)

// Config holds playback settings; volumes are linear in [0, 1]
type Config struct {
	Enabled      bool
	SampleRate   beep.SampleRate
	MasterVolume float64
	Volumes      [soundTypeCount]float64
}

// DefaultConfig enables every cue, with the recycle tick kept quiet
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
	}
	for i := range cfg.Volumes {
		cfg.Volumes[i] = 1
	}
	cfg.Volumes[SoundTick] = 0.15
	cfg.Volumes[SoundTunnel] = 0.6
	return cfg
}

// LoadConfig applies environment overrides to the defaults:
// LANE_RUNNER_AUDIO_ENABLED (bool), LANE_RUNNER_MASTER_VOLUME (0-100),
// LANE_RUNNER_SFX_VOLUMES (JSON object of sound name to 0-1 volume)
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LANE_RUNNER_AUDIO_ENABLED"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = on
		}
	}

	if v := os.Getenv("LANE_RUNNER_MASTER_VOLUME"); v != "" {
		if pct, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(1, max(0, float64(pct)/100))
		}
	}

	if v := os.Getenv("LANE_RUNNER_SFX_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			for name, vol := range volumes {
				if s, ok := ParseSound(name); ok {
					cfg.Volumes[s] = min(1, max(0, vol))
				}
			}
		}
	}

	return cfg
}
