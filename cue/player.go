// Package cue turns track events into short synthesized sounds mixed through beep
package cue

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/parameter"
)

// Player owns the cue mixer
// Until Start succeeds nothing drains the mixer except callers streaming Mixer directly
type Player struct {
	mu      sync.Mutex
	cfg     *Config
	mixer   *beep.Mixer
	started bool
	played  [soundTypeCount]int
	dropped int
}

func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and plays the mixer on it; a disabled player or second call is a no-op
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started || !p.cfg.Enabled {
		return nil
	}
	rate := p.cfg.SampleRate
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	log.Printf("audio started at %d Hz", rate)
	return nil
}

// Stop silences every playing cue; the speaker stays open
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Clear()
}

// Play mixes in a new instance of s
// Returns false when disabled, muted, or AudioMaxVoices cues are already sounding
func (p *Player) Play(s SoundType) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || s < 0 || s >= soundTypeCount {
		return false
	}
	vol := p.cfg.MasterVolume * p.cfg.Volumes[s]
	if vol <= 0 {
		return false
	}

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		p.dropped++
		return false
	}
	p.mixer.Add(NewSound(s, p.cfg.SampleRate, vol))
	p.played[s]++
	return true
}

// Handle plays the cue of every event that has one and returns how many sounded
func (p *Player) Handle(evs []event.Event) int {
	n := 0
	for _, ev := range evs {
		if s, ok := SoundFor(ev); ok && p.Play(s) {
			n++
		}
	}
	return n
}

// Mixer is the streamer the speaker plays
func (p *Player) Mixer() beep.Streamer { return p.mixer }

// Played counts cues of type s mixed in so far
func (p *Player) Played(s SoundType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return p.played[s]
}

// Dropped counts cues refused for lack of a free voice
func (p *Player) Dropped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// SoundFor maps a track event to its cue
func SoundFor(ev event.Event) (SoundType, bool) {
	switch ev.Type {
	case event.EventSegmentPlaced:
		p, ok := ev.Payload.(event.SegmentPlacedPayload)
		if !ok {
			return 0, false
		}
		switch p.Type {
		case config.TypeGap:
			return SoundWarning, true
		case config.TypeTunnel:
			return SoundTunnel, true
		}
	case event.EventSegmentRecycled:
		return SoundTick, true
	case event.EventLaneCountChanged:
		if p, ok := ev.Payload.(event.LaneCountPayload); ok {
			if p.To < p.From {
				return SoundNarrow, true
			}
			return SoundWiden, true
		}
	case event.EventObstacleHit:
		if p, ok := ev.Payload.(event.HitPayload); ok && p.Absorbed {
			return SoundShield, true
		}
		return SoundHit, true
	case event.EventPickupCollected:
		if p, ok := ev.Payload.(event.PickupPayload); ok && p.Powerup {
			return SoundPowerup, true
		}
		return SoundPickup, true
	case event.EventPowerupExpired:
		return SoundExpire, true
	case event.EventRunnerJumped:
		return SoundJump, true
	case event.EventRunnerSlid:
		return SoundSlide, true
	case event.EventRunnerFell:
		return SoundFall, true
	case event.EventRunEnded:
		return SoundGameOver, true
	}
	return 0, false
}
