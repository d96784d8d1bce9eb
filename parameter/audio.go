package parameter

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; larger values add latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices caps concurrent cue sounds, extra cues are dropped
	AudioMaxVoices = 8

	AudioMasterVolume = 0.6
)

// Tick Sound (segment recycled)
const (
	TickSoundDuration = 15 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 10 * time.Millisecond
)

// Warning Sound (gap placed ahead)
const (
	WarningSoundBeep    = 70 * time.Millisecond
	WarningSoundPause   = 50 * time.Millisecond
	WarningSoundAttack  = 5 * time.Millisecond
	WarningSoundRelease = 30 * time.Millisecond
)

// Tunnel Sound
const (
	TunnelSoundDuration = 400 * time.Millisecond
	TunnelSoundAttack   = 200 * time.Millisecond
	TunnelSoundRelease  = 180 * time.Millisecond
)

// Lane Change Sound (narrow or widen, two notes)
const (
	LaneSoundNoteDuration = 90 * time.Millisecond
	LaneSoundAttack       = 5 * time.Millisecond
	LaneSoundRelease      = 60 * time.Millisecond
)

// Hit Sound
const (
	HitSoundDuration = 150 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond
)

// Shield Sound (hit absorbed)
const (
	ShieldSoundDuration = 250 * time.Millisecond
	ShieldSoundAttack   = 100 * time.Millisecond
	ShieldSoundRelease  = 140 * time.Millisecond
)

// Pickup Sound
const (
	PickupSoundDuration           = 400 * time.Millisecond
	PickupSoundAttack             = 5 * time.Millisecond
	PickupSoundFundamentalRelease = 350 * time.Millisecond
	PickupSoundOvertoneRelease    = 150 * time.Millisecond
)

// Powerup Sound
const (
	PowerupSoundNote1Duration = 80 * time.Millisecond
	PowerupSoundNote2Duration = 280 * time.Millisecond
	PowerupSoundAttack        = 5 * time.Millisecond
	PowerupSoundNote1Release  = 40 * time.Millisecond
	PowerupSoundNote2Release  = 200 * time.Millisecond
)

// Expire Sound
const (
	ExpireSoundNoteDuration = 120 * time.Millisecond
	ExpireSoundAttack       = 5 * time.Millisecond
	ExpireSoundRelease      = 80 * time.Millisecond
)

// Jump And Fall Sounds (pitch sweeps)
const (
	JumpSoundDuration = 120 * time.Millisecond
	FallSoundDuration = 450 * time.Millisecond
	SweepSoundSteps   = 6
)

// Slide Sound
const (
	SlideSoundDuration = 200 * time.Millisecond
	SlideSoundAttack   = 20 * time.Millisecond
	SlideSoundRelease  = 150 * time.Millisecond
)

// Game Over Sound (three falling notes, the last held)
const (
	GameOverSoundNoteDuration = 150 * time.Millisecond
	GameOverSoundAttack       = 5 * time.Millisecond
	GameOverSoundRelease      = 100 * time.Millisecond
)
