package cue

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/lane-runner/parameter"
)

// SoundType identifies a cue sound
type SoundType int

const (
	SoundTick    SoundType = iota // segment recycled
	SoundWarning                  // gap placed ahead
	SoundTunnel                   // tunnel placed ahead
	SoundNarrow                   // lane count dropped
	SoundWiden                    // lane count rose
	SoundHit                      // obstacle struck
	SoundShield                   // hit absorbed by shield
	SoundPickup                   // collectible taken
	SoundPowerup                  // powerup taken
	SoundExpire                   // powerup ran out
	SoundJump                     // jump started
	SoundSlide                    // slide started
	SoundFall                     // dropped into a gap
	SoundGameOver                 // run ended
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundTick:     "tick",
	SoundWarning:  "warning",
	SoundTunnel:   "tunnel",
	SoundNarrow:   "narrow",
	SoundWiden:    "widen",
	SoundHit:      "hit",
	SoundShield:   "shield",
	SoundPickup:   "pickup",
	SoundPowerup:  "powerup",
	SoundExpire:   "expire",
	SoundJump:     "jump",
	SoundSlide:    "slide",
	SoundFall:     "fall",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSound maps a sound name back to its type
func ParseSound(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// NewSound builds a fresh streamer for s at the given linear volume, nil for unknown types
func NewSound(s SoundType, rate beep.SampleRate, vol float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundTick:
		st = tone(1200, WaveSine, parameter.TickSoundDuration, parameter.TickSoundAttack, parameter.TickSoundRelease, rate)
	case SoundWarning:
		beep1 := tone(660, WaveSquare, parameter.WarningSoundBeep, parameter.WarningSoundAttack, parameter.WarningSoundRelease, rate)
		beep2 := tone(660, WaveSquare, parameter.WarningSoundBeep, parameter.WarningSoundAttack, parameter.WarningSoundRelease, rate)
		st = beep.Seq(beep1, beep.Silence(rate.N(parameter.WarningSoundPause)), beep2)
	case SoundTunnel:
		rumble := tone(110, WaveSine, parameter.TunnelSoundDuration, parameter.TunnelSoundAttack, parameter.TunnelSoundRelease, rate)
		air := tone(0, WaveNoise, parameter.TunnelSoundDuration, parameter.TunnelSoundAttack, parameter.TunnelSoundRelease, rate)
		st = beep.Mix(newVolume(rumble, 0.7), newVolume(air, 0.2))
	case SoundNarrow:
		st = twoNotes(440, 330, WaveSaw, rate)
	case SoundWiden:
		st = twoNotes(330, 440, WaveSine, rate)
	case SoundHit:
		st = tone(100, WaveSaw, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	case SoundShield:
		st = tone(0, WaveNoise, parameter.ShieldSoundDuration, parameter.ShieldSoundAttack, parameter.ShieldSoundRelease, rate)
	case SoundPickup:
		// A5 with its octave
		fund := tone(880, WaveSine, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundFundamentalRelease, rate)
		over := tone(1760, WaveSine, parameter.PickupSoundDuration, parameter.PickupSoundAttack, parameter.PickupSoundOvertoneRelease, rate)
		st = beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	case SoundPowerup:
		// B5 then E6
		n1 := tone(987.77, WaveSquare, parameter.PowerupSoundNote1Duration, parameter.PowerupSoundAttack, parameter.PowerupSoundNote1Release, rate)
		n2 := tone(1318.51, WaveSquare, parameter.PowerupSoundNote2Duration, parameter.PowerupSoundAttack, parameter.PowerupSoundNote2Release, rate)
		st = beep.Seq(n1, n2)
	case SoundExpire:
		n1 := tone(523.25, WaveSquare, parameter.ExpireSoundNoteDuration, parameter.ExpireSoundAttack, parameter.ExpireSoundRelease, rate)
		n2 := tone(392, WaveSquare, parameter.ExpireSoundNoteDuration, parameter.ExpireSoundAttack, parameter.ExpireSoundRelease, rate)
		st = beep.Seq(n1, n2)
	case SoundJump:
		st = sweep(300, 600, WaveSine, parameter.JumpSoundDuration, rate)
	case SoundSlide:
		st = tone(0, WaveNoise, parameter.SlideSoundDuration, parameter.SlideSoundAttack, parameter.SlideSoundRelease, rate)
	case SoundFall:
		st = sweep(500, 120, WaveSaw, parameter.FallSoundDuration, rate)
	case SoundGameOver:
		// G4, E4, C4
		st = beep.Seq(
			tone(392, WaveSquare, parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate),
			tone(329.63, WaveSquare, parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate),
			tone(261.63, WaveSquare, 2*parameter.GameOverSoundNoteDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate),
		)
	default:
		return nil
	}
	return newVolume(st, vol)
}

// sweep glides from one pitch to another in parameter.SweepSoundSteps short notes
func sweep(from, to float64, wave WaveType, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := parameter.SweepSoundSteps
	step := d / time.Duration(n)
	notes := make([]beep.Streamer, n)
	for i := range notes {
		f := from + (to-from)*float64(i)/float64(n-1)
		notes[i] = tone(f, wave, step, 0, 0, rate)
	}
	return beep.Seq(notes...)
}

func twoNotes(from, to float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	d := parameter.LaneSoundNoteDuration
	return beep.Seq(
		tone(from, wave, d, parameter.LaneSoundAttack, parameter.LaneSoundRelease, rate),
		tone(to, wave, d, parameter.LaneSoundAttack, parameter.LaneSoundRelease, rate),
	)
}
