package cue

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns the sample count and the peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, math.Abs(smp[0]), math.Abs(smp[1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestOscillator_Waves(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 50*time.Millisecond, tt.wave, testRate)
			buf := make([][2]float64, 100)
			n, ok := osc.Stream(buf)
			if !ok || n != 100 {
				t.Fatalf("Stream = %d, %v", n, ok)
			}
			for i, smp := range buf {
				if smp[0] < -1 || smp[0] > 1 || smp[0] != smp[1] {
					t.Fatalf("sample %d = %v", i, smp)
				}
				if tt.wave == WaveSquare && math.Abs(smp[0]) != 1 {
					t.Fatalf("square sample %d = %g", i, smp[0])
				}
			}
			if osc.Err() != nil {
				t.Errorf("Err = %v", osc.Err())
			}
		})
	}
}

func TestOscillator_Length(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	n, _ := drain(t, osc)
	if want := testRate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}
	if n, ok := osc.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("exhausted oscillator streamed %d, %v", n, ok)
	}
}

func TestEnvelope_Shape(t *testing.T) {
	d, att, rel := 100*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, d, att, rel, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d", n, len(buf))
	}

	if buf[0][0] != 0 {
		t.Errorf("attack starts at %g, want 0", buf[0][0])
	}
	attN := testRate.N(att)
	if got := buf[attN/2][0]; math.Abs(got-0.5) > 0.01 {
		t.Errorf("mid attack %g, want 0.5", got)
	}
	if got := buf[n/2][0]; got != 1 {
		t.Errorf("sustain %g, want 1", got)
	}
	relStart := n - testRate.N(rel)
	for i := relStart + 1; i < n; i++ {
		if buf[i][0] > buf[i-1][0] {
			t.Fatalf("release rises at %d", i)
		}
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release ends at %g", last)
	}
}

func TestNewVolume(t *testing.T) {
	tests := []struct {
		name string
		vol  float64
		want float64
	}{
		{"full", 1, 1},
		{"half", 0.5, 0.5},
		{"silent", 0, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), tt.vol)
			_, peak := drain(t, s)
			if math.Abs(peak-tt.want) > 1e-9 {
				t.Errorf("peak %g, want %g", peak, tt.want)
			}
		})
	}
}

func TestNewSound_AllTypes(t *testing.T) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			st := NewSound(s, testRate, 1)
			if st == nil {
				t.Fatal("nil streamer")
			}
			n, peak := drain(t, st)
			if n == 0 || peak == 0 {
				t.Errorf("silent: %d samples, peak %g", n, peak)
			}
			if n > testRate.N(time.Second) {
				t.Errorf("%d samples, cues stay under a second", n)
			}
		})
	}
	if NewSound(soundTypeCount, testRate, 1) != nil {
		t.Error("unknown sound built a streamer")
	}
}

func TestSoundNames(t *testing.T) {
	for s := SoundType(0); s < soundTypeCount; s++ {
		got, ok := ParseSound(s.String())
		if !ok || got != s {
			t.Errorf("ParseSound(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseSound("klaxon"); ok {
		t.Error("parsed unknown name")
	}
	if SoundType(-1).String() != "unknown" {
		t.Error("negative sound has a name")
	}
}
