package session

import (
	"testing"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/parameter"
)

func TestClearance_OpeningIsClear(t *testing.T) {
	s := newTestSession(t, config.Default(), 9)
	got := s.Clearance(parameter.AutopilotLookahead, nil)
	if len(got) != 3 {
		t.Fatalf("clearance for %d lanes", len(got))
	}
	for i, c := range got {
		if c != parameter.AutopilotLookahead {
			t.Errorf("lane %d clearance %g on the hazard-free opening", i, c)
		}
	}

	ap := NewAutopilot()
	if ap.Steer(s) {
		t.Error("steered with every lane clear")
	}
}

func TestClearance_NeverNegative(t *testing.T) {
	s := newTestSession(t, config.Default(), 10)
	var buf []float64
	for i := 0; i < 20*60; i++ {
		s.Update(frameDT)
		buf = s.Clearance(parameter.AutopilotLookahead, buf)
		if len(buf) != s.LaneCount() {
			t.Fatalf("clearance lanes %d, layout %d", len(buf), s.LaneCount())
		}
		for l, c := range buf {
			if c < 0 || c > parameter.AutopilotLookahead {
				t.Fatalf("lane %d clearance %g", l, c)
			}
		}
	}
}

func TestAutopilot_AvoidsObstacles(t *testing.T) {
	run := func(steer bool) int {
		s := newTestSession(t, endless(config.Default()), 11)
		ap := NewAutopilot()
		for i := 0; i < 60*60; i++ {
			if steer {
				ap.Steer(s)
			}
			s.Update(frameDT)
		}
		return s.Hits()
	}

	manual, piloted := run(false), run(true)
	if manual == 0 {
		t.Skip("no hits without steering for this seed")
	}
	if piloted >= manual {
		t.Errorf("autopilot hits %d, standing still %d", piloted, manual)
	}
}

func TestAutopilot_JumpsGaps(t *testing.T) {
	cfg := gapCourse()
	gap := cfg.Segments.Types[config.TypeGap]
	gap.GapLength = 0.25
	cfg.Segments.Types[config.TypeGap] = gap

	q := event.NewQueue()
	s := newTestSession(t, cfg, 17, WithEvents(q))
	ap := NewAutopilot()

	jumps := 0
	for i := 0; i < 12*60; i++ {
		ap.Steer(s)
		s.Update(frameDT)
		for _, ev := range q.Consume() {
			switch ev.Type {
			case event.EventRunnerJumped:
				jumps++
			case event.EventRunnerFell:
				t.Fatalf("fell at %.0f m", s.Track().Distance())
			}
			event.ReleasePayload(ev)
		}
	}
	if s.Over() || jumps < 2 {
		t.Errorf("over %v after %d jumps", s.Over(), jumps)
	}
}

func TestAutopilot_DodgesVertically(t *testing.T) {
	tests := []struct {
		kind  string
		state MotionState
	}{
		{"lowBarrier", Jumping},
		{"barrier", Jumping},
		{"slideBarrier", Sliding},
		{"tallBarrier", Running},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s := newTestSession(t, endless(config.Default()), 18)
			ap := NewAutopilot()

			// Every lane blocked alike, so steering cannot help
			z := parameter.RunnerZ + 8
			for l, x := range s.Track().LaneInfoAt(z).Positions {
				if !s.Spawner().PlaceObstacle(tt.kind, l, x, z, s.Track().HeightAt(z)) {
					t.Fatalf("no %s slot", tt.kind)
				}
			}
			var seen MotionState
			for i := 0; i < 45 && s.Hits() == 0; i++ {
				ap.Steer(s)
				s.Update(frameDT)
				if st := s.Motion().State(); st != Running {
					seen = st
				}
			}
			if seen != tt.state {
				t.Errorf("autopilot move %v, want %v", seen, tt.state)
			}
			if wantHit := tt.state == Running; (s.Hits() > 0) != wantHit {
				t.Errorf("hits %d", s.Hits())
			}
		})
	}
}
