// trackview drives a session in the terminal: a top-down view of the track with cue sounds
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/cue"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/session"
	"github.com/lixenwraith/lane-runner/view"
)

var (
	seedFlag   = flag.Int64("seed", 0, "Run seed; 0 picks one from the clock")
	configFlag = flag.String("config", "", "TOML file overriding the default track config")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Disable cue sounds")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	spec := geometry.SpecFor(cfg)
	cache := geometry.NewCache(spec)

	queue := event.NewQueue()
	s, err := session.New(cfg, cache, seed, session.WithEvents(queue))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log.Printf("seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTRACKVIEW CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	audioCfg := cue.LoadConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	player := cue.NewPlayer(audioCfg)
	if err := player.Start(); err != nil {
		// Non-fatal, the viewer runs silent
		log.Printf("audio start failed: %v", err)
	}
	defer player.Stop()

	renderer := view.NewRenderer(screen, spec.Width*spec.WideFactor/2)
	run(screen, s, queue, player, renderer)
}

func run(screen tcell.Screen, s *session.Session, queue *event.Queue, player *cue.Player, renderer *view.Renderer) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	paused := false
	var dropped uint64
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, s, renderer, &paused) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now
			if !paused {
				s.Update(dt.Seconds())
			}
			dropped = drain(queue, player, dropped)
			renderer.Draw(s)
		}
	}
}

// handleKey applies one key press; false quits
func handleKey(ev *tcell.EventKey, s *session.Session, renderer *view.Renderer, paused *bool) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.ShiftLane(-1)
	case tcell.KeyRight:
		s.ShiftLane(1)
	case tcell.KeyUp:
		s.Jump()
	case tcell.KeyDown:
		s.Slide()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'a', 'h':
			s.ShiftLane(-1)
		case 'd', 'l':
			s.ShiftLane(1)
		case 'w', 'k':
			s.Jump()
		case 's', 'j':
			s.Slide()
		case 'r':
			s.Reset()
		case 'm':
			renderer.ToggleMetrics()
		case ' ', 'p':
			*paused = !*paused
		}
	}
	return true
}

// drain hands queued events to the cue player and returns pooled payloads
// It returns the queue's drop count, logging when it grew past reported
func drain(queue *event.Queue, player *cue.Player, reported uint64) uint64 {
	evs := queue.Consume()
	player.Handle(evs)
	for _, ev := range evs {
		switch ev.Type {
		case event.EventSelectionFallback, event.EventPoolExhausted, event.EventObstacleHit, event.EventRunEnded:
			log.Printf("tick %d: %s %+v", ev.Tick, ev.Type, ev.Payload)
		}
		event.ReleasePayload(ev)
	}
	n := queue.Dropped()
	if n > reported {
		log.Printf("event queue dropped %d events so far", n)
	}
	return n
}
