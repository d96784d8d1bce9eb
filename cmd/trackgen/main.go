// trackgen runs a session headless and prints the generated segment sequence and run metrics
// With -export it also writes every cached mesh as a Wavefront OBJ file
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/lane-runner/config"
	"github.com/lixenwraith/lane-runner/event"
	"github.com/lixenwraith/lane-runner/geometry"
	"github.com/lixenwraith/lane-runner/session"
)

type options struct {
	seed      int64
	config    string
	duration  time.Duration
	step      time.Duration
	autopilot bool
	quiet     bool
	export    string
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 1, "Run seed")
	flag.StringVar(&opts.config, "config", "", "TOML file overriding the default track config")
	flag.DurationVar(&opts.duration, "duration", time.Minute, "Simulated run time")
	flag.DurationVar(&opts.step, "step", 16*time.Millisecond, "Simulation step")
	flag.BoolVar(&opts.autopilot, "autopilot", true, "Steer the runner around obstacles")
	flag.BoolVar(&opts.quiet, "quiet", false, "Print only the summary and metrics")
	flag.StringVar(&opts.export, "export", "", "Directory to write OBJ meshes into")
	verbose := flag.Bool("v", false, "Log to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "trackgen: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, w io.Writer) error {
	if opts.step <= 0 {
		return fmt.Errorf("step must be positive, got %v", opts.step)
	}

	cfg := config.Default()
	if opts.config != "" {
		loaded, err := config.Load(opts.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	cache := geometry.NewCache(geometry.SpecFor(cfg))

	if opts.export != "" {
		n, err := export(cache, opts.export)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "exported %d meshes to %s\n", n, opts.export)
	}

	queue := event.NewQueue()
	s, err := session.New(cfg, cache, opts.seed, session.WithEvents(queue))
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintf(w, "%-8s %-10s %-16s %7s %7s %6s\n", "distance", "type", "profile", "start", "end", "cost")
	}
	report := func() {
		for _, ev := range queue.Consume() {
			if p, ok := ev.Payload.(event.SegmentPlacedPayload); ok && !opts.quiet {
				fmt.Fprintf(w, "%8.1f %-10s %-16s %7.2f %7.2f %6.2f\n",
					s.Track().Distance(), p.Type, p.Profile, p.StartHeight, p.EndHeight, p.Cost)
			}
			event.ReleasePayload(ev)
		}
	}
	report()

	ap := session.NewAutopilot()
	dt := opts.step.Seconds()
	steps := int(opts.duration / opts.step)
	for i := 0; i < steps && !s.Over(); i++ {
		if opts.autopilot {
			ap.Steer(s)
		}
		s.Update(dt)
		report()
	}

	fmt.Fprintf(w, "\nrun %s: %.1fs, %.0f m, %d segments, %d hits, %d pickups, score %.0f, meter %.0f\n",
		s.ID(), s.Elapsed(), s.Track().Distance(), s.Track().Spawned(), s.Hits(), s.Pickups(), s.Score(), s.Meter())
	if s.Over() {
		fmt.Fprintf(w, "ended: %s\n", s.EndReason())
	}
	fmt.Fprintln(w)
	_, err = s.Metrics().WriteTo(w)
	return err
}

// export writes each profile's floor and walls and the shared part meshes into dir
func export(cache *geometry.Cache, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	type entry struct {
		name string
		mesh *geometry.Mesh
	}
	var meshes []entry
	for _, p := range geometry.Profiles() {
		set := cache.MustLookup(p)
		meshes = append(meshes,
			entry{p.String() + "_floor", set.Floor},
			entry{p.String() + "_left_wall", set.LeftWall},
			entry{p.String() + "_right_wall", set.RightWall},
		)
	}
	parts := cache.Parts()
	meshes = append(meshes,
		entry{"gap_piece", parts.GapPiece},
		entry{"warning_strip", parts.WarningStrip},
		entry{"marker", parts.Marker},
		entry{"ceiling", parts.Ceiling},
		entry{"ceiling_side", parts.CeilingSide},
	)

	for _, e := range meshes {
		if err := writeMesh(filepath.Join(dir, e.name+".obj"), e.name, e.mesh); err != nil {
			return 0, err
		}
	}
	return len(meshes), nil
}

func writeMesh(path, name string, m *geometry.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := geometry.WriteOBJ(f, name, m); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
