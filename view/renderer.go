// Package view draws a top-down terminal picture of a running session with tcell
package view

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lane-runner/parameter"
	"github.com/lixenwraith/lane-runner/session"
	"github.com/lixenwraith/lane-runner/spawn"
	"github.com/lixenwraith/lane-runner/track"
)

// Renderer owns the screen layout; the bottom row is the status line
type Renderer struct {
	screen      tcell.Screen
	vp          Viewport
	showMetrics bool
}

// NewRenderer sizes the viewport from the screen; halfSpan is the widest floor half width
func NewRenderer(screen tcell.Screen, halfSpan float64) *Renderer {
	r := &Renderer{
		screen: screen,
		vp: Viewport{
			Behind:   parameter.ViewBehind,
			Ahead:    parameter.ViewAhead,
			HalfSpan: halfSpan + parameter.ViewMargin,
		},
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.vp.Cols, r.vp.Rows = w, max(0, h-1)
}

func (r *Renderer) Viewport() Viewport { return r.vp }

// ToggleMetrics shows or hides the registry overlay
func (r *Renderer) ToggleMetrics() { r.showMetrics = !r.showMetrics }

// Draw renders one frame of s and shows it
func (r *Renderer) Draw(s *session.Session) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < parameter.ViewMinWidth || h < parameter.ViewMinHeight {
		drawText(r.screen, 0, 0, styleWarning, "terminal too small")
		r.screen.Show()
		return
	}

	tr := s.Track()
	for row := 0; row < r.vp.Rows; row++ {
		r.drawRow(tr, row)
	}
	r.drawItems(s)
	r.drawRunner(s)
	r.drawStatus(s, h-1)
	if r.showMetrics {
		r.drawMetrics(s)
	}
	r.screen.Show()
}

func (r *Renderer) drawRow(tr *track.Track, row int) {
	z := r.vp.ZAt(row)
	seg := tr.SegmentAt(z)
	if seg == nil {
		return
	}

	half := tr.Cache().Spec().WidthFunc(seg.Profile)(seg.Fraction(z)) / 2
	from, to := r.vp.Span(-half, half)

	glyph, style := glyphFloor, styleFloor
	if seg.HasCeiling {
		glyph, style = glyphTunnel, styleTunnel
	}
	if tr.IsOverGap(z) {
		glyph, style = glyphGap, styleGap
	} else if ws := seg.Parts.WarningStrip; ws.Visible && math.Abs(seg.Z+ws.Z-z) <= r.vp.cellDepth()/2 {
		glyph, style = glyphWarning, styleWarning
	}

	for col := from; col <= to; col++ {
		r.screen.SetContent(col, row, glyph, nil, style)
	}
	if glyph != glyphGap {
		for _, m := range seg.Parts.Markers {
			if !m.Visible {
				continue
			}
			if col, _, ok := r.vp.Cell(m.X, z); ok && col > from && col < to {
				r.screen.SetContent(col, row, glyphMarker, nil, styleMarker)
			}
		}
	}
	if from > 0 {
		r.screen.SetContent(from-1, row, glyphWall, nil, styleWall)
	}
	if to < r.vp.Cols-1 {
		r.screen.SetContent(to+1, row, glyphWall, nil, styleWall)
	}
}

func (r *Renderer) drawItems(s *session.Session) {
	sp := s.Spawner()
	sp.EachObstacle(func(_ int, o *spawn.Obstacle) {
		glyph := glyphLow
		switch {
		case o.Tall:
			glyph = glyphTall
		case o.Elevated:
			glyph = glyphElevated
		}
		// Footprint spans every covered column of the obstacle's row
		_, row, ok := r.vp.Cell(o.X, o.Z)
		if !ok {
			return
		}
		from, to := r.vp.Span(o.X-o.Width/2, o.X+o.Width/2)
		for col := from; col <= to; col++ {
			r.screen.SetContent(col, row, glyph, nil, styleObstacle)
		}
	})
	sp.EachCollectible(func(_ int, c *spawn.Collectible) {
		if col, row, ok := r.vp.Cell(c.X, c.Z); ok {
			r.screen.SetContent(col, row, glyphCollect, nil, styleCollect)
		}
	})
	sp.EachPowerup(func(_ int, p *spawn.Powerup) {
		if col, row, ok := r.vp.Cell(p.X, p.Z); ok {
			r.screen.SetContent(col, row, powerupGlyph(p.Kind), nil, stylePowerup)
		}
	})
}

func (r *Renderer) drawRunner(s *session.Session) {
	col, row, ok := r.vp.Cell(s.Runner().X(), parameter.RunnerZ)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, runnerGlyph(s), nil, styleRunner)
}

func runnerGlyph(s *session.Session) rune {
	switch {
	case s.Over() || s.Motion().State() == session.Falling:
		return glyphRunnerOut
	case s.Motion().State() == session.Jumping:
		return glyphRunnerUp
	case s.Motion().State() == session.Sliding:
		return glyphRunnerDown
	case s.Invincible():
		return glyphRunnerHurt
	}
	return glyphRunner
}

func (r *Renderer) drawStatus(s *session.Session, row int) {
	w, _ := r.screen.Size()
	for col := 0; col < w; col++ {
		r.screen.SetContent(col, row, ' ', nil, styleStatus)
	}
	drawText(r.screen, 0, row, styleStatus, StatusLine(s))
}

func (r *Renderer) drawMetrics(s *session.Session) {
	w, _ := r.screen.Size()
	x := max(0, w-parameter.ViewMetricsWidth)
	for i, m := range s.Metrics().Snapshot() {
		if i >= r.vp.Rows {
			break
		}
		line := fmt.Sprintf("%-22s %s", m.Key, m.Value)
		drawText(r.screen, x, i, styleMetrics, line)
	}
}

// StatusLine summarizes the run in one line
func StatusLine(s *session.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, " speed %5.1f  dist %6.0f  score %6.0f  meter %3.0f  lanes %d  hits %d",
		s.Track().Speed(), s.Track().Distance(), s.Score(), s.Meter(), s.LaneCount(), s.Hits())
	if s.Over() {
		fmt.Fprintf(&b, "  RUN OVER (%s) r to restart", s.EndReason())
		return b.String()
	}
	for _, kind := range s.ActivePowerups() {
		fmt.Fprintf(&b, "  [%s %.1fs]", kind, s.Remaining(kind))
	}
	return b.String()
}

func powerupGlyph(kind string) rune {
	for _, r := range kind {
		return unicode.ToUpper(r)
	}
	return '?'
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	w, _ := screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
