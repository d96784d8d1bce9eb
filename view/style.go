package view

import "github.com/gdamore/tcell/v2"

// Glyphs
const (
	glyphFloor      = '·'
	glyphTunnel     = '░'
	glyphGap        = ' '
	glyphWarning    = '='
	glyphWall       = '│'
	glyphMarker     = '¦'
	glyphLow        = '▄'
	glyphElevated   = '▀'
	glyphTall       = '█'
	glyphCollect    = '•'
	glyphRunner     = '▲'
	glyphRunnerHurt = '△'
	glyphRunnerUp   = '↑'
	glyphRunnerDown = '↓'
	glyphRunnerOut  = 'x'
)

var (
	styleVoid     = tcell.StyleDefault
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTunnel   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleGap      = tcell.StyleDefault.Background(tcell.ColorDarkRed)
	styleWarning  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMarker   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCollect  = tcell.StyleDefault.Foreground(tcell.ColorGold)
	stylePowerup  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleRunner   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleMetrics  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)
