package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Status line colors
var (
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
)

// StatusStyle is used for the status line in every backend
var StatusStyle = tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)

// Status holds the values shown on the status line
type Status struct {
	MoveSpeed float64
	TurnSpeed float64
	Colors    int
	Mipmaps   int
	Backend   string
	Map       string
	Sound     bool
}

// String formats the status line
func (s Status) String() string {
	line := fmt.Sprintf("move spd: %6.1f, turn spd: %4.1f, colors: %3d, mipmaps: %d, renderer: %10s, map: %s",
		s.MoveSpeed, s.TurnSpeed, s.Colors, s.Mipmaps, s.Backend, s.Map)
	if s.Sound {
		line += ", sound: on"
	}
	return line
}

// DrawStatus writes the status line on row y, clearing up to width columns
func DrawStatus(t Target, y, width int, s Status) {
	x := 0
	for _, r := range s.String() {
		if x >= width {
			return
		}
		t.SetContent(x, y, r, nil, StatusStyle)
		x++
	}
	for ; x < width; x++ {
		t.SetContent(x, y, ' ', nil, StatusStyle)
	}
}
