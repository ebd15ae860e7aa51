package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term7/bitmap"
)

// Target is the cell surface glyph backends write into
// tcell.Screen satisfies it
type Target interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Backend turns one palette index into one visible cell
type Backend interface {
	// Name is shown in the status line
	Name() string
	// Init performs one-time color table setup for pal
	Init(pal *bitmap.Palette) error
	// Draw writes the cell at (x, y) for palette entry idx
	Draw(x, y int, pal *bitmap.Palette, idx uint8)
}

// FrameBackend is implemented by backends rendering into a fixed-size
// offscreen buffer that is encoded once per frame
// Such backends receive every cell, unthrottled
type FrameBackend interface {
	Backend
	// Size is the fixed render resolution
	Size() (int, int)
	// Flush encodes the finished frame to the terminal
	Flush(pal *bitmap.Palette) error
}
