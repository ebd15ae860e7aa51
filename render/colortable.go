package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/term7/bitmap"
)

// ColorTable gives the 256-color backend one terminal color per palette entry
type ColorTable interface {
	Name() string
	// Program prepares the table for pal
	Program(pal *bitmap.Palette) error
	// Color returns the terminal color for palette entry idx
	Color(idx uint8) tcell.Color
	// Restore undoes any terminal-side changes made by Program
	Restore() error
}

// Color table kinds
const (
	TableOSC     = "osc"
	TableNearest = "nearest"
	TableRGB     = "rgb"
)

// NewColorTable builds the table named kind; OSC tables write to w
func NewColorTable(kind string, w io.Writer) (ColorTable, error) {
	switch kind {
	case "", TableOSC:
		return NewOSCTable(w), nil
	case TableNearest:
		return NewNearestTable(), nil
	case TableRGB:
		return NewRGBTable(), nil
	}
	return nil, fmt.Errorf("unknown palette mode %q (want %s, %s or %s)", kind, TableOSC, TableNearest, TableRGB)
}

// OSCTable reprograms the terminal's own 256 color registers so register i
// shows palette entry i exactly
type OSCTable struct {
	w          io.Writer
	buf        bytes.Buffer
	programmed bool
}

// NewOSCTable creates a register-programming table writing to w
func NewOSCTable(w io.Writer) *OSCTable {
	return &OSCTable{w: w}
}

func (t *OSCTable) Name() string { return TableOSC }

func (t *OSCTable) Program(pal *bitmap.Palette) error {
	t.buf.Reset()
	for i, c := range pal {
		fmt.Fprintf(&t.buf, "\x1b]4;%d;rgb:%02x/%02x/%02x\x1b\\", i, c.R, c.G, c.B)
	}
	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		return fmt.Errorf("program color registers: %w", err)
	}
	t.programmed = true
	return nil
}

func (t *OSCTable) Color(idx uint8) tcell.Color {
	return tcell.PaletteColor(int(idx))
}

func (t *OSCTable) Restore() error {
	if !t.programmed {
		return nil
	}
	t.programmed = false
	if _, err := io.WriteString(t.w, "\x1b]104\x1b\\"); err != nil {
		return fmt.Errorf("restore color registers: %w", err)
	}
	return nil
}

// NearestTable maps each palette entry to the closest stock xterm color,
// leaving the terminal's registers untouched
type NearestTable struct {
	stock  []colorful.Color
	lookup [bitmap.PaletteEntries]uint8
}

// xtermFirst skips the 16 base colors, which terminals theme freely
const xtermFirst = 16

// NewNearestTable creates a table over xterm colors 16..255
func NewNearestTable() *NearestTable {
	t := &NearestTable{stock: make([]colorful.Color, 0, 256-xtermFirst)}
	for i := xtermFirst; i < 256; i++ {
		r, g, b := tcell.PaletteColor(i).RGB()
		t.stock = append(t.stock, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
	}
	return t
}

func (t *NearestTable) Name() string { return TableNearest }

func (t *NearestTable) Program(pal *bitmap.Palette) error {
	for i, c := range pal {
		t.lookup[i] = t.nearest(colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255})
	}
	return nil
}

// nearest returns the xterm index with the smallest Euclidean RGB distance
func (t *NearestTable) nearest(c colorful.Color) uint8 {
	best := 0
	bestDist := c.DistanceRgb(t.stock[0])
	for i := 1; i < len(t.stock); i++ {
		if d := c.DistanceRgb(t.stock[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best + xtermFirst)
}

func (t *NearestTable) Color(idx uint8) tcell.Color {
	return tcell.PaletteColor(int(t.lookup[idx]))
}

func (t *NearestTable) Restore() error { return nil }

// RGBTable hands tcell direct 24-bit colors
type RGBTable struct {
	colors [bitmap.PaletteEntries]tcell.Color
}

// NewRGBTable creates a true color table
func NewRGBTable() *RGBTable {
	return &RGBTable{}
}

func (t *RGBTable) Name() string { return TableRGB }

func (t *RGBTable) Program(pal *bitmap.Palette) error {
	for i, c := range pal {
		t.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return nil
}

func (t *RGBTable) Color(idx uint8) tcell.Color {
	return t.colors[idx]
}

func (t *RGBTable) Restore() error { return nil }
