package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term7/bitmap"
)

// basicColors is indexed by the red<<2 | green<<1 | blue dominance code
var basicColors = [8]tcell.Color{
	tcell.ColorBlack,  // 000
	tcell.ColorNavy,   // 001
	tcell.ColorGreen,  // 010
	tcell.ColorTeal,   // 011
	tcell.ColorMaroon, // 100
	tcell.ColorPurple, // 101
	tcell.ColorOlive,  // 110
	tcell.ColorSilver, // 111
}

const (
	// dominanceThreshold is the fraction of the strongest channel a channel
	// must exceed to count as on
	dominanceThreshold = 0.75
	// basicLumLevels buckets brightness into 0..4
	basicLumLevels = 4
	// boldAbove switches to bold emphasis
	boldAbove = 2
)

// Color16 draws reversed blank cells in one of the eight ANSI colors
type Color16 struct {
	target Target
}

// NewColor16 creates an ANSI color backend writing into t
func NewColor16(t Target) *Color16 {
	return &Color16{target: t}
}

func (c *Color16) Name() string { return "16 colors" }

// Init is a no-op; the eight base colors are fixed
func (c *Color16) Init(*bitmap.Palette) error { return nil }

func (c *Color16) Draw(x, y int, pal *bitmap.Palette, idx uint8) {
	c.target.SetContent(x, y, ' ', nil, BasicStyle(pal[idx].R, pal[idx].G, pal[idx].B))
}

// BasicCode reduces a color to its 3-bit dominance code and brightness bucket
func BasicCode(r, g, b uint8) (code int, lum int) {
	lum = maxLevel(r, g, b, basicLumLevels)
	if lum == 0 {
		return 0, 0
	}

	peak := float64(max(r, g, b))
	for _, ch := range [3]uint8{r, g, b} {
		code <<= 1
		if float64(ch)/peak > dominanceThreshold {
			code |= 1
		}
	}
	return code, lum
}

// BasicStyle returns the reversed cell style for a color
func BasicStyle(r, g, b uint8) tcell.Style {
	code, lum := BasicCode(r, g, b)
	return tcell.StyleDefault.
		Foreground(basicColors[code]).
		Background(tcell.ColorBlack).
		Reverse(true).
		Bold(lum > boldAbove)
}
