package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term7/bitmap"
)

// glyphRamp orders glyphs by increasing visual density
var glyphRamp = []rune{' ', '.', '`', '^', '*', ':', ';', '+', '=', '%', '§', '$', '#'}

// Monochrome draws a density glyph chosen by the brightest channel
type Monochrome struct {
	target Target
	style  tcell.Style
}

// NewMonochrome creates a glyph backend writing into t
func NewMonochrome(t Target) *Monochrome {
	return &Monochrome{
		target: t,
		style:  tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	}
}

func (m *Monochrome) Name() string { return "monochrome" }

// Init is a no-op; glyphs need no color table
func (m *Monochrome) Init(*bitmap.Palette) error { return nil }

func (m *Monochrome) Draw(x, y int, pal *bitmap.Palette, idx uint8) {
	m.target.SetContent(x, y, Glyph(pal[idx].R, pal[idx].G, pal[idx].B), nil, m.style)
}

// Glyph returns the ramp glyph for a color
func Glyph(r, g, b uint8) rune {
	n := len(glyphRamp)
	lum := maxLevel(r, g, b, n)
	if lum >= n {
		lum = n - 1
	}
	return glyphRamp[lum]
}

// maxLevel buckets each channel into levels steps and returns the highest
func maxLevel(r, g, b uint8, levels int) int {
	step := 255 / float64(levels)
	lum := 0
	for _, c := range [3]uint8{r, g, b} {
		if l := int(math.Round(float64(c) / step)); l > lum {
			lum = l
		}
	}
	return lum
}
