package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term7/bitmap"
)

// Color256 draws blank cells whose background is the palette entry's own
// terminal color
// The active style is cached per instance and only switched when the index
// changes from the previous cell
type Color256 struct {
	target Target
	table  ColorTable

	last  int
	style tcell.Style

	// OnSwitch, when set, observes every style switch
	OnSwitch func(idx uint8)
}

// NewColor256 creates a 256-color backend using table for color lookup
func NewColor256(t Target, table ColorTable) *Color256 {
	return &Color256{target: t, table: table, last: -1}
}

func (c *Color256) Name() string { return "256 colors" }

// Table returns the color table the backend programs
func (c *Color256) Table() ColorTable {
	return c.table
}

// Init programs the color table and drops the cached style
func (c *Color256) Init(pal *bitmap.Palette) error {
	c.last = -1
	return c.table.Program(pal)
}

func (c *Color256) Draw(x, y int, pal *bitmap.Palette, idx uint8) {
	if c.last != int(idx) {
		c.last = int(idx)
		c.style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(c.table.Color(idx))
		if c.OnSwitch != nil {
			c.OnSwitch(idx)
		}
	}
	c.target.SetContent(x, y, ' ', nil, c.style)
}
