// Package texture turns a decoded indexed bitmap into a palette-reduced mipmap
// pyramid ready for sampling.
package texture

import (
	"fmt"

	"github.com/lixenwraith/term7/bitmap"
)

const (
	// MaxLevels caps the pyramid depth
	MaxLevels = 8
	// MinColors and MaxColors bound the target palette size
	MinColors = 2
	MaxColors = bitmap.PaletteEntries
)

// Level is one step of the pyramid
// Ratio is the downsampling factor relative to level 0
type Level struct {
	Image *bitmap.Image
	Ratio int
}

// Texture is a finest-first mipmap chain sharing a single reduced palette
// Level 0 is never resized once built
type Texture struct {
	levels [MaxLevels]Level
	count  int
}

// ClampLevels folds a requested pyramid depth into [1, MaxLevels]
func ClampLevels(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxLevels {
		return MaxLevels
	}
	return n
}

// ClampColors folds a requested palette size into [MinColors, MaxColors]
func ClampColors(n int) int {
	if n < MinColors {
		return MinColors
	}
	if n > MaxColors {
		return MaxColors
	}
	return n
}

// New quantizes base in place to maxColors and derives levels-1 coarser copies
// from it. base becomes level 0 and is owned by the texture from then on
// On error nothing is retained and base is left quantized
func New(base *bitmap.Image, maxColors, levels int) (*Texture, error) {
	levels = ClampLevels(levels)

	var q Quantizer
	q.Quantize(base, maxColors)

	t := &Texture{}
	t.levels[0] = Level{Image: base, Ratio: 1}
	t.count = 1

	for i := 1; i < levels; i++ {
		ratio := 2 * t.levels[i-1].Ratio
		// Every level derives from level 0, not its predecessor
		img, err := Downsize(base, base.Width/ratio, base.Height/ratio)
		if err != nil {
			// base stays with the caller
			t.levels[0] = Level{}
			t.Release()
			return nil, fmt.Errorf("level %d (ratio %d): %w", i, ratio, err)
		}
		t.levels[i] = Level{Image: img, Ratio: ratio}
		t.count++
	}

	return t, nil
}

// Load decodes the bitmap at path and builds its texture
func Load(path string, maxColors, levels int) (*Texture, error) {
	base, err := bitmap.Load(path)
	if err != nil {
		return nil, err
	}
	t, err := New(base, maxColors, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Count returns the number of levels, at least 1 for a live texture
func (t *Texture) Count() int {
	return t.count
}

// Level returns level i, panicking outside [0, Count)
func (t *Texture) Level(i int) *Level {
	if i < 0 || i >= t.count {
		panic(fmt.Sprintf("texture: level %d out of range [0,%d)", i, t.count))
	}
	return &t.levels[i]
}

// Base returns the full-resolution image
func (t *Texture) Base() *bitmap.Image {
	return t.levels[0].Image
}

// Palette returns the palette shared by all levels
func (t *Texture) Palette() *bitmap.Palette {
	return &t.levels[0].Image.Palette
}

// Size returns level 0 dimensions
func (t *Texture) Size() (int, int) {
	b := t.Base()
	return b.Width, b.Height
}

// Release drops every level's pixel buffer; the texture is unusable afterwards
func (t *Texture) Release() {
	for i := range t.levels {
		if img := t.levels[i].Image; img != nil {
			img.Pix = nil
		}
		t.levels[i] = Level{}
	}
	t.count = 0
}
