package texture

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/term7/bitmap"
)

// ErrInvalidDownsize is returned when a target size is not a strict integer
// divisor of the source size
var ErrInvalidDownsize = errors.New("texture: invalid downsizing parameters")

// Downsize builds a w x h copy of src where each pixel is the palette entry
// closest to the mean color of its source block
// Candidates are limited to entries src actually uses, so a coarser level
// never shows a color absent from the full-resolution one
func Downsize(src *bitmap.Image, w, h int) (*bitmap.Image, error) {
	if w <= 0 || h <= 0 || w >= src.Width || h >= src.Height ||
		src.Width%w != 0 || src.Height%h != 0 {
		return nil, fmt.Errorf("%w: %dx%d from %dx%d", ErrInvalidDownsize, w, h, src.Width, src.Height)
	}

	var counts [bitmap.PaletteEntries]uint32
	src.Occupancy(&counts)

	candidates := make([]uint8, 0, bitmap.PaletteEntries)
	for i, n := range counts {
		if n > 0 {
			candidates = append(candidates, uint8(i))
		}
	}

	dst := bitmap.New(w, h)
	dst.Palette = src.Palette

	wr := src.Width / w
	hr := src.Height / h
	area := uint64(wr * hr)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumR, sumG, sumB uint64
			for k := 0; k < hr; k++ {
				row := src.Pix[(y*hr+k)*src.Width+x*wr:]
				for l := 0; l < wr; l++ {
					c := src.Palette[row[l]]
					sumR += uint64(c.R)
					sumG += uint64(c.G)
					sumB += uint64(c.B)
				}
			}

			dst.Pix[y*w+x] = nearest(&src.Palette, candidates,
				int(sumR/area), int(sumG/area), int(sumB/area))
		}
	}

	return dst, nil
}

// nearest picks the candidate with the smallest summed per-channel difference
// First candidate wins ties
func nearest(pal *bitmap.Palette, candidates []uint8, r, g, b int) uint8 {
	best := math.MaxInt
	var idx uint8
	for _, c := range candidates {
		p := pal[c]
		d := abs(r-int(p.R)) + abs(g-int(p.G)) + abs(b-int(p.B))
		if d < best {
			best = d
			idx = c
		}
	}
	return idx
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
