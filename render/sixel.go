package render

import (
	"bytes"
	"fmt"

	"github.com/lixenwraith/term7/bitmap"
)

// SixelEncoder turns an indexed pixel buffer into a sixel DCS string
// Scratch buffers are kept between frames
type SixelEncoder struct {
	out    bytes.Buffer
	bits   []byte // one band row per palette entry, width bytes each
	inBand [bitmap.PaletteEntries]bool
	used   [bitmap.PaletteEntries]bool
}

// Encode returns the sixel image for a width x height buffer of palette indices
// The returned slice is only valid until the next call
func (e *SixelEncoder) Encode(pix []uint8, width, height int, pal *bitmap.Palette) []byte {
	e.out.Reset()
	if width <= 0 || height <= 0 {
		return nil
	}

	if need := width * bitmap.PaletteEntries; len(e.bits) < need {
		e.bits = make([]byte, need)
	}
	clear(e.used[:])
	for _, idx := range pix[:width*height] {
		e.used[idx] = true
	}

	// DCS, 1:1 aspect, raster attributes
	fmt.Fprintf(&e.out, "\x1bP0;1;0q\"1;1;%d;%d", width, height)

	// Color registers take percentages
	for n, c := range pal {
		if !e.used[n] {
			continue
		}
		fmt.Fprintf(&e.out, "#%d;2;%d;%d;%d", n, percent(c.R), percent(c.G), percent(c.B))
	}

	for z := 0; z < (height+5)/6; z++ {
		if z > 0 {
			e.out.WriteByte('-') // DECGNL: next band
		}

		clear(e.inBand[:])
		for p := 0; p < 6; p++ {
			y := z*6 + p
			if y >= height {
				break
			}
			row := pix[y*width : (y+1)*width]
			for x, idx := range row {
				e.bits[int(idx)*width+x] |= 1 << p
				e.inBand[idx] = true
			}
		}

		first := true
		for n := 0; n < bitmap.PaletteEntries; n++ {
			if !e.inBand[n] {
				continue
			}
			if !first {
				e.out.WriteByte('$') // DECGCR: back to band start
			}
			first = false

			fmt.Fprintf(&e.out, "#%d", n)
			row := e.bits[n*width : (n+1)*width]
			e.writeRow(row)
			clear(row)
		}
	}

	e.out.WriteString("\x1b\\") // ST
	return e.out.Bytes()
}

// writeRow emits one color's band row with run-length compression
func (e *SixelEncoder) writeRow(row []byte) {
	cnt := 0
	var prev byte = 0xFF // impossible sixel value
	for _, ch := range row {
		if ch == prev {
			cnt++
			continue
		}
		if cnt > 0 {
			e.writeRun(prev, cnt)
		}
		prev = ch
		cnt = 1
	}
	if cnt > 0 {
		e.writeRun(prev, cnt)
	}
}

// writeRun writes a run of identical sixel characters
func (e *SixelEncoder) writeRun(ch byte, count int) {
	s := 63 + ch
	if count <= 3 {
		for i := 0; i < count; i++ {
			e.out.WriteByte(s)
		}
		return
	}
	fmt.Fprintf(&e.out, "!%d%c", count, s)
}

// percent converts an 8-bit channel to the rounded 0-100 sixel scale
func percent(c uint8) int {
	return (int(c)*100 + 127) / 255
}
