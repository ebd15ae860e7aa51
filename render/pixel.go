package render

import (
	"fmt"
	"io"

	"github.com/lixenwraith/term7/bitmap"
	"github.com/lixenwraith/term7/constants"
)

// cursorHome places the image at the top-left cell
var cursorHome = []byte("\x1b[H")

// Pixel renders into a fixed-size offscreen indexed buffer and writes it as a
// sixel image once per frame
type Pixel struct {
	w             io.Writer
	width, height int
	pix           []uint8
	enc           SixelEncoder
}

// NewPixel creates a sixel backend at the default resolution writing to w
func NewPixel(w io.Writer) *Pixel {
	return NewPixelSize(w, constants.PixelBufferWidth, constants.PixelBufferHeight)
}

// NewPixelSize creates a sixel backend with an explicit resolution
func NewPixelSize(w io.Writer, width, height int) *Pixel {
	return &Pixel{
		w:      w,
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

func (p *Pixel) Name() string { return "sixel" }

// Init clears the buffer; the palette travels inside every image
func (p *Pixel) Init(*bitmap.Palette) error {
	clear(p.pix)
	return nil
}

func (p *Pixel) Draw(x, y int, _ *bitmap.Palette, idx uint8) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = idx
}

func (p *Pixel) Size() (int, int) {
	return p.width, p.height
}

// Pix exposes the offscreen buffer, row-major
func (p *Pixel) Pix() []uint8 {
	return p.pix
}

func (p *Pixel) Flush(pal *bitmap.Palette) error {
	data := p.enc.Encode(p.pix, p.width, p.height, pal)
	if _, err := p.w.Write(cursorHome); err != nil {
		return fmt.Errorf("sixel: %w", err)
	}
	if _, err := p.w.Write(data); err != nil {
		return fmt.Errorf("sixel: %w", err)
	}
	return nil
}
