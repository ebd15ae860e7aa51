// Package bitmap decodes uncompressed, bottom-up, 8-bit indexed BMP files into
// an in-memory indexed image.
//
// Only the width and height header fields are interpreted. Compression and
// bit depth are not validated; feeding any other BMP flavour produces garbage
// rather than an error.
package bitmap

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

const (
	// HeaderSize is the fixed file + info header length
	HeaderSize = 54
	// PaletteEntries is the fixed palette length following the header
	PaletteEntries = 256
	// PaletteSize is the palette length in bytes (B, G, R, reserved)
	PaletteSize = PaletteEntries * 4

	widthOffset  = 18
	heightOffset = 22

	// maxPixels bounds the index buffer allocated from untrusted header fields
	maxPixels = 1 << 28
)

// Palette holds the 256 colors of an indexed image
// Entries not referenced by any pixel are legal and inert
type Palette [PaletteEntries]color.RGBA

// Image is an indexed raster, row-major, first row is the top of the picture
type Image struct {
	Width   int
	Height  int
	Palette Palette
	Pix     []uint8
}

// New allocates a zeroed image, all pixels referencing index 0
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// ColorIndexAt returns the palette index at (x, y)
func (m *Image) ColorIndexAt(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// SetColorIndex stores a palette index at (x, y)
func (m *Image) SetColorIndex(x, y int, index uint8) {
	m.Pix[y*m.Width+x] = index
}

// Occupancy counts pixels per palette index into counts, which is cleared first
func (m *Image) Occupancy(counts *[PaletteEntries]uint32) {
	*counts = [PaletteEntries]uint32{}
	for _, idx := range m.Pix {
		counts[idx]++
	}
}

// Paletted converts to a standard library image sharing no memory with m
func (m *Image) Paletted() *image.Paletted {
	pal := make(color.Palette, PaletteEntries)
	for i, c := range m.Palette {
		pal[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	p := image.NewPaletted(image.Rect(0, 0, m.Width, m.Height), pal)
	copy(p.Pix, m.Pix)
	return p
}

// FormatError reports a stream that cannot hold the image its header describes
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bitmap: %s: %v", e.Reason, e.Err)
	}
	return "bitmap: " + e.Reason
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// RowPadding returns the number of bytes padding a row of the given width to
// a 4-byte boundary
func RowPadding(width int) int {
	return (4 - width%4) % 4
}

// Decode reads an indexed bitmap from r
func Decode(r io.Reader) (*Image, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, &FormatError{Reason: "short header", Err: err}
	}

	w := binary.LittleEndian.Uint32(header[widthOffset:])
	h := binary.LittleEndian.Uint32(header[heightOffset:])
	if w == 0 || h == 0 {
		return nil, &FormatError{Reason: fmt.Sprintf("empty image %dx%d", w, h)}
	}
	if uint64(w)*uint64(h) > maxPixels {
		return nil, &FormatError{Reason: fmt.Sprintf("image %dx%d too large", w, h)}
	}

	m := New(int(w), int(h))

	var raw [PaletteSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, &FormatError{Reason: "short palette", Err: err}
	}
	for i := range m.Palette {
		// BGRA on disk
		m.Palette[i] = color.RGBA{
			R: raw[i*4+2],
			G: raw[i*4+1],
			B: raw[i*4+0],
			A: raw[i*4+3],
		}
	}

	var pad [3]byte
	padding := RowPadding(m.Width)
	for i := 0; i < m.Height; i++ {
		// Rows are stored bottom-first
		row := m.Height - i - 1
		dst := m.Pix[row*m.Width : (row+1)*m.Width]
		if _, err := io.ReadFull(r, dst); err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("short row %d", i), Err: err}
		}
		if padding > 0 {
			if _, err := io.ReadFull(r, pad[:padding]); err != nil {
				return nil, &FormatError{Reason: fmt.Sprintf("short padding on row %d", i), Err: err}
			}
		}
	}

	return m, nil
}

// Load decodes the bitmap file at path
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
