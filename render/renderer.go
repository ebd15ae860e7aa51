// Package render projects a mipmapped texture onto a terminal as a tilted
// ground plane, one affine transform per scanline, and converts the sampled
// palette indices into cells through interchangeable color backends.
package render

import (
	"math"

	"github.com/lixenwraith/term7/camera"
	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/texture"
	"github.com/lixenwraith/term7/vmath"
)

// Renderer draws frames and counts them for the draw throttle
type Renderer struct {
	Perspective bool

	frame uint64
}

// NewRenderer creates a renderer with perspective enabled
func NewRenderer() *Renderer {
	return &Renderer{Perspective: true}
}

// Frame returns the number of frames rendered so far
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// PerspectiveFactor returns the per-row scale multiplier for row of a w x h view
// Near rows (large row) get a smaller factor, so they sample a narrower,
// more magnified strip of the texture
func PerspectiveFactor(row, w, h int, perspective bool) vmath.Vec2F {
	if !perspective {
		return vmath.Vec2F{X: constants.FlatScale, Y: constants.FlatScale}
	}
	depth := float64(row+1) / float64(h)
	// Integer division is part of the tuned curve
	compression := float64(int(constants.DepthCompression) * w / h)
	return vmath.Vec2F{
		X: float64(w) / float64(row+1),
		Y: (depth + compression) / depth,
	}
}

// ViewMatrix maps screen cells of row into texture space
// Composition: camera position, pivot, orientation, scale, back from pivot
func ViewMatrix(view camera.View, row, w, h int, perspective bool) vmath.Mat3 {
	cx := float64(w) * constants.PivotX
	cy := float64(h) * constants.PivotY
	pf := PerspectiveFactor(row, w, h, perspective)

	return vmath.Identity().
		Translate(view.Position.X, view.Position.Y).
		Translate(cx, cy).
		Rotate(view.Orientation).
		Scale(view.Scale.X*pf.X, view.Scale.Y*pf.Y).
		Translate(-cx, -cy)
}

// MipLevel picks the pyramid level for row: top rows get the coarsest level,
// the bottom row level 0
func MipLevel(row, h, count int) int {
	idx := count - int(math.Round(float64(row+1)/float64(h)*float64(count)))
	if idx >= count {
		idx = count - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Sample reads the palette index at texture-space point p from lvl
// Points outside the w x h base image are first wrapped into box
func Sample(lvl *texture.Level, box vmath.Box, w, h int, p vmath.Vec2F) uint8 {
	if !(p.X >= 0 && p.X < float64(w) && p.Y >= 0 && p.Y < float64(h)) {
		p = box.Wrap(p)
	}

	ratio := float64(lvl.Ratio)
	img := lvl.Image
	x := clamp(int(p.X/ratio), img.Width-1)
	y := clamp(int(p.Y/ratio), img.Height-1)
	return img.Pix[y*img.Width+x]
}

// Render draws one w x h frame of tex seen from view into b and returns the
// number of cells forwarded to the backend
// Glyph backends only receive cells where (index+frame) % ThrottleModulus is 0
func (r *Renderer) Render(tex *texture.Texture, view camera.View, box vmath.Box, w, h int, b Backend) int {
	_, unthrottled := b.(FrameBackend)
	bw, bh := tex.Size()
	pal := tex.Palette()
	drawn := 0

	for i := 0; i < h; i++ {
		m := ViewMatrix(view, i, w, h, r.Perspective)
		lvl := tex.Level(MipLevel(i, h, tex.Count()))

		for j := 0; j < w; j++ {
			p := m.Apply(vmath.Vec2F{X: float64(j), Y: float64(i)})
			idx := Sample(lvl, box, bw, bh, p)

			if !unthrottled && (uint64(idx)+r.frame)%constants.ThrottleModulus != 0 {
				continue
			}
			b.Draw(j, i, pal, idx)
			drawn++
		}
	}

	r.frame++
	return drawn
}

// TargetSize returns the render resolution for b on a screenW x screenH terminal
func TargetSize(b Backend, screenW, screenH int) (int, int) {
	if fb, ok := b.(FrameBackend); ok {
		return fb.Size()
	}
	return max(screenW-constants.BorderColumns, 0), max(screenH-constants.BorderRows, 0)
}

// clamp folds v into [0, hi]
// The padding box is validated against the base image; this only absorbs
// float rounding at the far edge
func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
