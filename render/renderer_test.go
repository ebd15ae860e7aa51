package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term7/bitmap"
	"github.com/lixenwraith/term7/camera"
	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/texture"
	"github.com/lixenwraith/term7/vmath"
)

const eps = 1e-9

type draw struct {
	x, y int
	idx  uint8
}

// recorder is a glyph backend capturing every draw
type recorder struct {
	draws []draw
}

func (r *recorder) Name() string { return "recorder" }
func (r *recorder) Init(*bitmap.Palette) error { return nil }
func (r *recorder) Draw(x, y int, _ *bitmap.Palette, idx uint8) {
	r.draws = append(r.draws, draw{x, y, idx})
}

// frameRecorder is the unthrottled variant
type frameRecorder struct {
	recorder
	w, h int
}

func (f *frameRecorder) Size() (int, int) { return f.w, f.h }
func (f *frameRecorder) Flush(*bitmap.Palette) error { return nil }

func singleColorTexture(t *testing.T, idx uint8) *texture.Texture {
	t.Helper()
	base := bitmap.New(4, 4)
	base.Palette[idx] = color.RGBA{R: 90, G: 160, B: 30}
	for i := range base.Pix {
		base.Pix[i] = idx
	}
	tex, err := texture.New(base, 2, 1)
	require.NoError(t, err)
	return tex
}

func TestPerspectiveFactor(t *testing.T) {
	flat := PerspectiveFactor(3, 10, 5, false)
	assert.Equal(t, vmath.Vec2F{X: constants.FlatScale, Y: constants.FlatScale}, flat)

	// 3*10/5 = 6 exactly; depth of row 0 is 1/5
	pf := PerspectiveFactor(0, 10, 5, true)
	assert.InDelta(t, 10, pf.X, eps)
	assert.InDelta(t, (0.2+6)/0.2, pf.Y, eps)

	// 3*10/4 truncates to 7
	pf = PerspectiveFactor(3, 10, 4, true)
	assert.InDelta(t, 2.5, pf.X, eps)
	assert.InDelta(t, (1.0+7)/1.0, pf.Y, eps)
}

func TestPerspectiveFactorShrinksTowardViewer(t *testing.T) {
	prev := PerspectiveFactor(0, 80, 24, true)
	for row := 1; row < 24; row++ {
		pf := PerspectiveFactor(row, 80, 24, true)
		assert.Less(t, pf.X, prev.X, "row %d", row)
		assert.Less(t, pf.Y, prev.Y, "row %d", row)
		prev = pf
	}
}

func TestMipLevel(t *testing.T) {
	tests := []struct {
		name          string
		row, h, count int
		want          int
	}{
		{"bottom row finest", 7, 8, 4, 0},
		{"top row coarsest", 0, 8, 4, 3},
		{"middle", 3, 8, 4, 2},
		{"single level", 0, 8, 1, 0},
		{"row zero clamps", 0, 100, 8, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MipLevel(tt.row, tt.h, tt.count))
		})
	}
}

func TestViewMatrixPivotMapsToPosition(t *testing.T) {
	view := camera.View{
		Position:    vmath.Vec2F{X: 100, Y: 50},
		Orientation: 1.3,
		Scale:       vmath.Vec2F{X: 0.5, Y: 2},
	}
	w, h := 20, 10
	pivot := vmath.Vec2F{X: float64(w) * constants.PivotX, Y: float64(h) * constants.PivotY}

	got := ViewMatrix(view, 4, w, h, true).Apply(pivot)
	assert.InDelta(t, 100+pivot.X, got.X, eps)
	assert.InDelta(t, 50+pivot.Y, got.Y, eps)
}

func TestViewMatrixFlatScale(t *testing.T) {
	view := camera.View{Scale: vmath.Vec2F{X: 0.1, Y: 0.2}}
	m := ViewMatrix(view, 0, 10, 10, false)

	// One cell right of the pivot moves 0.1*30 texels
	p := m.Apply(vmath.Vec2F{X: 6, Y: 8})
	q := m.Apply(vmath.Vec2F{X: 5, Y: 8})
	assert.InDelta(t, 3, p.X-q.X, eps)
	assert.InDelta(t, 0, p.Y-q.Y, eps)
}

func TestSampleWrapsIntoPaddingBox(t *testing.T) {
	base := bitmap.New(16, 16)
	box := vmath.Box{Min: vmath.Vec2F{X: 8, Y: 8}, Size: 8}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			idx := uint8(1)
			if box.Contains(vmath.Vec2F{X: float64(x), Y: float64(y)}) {
				idx = 7
			}
			base.SetColorIndex(x, y, idx)
		}
	}
	tex, err := texture.New(base, texture.MaxColors, 1)
	require.NoError(t, err)
	lvl := tex.Level(0)

	outside := []vmath.Vec2F{
		{X: -1, Y: 3},
		{X: 16, Y: 3},
		{X: 3, Y: -1},
		{X: 3, Y: 16},
		{X: -1, Y: -1},
		{X: 16.5, Y: 16.5},
	}
	for _, p := range outside {
		wrapped := box.Wrap(p)
		assert.True(t, box.Contains(wrapped), "%v wrapped to %v", p, wrapped)
		assert.Equal(t, uint8(7), Sample(lvl, box, 16, 16, p), "%v", p)
	}

	// Inside the image no wrap happens
	assert.Equal(t, uint8(1), Sample(lvl, box, 16, 16, vmath.Vec2F{X: 0.5, Y: 0.5}))
}

func TestSampleDividesByRatio(t *testing.T) {
	base := bitmap.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x >= 4 {
				base.SetColorIndex(x, y, 2)
			}
		}
	}
	base.Palette[2] = color.RGBA{R: 255, G: 255, B: 255}
	tex, err := texture.New(base, texture.MaxColors, 2)
	require.NoError(t, err)

	lvl := tex.Level(1)
	require.Equal(t, 2, lvl.Ratio)
	box := vmath.Box{Size: 4}
	assert.Equal(t, uint8(0), Sample(lvl, box, 8, 8, vmath.Vec2F{X: 3.9, Y: 1}))
	assert.Equal(t, uint8(2), Sample(lvl, box, 8, 8, vmath.Vec2F{X: 4.1, Y: 1}))
}

func TestRenderSingleColorThrottled(t *testing.T) {
	const idx = 5
	tex := singleColorTexture(t, idx)
	box := vmath.Box{Size: 4}

	r := NewRenderer()
	r.Perspective = false
	rec := &recorder{}

	var visibleFrames []uint64
	for f := 0; f < constants.ThrottleModulus; f++ {
		frame := r.Frame()
		before := len(rec.draws)
		n := r.Render(tex, camera.DefaultView(), box, 10, 1, rec)
		assert.Equal(t, len(rec.draws)-before, n)
		if n > 0 {
			visibleFrames = append(visibleFrames, frame)
			assert.Equal(t, 10, n, "a visible frame draws the full row")
		}
	}

	assert.Equal(t, []uint64{constants.ThrottleModulus - idx}, visibleFrames)
	for _, d := range rec.draws {
		assert.Equal(t, uint8(idx), d.idx)
		assert.Equal(t, 0, d.y)
	}
	assert.Equal(t, uint64(constants.ThrottleModulus), r.Frame())
}

func TestRenderFrameBackendUnthrottled(t *testing.T) {
	tex := singleColorTexture(t, 5)
	r := NewRenderer()
	fr := &frameRecorder{w: 10, h: 1}

	for f := 0; f < 3; f++ {
		n := r.Render(tex, camera.DefaultView(), vmath.Box{Size: 4}, 10, 1, fr)
		assert.Equal(t, 10, n)
	}
	assert.Len(t, fr.draws, 30)
}

func TestRenderEmptyTarget(t *testing.T) {
	tex := singleColorTexture(t, 5)
	r := NewRenderer()
	assert.Zero(t, r.Render(tex, camera.DefaultView(), vmath.Box{Size: 4}, 0, 0, &recorder{}))
	assert.Equal(t, uint64(1), r.Frame())
}

func TestRenderIntoSimulationScreen(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(12, 4)

	tex := singleColorTexture(t, 8)
	b := NewMonochrome(sim)
	r := NewRenderer()
	r.Perspective = false

	// frame 5 is the visible one for index 8
	for f := 0; f < 6; f++ {
		r.Render(tex, camera.DefaultView(), vmath.Box{Size: 4}, 11, 2, b)
	}

	want := Glyph(90, 160, 30)
	for y := 0; y < 2; y++ {
		for x := 0; x < 11; x++ {
			got, _, _, _ := sim.GetContent(x, y)
			assert.Equal(t, want, got, "cell (%d,%d)", x, y)
		}
	}
	edge, _, _, _ := sim.GetContent(11, 0)
	assert.NotEqual(t, want, edge)
}

func TestTargetSize(t *testing.T) {
	w, h := TargetSize(&recorder{}, 80, 24)
	assert.Equal(t, 79, w)
	assert.Equal(t, 22, h)

	w, h = TargetSize(&recorder{}, 1, 1)
	assert.Zero(t, w)
	assert.Zero(t, h)

	w, h = TargetSize(NewPixel(nil), 80, 24)
	assert.Equal(t, constants.PixelBufferWidth, w)
	assert.Equal(t, constants.PixelBufferHeight, h)
}
