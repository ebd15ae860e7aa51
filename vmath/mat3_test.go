package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestMat3Identity(t *testing.T) {
	v := Identity().Apply(Vec2F{3, -4})
	assert.InDelta(t, 3, v.X, eps)
	assert.InDelta(t, -4, v.Y, eps)
}

func TestMat3ComposeOrder(t *testing.T) {
	// Translate after scale: scale applies to the point first
	m := Identity().Translate(10, 20).Scale(2, 3)
	v := m.Apply(Vec2F{1, 1})
	assert.InDelta(t, 12, v.X, eps)
	assert.InDelta(t, 23, v.Y, eps)

	// Reverse order scales the translation too
	m = Identity().Scale(2, 3).Translate(10, 20)
	v = m.Apply(Vec2F{1, 1})
	assert.InDelta(t, 22, v.X, eps)
	assert.InDelta(t, 63, v.Y, eps)
}

func TestMat3Rotate(t *testing.T) {
	v := Identity().Rotate(math.Pi / 2).Apply(Vec2F{1, 0})
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, 1, v.Y, eps)
}

func TestMat3PivotRotation(t *testing.T) {
	pivot := Vec2F{5, 5}
	m := Identity().
		Translate(pivot.X, pivot.Y).
		Rotate(math.Pi).
		Translate(-pivot.X, -pivot.Y)

	// The pivot is a fixed point
	p := m.Apply(pivot)
	assert.InDelta(t, 5, p.X, eps)
	assert.InDelta(t, 5, p.Y, eps)

	v := m.Apply(Vec2F{6, 5})
	assert.InDelta(t, 4, v.X, eps)
	assert.InDelta(t, 5, v.Y, eps)
}

func TestWrapRepeat(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		min, max float64
		want     float64
	}{
		{"inside", 3.5, 0, 7, 3.5},
		{"at min", 0, 0, 7, 0},
		{"at max wraps to min", 7, 0, 7, 0},
		{"one past max", 8, 0, 7, 1},
		{"one below min", -1, 0, 7, 6},
		{"far negative", -15, 0, 7, 6},
		{"offset box", 1015, 1016, 1023, 1022},
		{"offset box above", 1024, 1016, 1023, 1017},
		{"degenerate", 42, 3, 3, 3},
		{"nan", math.NaN(), 2, 9, 2},
		{"inf", math.Inf(-1), 2, 9, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WrapRepeat(tt.v, tt.min, tt.max), eps)
		})
	}
}

func TestWrapRepeatTinyNegative(t *testing.T) {
	v := WrapRepeat(-1e-18, 0, 7)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 7.0)
}

func TestBoxWrapLandsInside(t *testing.T) {
	box := Box{Min: Vec2F{32, 40}, Size: 8}
	for _, v := range []Vec2F{{-1, 10}, {10, -1}, {512, 10}, {10, 512}, {-1, -1}, {1e6, -1e6}} {
		w := box.Wrap(v)
		assert.True(t, box.Contains(w), "%v wrapped to %v", v, w)
	}
}

func TestBoxWithin(t *testing.T) {
	assert.True(t, Box{Min: Vec2F{0, 1016}, Size: 8}.Within(1024, 1024))
	assert.False(t, Box{Min: Vec2F{0, 1017}, Size: 8}.Within(1024, 1024))
	assert.False(t, Box{Min: Vec2F{-1, 0}, Size: 8}.Within(1024, 1024))
	assert.False(t, Box{Size: 1}.Within(1024, 1024))
}

func TestV2FHeading(t *testing.T) {
	h := V2FHeading(0)
	assert.InDelta(t, 1, h.X, eps)
	assert.InDelta(t, 0, h.Y, eps)
	assert.InDelta(t, 1, V2FMag(V2FHeading(1.234)), eps)
	assert.Equal(t, Vec2F{4, 6}, V2FAdd(Vec2F{1, 2}, Vec2F{3, 4}))
	assert.Equal(t, Vec2F{-2, -2}, V2FSub(Vec2F{1, 2}, Vec2F{3, 4}))
	assert.Equal(t, Vec2F{2, 4}, V2FScale(Vec2F{1, 2}, 2))
}
