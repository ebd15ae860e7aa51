package vmath

import "math"

// WrapRepeat folds v into [min, max) with period max-min, anchored at min
// A degenerate range (max <= min) or a non-finite v collapses to min
func WrapRepeat(v, min, max float64) float64 {
	period := max - min
	if !(period > 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	v = math.Mod(v-min, period) + min
	if v < min {
		v += period
	}
	// Mod of a tiny negative can round up to exactly period
	if v >= max {
		v = min
	}
	return v
}

// Box is a square texture-space region used as tiling filler off the map
type Box struct {
	Min  Vec2F
	Size float64
}

// Max returns the far corner used as the exclusive wrap bound
// The wrap period is Size-1, matching the map catalog's padding boxes
func (b Box) Max() Vec2F {
	return Vec2F{b.Min.X + b.Size - 1, b.Min.Y + b.Size - 1}
}

// Wrap folds both axes of v into the box independently
func (b Box) Wrap(v Vec2F) Vec2F {
	max := b.Max()
	return Vec2F{
		X: WrapRepeat(v.X, b.Min.X, max.X),
		Y: WrapRepeat(v.Y, b.Min.Y, max.Y),
	}
}

// Contains reports whether v lies in the half-open wrap range of the box
func (b Box) Contains(v Vec2F) bool {
	max := b.Max()
	return v.X >= b.Min.X && v.X < max.X && v.Y >= b.Min.Y && v.Y < max.Y
}

// Within reports whether the whole box fits inside a w x h image
func (b Box) Within(w, h int) bool {
	return b.Size >= 2 && b.Min.X >= 0 && b.Min.Y >= 0 &&
		b.Min.X+b.Size <= float64(w) && b.Min.Y+b.Size <= float64(h)
}
