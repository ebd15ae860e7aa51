package vmath

import "math"

// Vec2F is a float64 2D vector, texture space or screen space
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FHeading returns the unit vector for an orientation in radians
func V2FHeading(angle float64) Vec2F {
	return Vec2F{math.Cos(angle), math.Sin(angle)}
}
