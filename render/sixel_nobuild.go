//go:build nosixel

package render

// SixelBuild reports whether this binary was built with sixel output
const SixelBuild = false
