package constants

import "time"

// Perspective Render Constants
const (
	// PivotX and PivotY place the rotation/zoom pivot as a fraction of the view
	// Near bottom-center, where the viewer stands
	PivotX = 0.5
	PivotY = 0.8

	// FlatScale replaces both perspective factors when perspective is off
	FlatScale = 30.0

	// DepthCompression weighs the vertical compression of far rows
	DepthCompression = 3.0

	// ThrottleModulus gates glyph-cell draws to (index+frame)%ThrottleModulus == 0
	ThrottleModulus = 13
)

// Texture Defaults
const (
	// DefaultMipmapsGlyph is the pyramid depth for cell backends
	DefaultMipmapsGlyph = 5
	// DefaultMipmapsPixel is the pyramid depth for the pixel backend
	DefaultMipmapsPixel = 1
)

// Pixel Backend Constants
const (
	// PixelBufferWidth and PixelBufferHeight fix the offscreen sixel buffer size
	PixelBufferWidth  = 640
	PixelBufferHeight = 360
)

// Loop Timing Constants
const (
	// FrameSleep caps the loop rate
	FrameSleep = 5 * time.Millisecond
)
