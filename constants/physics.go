package constants

import "math"

// Camera Motion Constants
const (
	// MoveAcceleration is forward/backward acceleration in texels/s² while a key is held
	MoveAcceleration = 600.0
	// MoveDeceleration is the braking rate in texels/s² after release
	MoveDeceleration = 150.0
	// MoveMaxSpeed caps forward/backward speed in texels/s
	MoveMaxSpeed = 150.0

	// TurnAcceleration is angular acceleration in rad/s²
	TurnAcceleration = math.Pi * 0.3
	// TurnDeceleration is angular braking in rad/s², high so turning stops almost at once
	TurnDeceleration = math.Pi * 8
	// TurnMaxSpeed caps angular speed in rad/s
	TurnMaxSpeed = math.Pi * 0.8

	// NudgeDistance is the step for the single-press nudge keys
	NudgeDistance = 5.0
	// ZoomFactor is the per-press scale multiplier
	ZoomFactor = 1.1
)

// Default camera placement
const (
	DefaultPositionX = 860.0
	DefaultPositionY = 758.0

	// Cells are about twice as tall as wide, so Y is stretched
	DefaultScaleX = 1 * 0.08
	DefaultScaleY = 1.8 * 0.08
)
