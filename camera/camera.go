package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/vmath"
)

// View is the read-only camera state handed to the renderer each frame
type View struct {
	Position    vmath.Vec2F // texture space
	Orientation float64     // radians
	Scale       vmath.Vec2F
}

// DefaultView returns the starting camera placement
func DefaultView() View {
	return View{
		Position: vmath.Vec2F{X: constants.DefaultPositionX, Y: constants.DefaultPositionY},
		Scale:    vmath.Vec2F{X: constants.DefaultScaleX, Y: constants.DefaultScaleY},
	}
}

// Camera owns the view and the two accelerators driving it
type Camera struct {
	View View
	Move *Accelerator
	Turn *Accelerator
}

// New creates a camera at the default view with the tuned accelerators
func New() *Camera {
	return &Camera{
		View: DefaultView(),
		Move: NewAccelerator(constants.MoveAcceleration, constants.MoveDeceleration, constants.MoveMaxSpeed),
		Turn: NewAccelerator(constants.TurnAcceleration, constants.TurnDeceleration, constants.TurnMaxSpeed),
	}
}

// Step integrates both accelerators up to now
// Forward motion is toward -Y in texture space at orientation 0
func (c *Camera) Step(now time.Time) {
	d := c.Move.Step(now)
	sin, cos := math.Sincos(c.View.Orientation)
	c.View.Position.Y -= d * cos
	c.View.Position.X += d * sin

	c.View.Orientation += c.Turn.Step(now)
}

// Nudge moves the camera by distance along the orientation axis
func (c *Camera) Nudge(distance float64) {
	h := vmath.V2FHeading(c.View.Orientation)
	c.View.Position = vmath.V2FAdd(c.View.Position, vmath.V2FScale(h, distance))
}

// Zoom multiplies both scale axes
func (c *Camera) Zoom(factor float64) {
	c.View.Scale = vmath.V2FScale(c.View.Scale, factor)
}

// Reset restores the default position, scale and orientation
// Velocities are kept, as with a teleport
func (c *Camera) Reset() {
	c.View = DefaultView()
}
