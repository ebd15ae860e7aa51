package camera

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/term7/constants"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAcceleratorFirstStepAnchors(t *testing.T) {
	a := NewAccelerator(10, 5, 100)
	a.Press(false)
	assert.Zero(t, a.Step(epoch))
	assert.Zero(t, a.Velocity())
}

func TestAcceleratorRampAndCap(t *testing.T) {
	a := NewAccelerator(10, 5, 25)
	a.Step(epoch)
	a.Press(false)

	now := epoch
	tests := []struct {
		name         string
		wantDistance float64
		wantVelocity float64
	}{
		// Distance uses the velocity from before the interval
		{"first second", 0, 10},
		{"second second", 10, 20},
		{"capped", 20, 25},
		{"cruise", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = now.Add(time.Second)
			assert.InDelta(t, tt.wantDistance, a.Step(now), 1e-9)
			assert.InDelta(t, tt.wantVelocity, a.Velocity(), 1e-9)
		})
	}
}

func TestAcceleratorReverse(t *testing.T) {
	a := NewAccelerator(10, 5, 15)
	a.Step(epoch)
	a.Press(true)

	a.Step(epoch.Add(time.Second))
	assert.InDelta(t, -10, a.Velocity(), 1e-9)
	a.Step(epoch.Add(2 * time.Second))
	assert.InDelta(t, -15, a.Velocity(), 1e-9)

	a.Release()
	a.Step(epoch.Add(3 * time.Second))
	assert.InDelta(t, -10, a.Velocity(), 1e-9)
}

func TestAcceleratorDecaysToZero(t *testing.T) {
	a := NewAccelerator(10, 4, 100)
	a.Step(epoch)
	a.Press(false)
	a.Step(epoch.Add(time.Second))
	a.Release()
	assert.False(t, a.Active())

	a.Step(epoch.Add(2 * time.Second))
	assert.InDelta(t, 6, a.Velocity(), 1e-9)

	// Long gap: must clamp at zero, not go negative
	a.Step(epoch.Add(10 * time.Second))
	assert.Zero(t, a.Velocity())

	assert.Zero(t, a.Step(epoch.Add(11*time.Second)))
}

func TestAcceleratorClockGoingBackwards(t *testing.T) {
	a := NewAccelerator(10, 4, 100)
	a.Step(epoch)
	a.Press(false)
	assert.Zero(t, a.Step(epoch.Add(-time.Second)))
	assert.Zero(t, a.Velocity())
}

func TestAcceleratorReset(t *testing.T) {
	a := NewAccelerator(10, 4, 100)
	a.Step(epoch)
	a.Press(true)
	a.Step(epoch.Add(time.Second))
	a.Reset()

	assert.Zero(t, a.Velocity())
	assert.False(t, a.Active())
	assert.Zero(t, a.Step(epoch.Add(5*time.Second)))
}

func TestCameraMovesAlongOrientation(t *testing.T) {
	c := New()
	start := c.View.Position

	c.Step(epoch)
	c.Move.Press(false)
	c.Step(epoch.Add(100 * time.Millisecond))
	c.Step(epoch.Add(200 * time.Millisecond))

	// Orientation 0 moves toward -Y
	assert.InDelta(t, start.X, c.View.Position.X, 1e-9)
	assert.Less(t, c.View.Position.Y, start.Y)
}

func TestCameraTurn(t *testing.T) {
	c := New()
	c.Step(epoch)
	c.Turn.Press(false)
	c.Step(epoch.Add(time.Second))
	c.Step(epoch.Add(2 * time.Second))

	assert.InDelta(t, constants.TurnAcceleration, c.View.Orientation, 1e-9)
}

func TestCameraNudgeZoomReset(t *testing.T) {
	c := New()
	c.View.Orientation = math.Pi / 2

	c.Nudge(constants.NudgeDistance)
	assert.InDelta(t, constants.DefaultPositionX, c.View.Position.X, 1e-9)
	assert.InDelta(t, constants.DefaultPositionY+5, c.View.Position.Y, 1e-9)

	c.Zoom(constants.ZoomFactor)
	assert.InDelta(t, constants.DefaultScaleX*1.1, c.View.Scale.X, 1e-12)
	assert.InDelta(t, constants.DefaultScaleY*1.1, c.View.Scale.Y, 1e-12)

	c.Reset()
	assert.Equal(t, DefaultView(), c.View)
}
