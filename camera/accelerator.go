// Package camera integrates held-key input into the view the renderer samples
// from: position, orientation and zoom, with acceleration and deceleration.
package camera

import "time"

// Accelerator turns a held/released control into a velocity that ramps toward
// Max while active and bleeds off toward zero once released
type Accelerator struct {
	Acceleration float64 // units/s² while held
	Deceleration float64 // units/s² after release
	Max          float64 // velocity magnitude cap

	velocity float64
	last     time.Time
	active   bool
	reverse  bool
}

// NewAccelerator creates an idle accelerator
func NewAccelerator(acceleration, deceleration, max float64) *Accelerator {
	return &Accelerator{
		Acceleration: acceleration,
		Deceleration: deceleration,
		Max:          max,
	}
}

// Press starts accelerating, backwards when reverse is set
func (a *Accelerator) Press(reverse bool) {
	a.active = true
	a.reverse = reverse
}

// Release lets the velocity decay
func (a *Accelerator) Release() {
	a.active = false
}

// Active reports whether the control is held
func (a *Accelerator) Active() bool {
	return a.active
}

// Velocity returns the current signed velocity
func (a *Accelerator) Velocity() float64 {
	return a.velocity
}

// Reset zeroes velocity and forgets the last step time
func (a *Accelerator) Reset() {
	a.velocity = 0
	a.active = false
	a.reverse = false
	a.last = time.Time{}
}

// Step advances to now and returns the distance covered since the previous
// step at the velocity held during that interval
// The first call only anchors the clock and returns 0
func (a *Accelerator) Step(now time.Time) float64 {
	if a.last.IsZero() {
		a.last = now
	}

	dt := now.Sub(a.last).Seconds()
	a.last = now
	if dt <= 0 {
		return 0
	}

	distance := a.velocity * dt

	dir := 1.0
	if a.reverse {
		dir = -1
	}

	if a.active {
		a.velocity += dir * a.Acceleration * dt
		if dir*a.velocity > a.Max {
			a.velocity = dir * a.Max
		}
	} else if a.velocity != 0 {
		a.velocity -= dir * a.Deceleration * dt
		// Stop at zero instead of coasting backwards
		if dir*a.velocity < 0 {
			a.velocity = 0
		}
	}

	return distance
}
