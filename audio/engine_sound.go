package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/term7/constants"
)

// EngineGenerator is an endless engine drone whose pitch follows the
// throttle level set from the game loop
type EngineGenerator struct {
	sr       beep.SampleRate
	throttle atomicFloat // 0..1, written by SetThrottle

	phase float64 // radians, audio goroutine only
	freq  float64 // current smoothed frequency
}

// NewEngineGenerator creates an idling drone
func NewEngineGenerator(sr beep.SampleRate) *EngineGenerator {
	return &EngineGenerator{
		sr:   sr,
		freq: constants.EngineIdleHz,
	}
}

// SetThrottle sets the target pitch as a fraction of full speed
// Values are clamped to [0, 1]
func (g *EngineGenerator) SetThrottle(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	g.throttle.Store(v)
}

// Throttle returns the last throttle set
func (g *EngineGenerator) Throttle() float64 {
	return g.throttle.Load()
}

// TargetHz returns the frequency the drone is gliding toward
func (g *EngineGenerator) TargetHz() float64 {
	return constants.EngineIdleHz + (constants.EngineTopHz-constants.EngineIdleHz)*g.throttle.Load()
}

func (g *EngineGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	target := g.TargetHz()
	// Glide over roughly 50ms so speed changes do not click
	glide := 1 - math.Exp(-1/(0.05*float64(g.sr)))

	for i := range samples {
		g.freq += (target - g.freq) * glide
		g.phase += 2 * math.Pi * g.freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Fundamental plus a rough second harmonic
		sample := math.Sin(g.phase) + 0.4*math.Sin(2*g.phase) + 0.2*math.Sin(3*g.phase)
		sample *= constants.EngineVolume / 1.6

		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *EngineGenerator) Err() error {
	return nil
}
