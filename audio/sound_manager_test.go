package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/term7/constants"
)

func TestEngineGeneratorThrottleClamp(t *testing.T) {
	g := NewEngineGenerator(beep.SampleRate(44100))

	g.SetThrottle(-3)
	assert.Zero(t, g.Throttle())
	assert.Equal(t, constants.EngineIdleHz, g.TargetHz())

	g.SetThrottle(7)
	assert.Equal(t, 1.0, g.Throttle())
	assert.Equal(t, constants.EngineTopHz, g.TargetHz())

	g.SetThrottle(math.NaN())
	assert.Zero(t, g.Throttle())
}

func TestEngineGeneratorStream(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewEngineGenerator(rate)

	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	assert.True(t, ok, "drone never ends")
	assert.Equal(t, len(samples), n)
	assert.NoError(t, g.Err())

	nonZero := false
	for _, s := range samples {
		assert.Equal(t, s[0], s[1], "mono drone")
		assert.LessOrEqual(t, math.Abs(s[0]), constants.EngineVolume+1e-9)
		if s[0] != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero)
}

func TestEngineGeneratorGlidesTowardTarget(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewEngineGenerator(rate)
	g.SetThrottle(1)

	buf := make([][2]float64, rate.N(constants.AudioBufferDuration))
	prev := g.freq
	for i := 0; i < 10; i++ {
		g.Stream(buf)
		assert.Greater(t, g.freq, prev)
		assert.LessOrEqual(t, g.freq, constants.EngineTopHz)
		prev = g.freq
	}
	assert.InDelta(t, constants.EngineTopHz, g.freq, 1)
}

func TestSoundManagerUninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager()

	sm.SetEnabled(true)
	assert.False(t, sm.Enabled())

	sm.SetSpeed(0.5)
	assert.Equal(t, 0.5, sm.engine.Throttle())

	sm.Cleanup()
}
