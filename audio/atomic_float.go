package audio

import (
	"math"
	"sync/atomic"
)

// atomicFloat shares a float64 between the game loop and the audio callback
// Zero value is ready to use (represents 0.0)
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *atomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}
