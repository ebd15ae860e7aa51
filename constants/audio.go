package constants

import "time"

// Engine Sound Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EngineIdleHz is the drone pitch at rest
	EngineIdleHz = 55.0
	// EngineTopHz is the drone pitch at MoveMaxSpeed
	EngineTopHz = 180.0
	// EngineVolume is the peak amplitude of the drone
	EngineVolume = 0.12
)
