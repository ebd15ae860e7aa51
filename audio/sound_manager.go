// Package audio plays an engine drone whose pitch follows camera speed.
// Audio is optional: when no output device is available the manager reports
// the error once and every later call is a no-op.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term7/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager owns the speaker and the drone
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *EngineGenerator
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager with the drone paused
func NewSoundManager() *SoundManager {
	engine := NewEngineGenerator(sampleRate)
	return &SoundManager{
		mixer:  &beep.Mixer{},
		engine: engine,
		ctrl:   &beep.Ctrl{Streamer: engine, Paused: true},
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	sm.mixer.Add(sm.ctrl)
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetEnabled starts or pauses the drone
func (sm *SoundManager) SetEnabled(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ctrl.Paused = !on
	speaker.Unlock()
}

// Enabled reports whether the drone is audible
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.ctrl.Paused
}

// SetSpeed maps a speed fraction onto the drone pitch
// Lock-free; safe to call every frame
func (sm *SoundManager) SetSpeed(fraction float64) {
	sm.engine.SetThrottle(fraction)
}

// Cleanup stops the drone and closes the audio device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	speaker.Unlock()

	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}
