package engine

import (
	"sync"
	"time"
)

// Clock supplies wall time to the physics and the key release timers
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockClock is a manually advanced clock for tests and replays
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a clock frozen at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
