package input

import (
	"sort"
	"time"

	"github.com/lixenwraith/term7/constants"
)

// Tracker synthesizes key releases from a press-only event stream
// Terminals report a key once, then auto-repeat it after a delay; a key is
// considered released once no repeat has arrived for long enough
type Tracker struct {
	// ReleaseAfterPress applies to a key seen only once
	ReleaseAfterPress time.Duration
	// ReleaseAfterRepeat applies once auto-repeat has started
	ReleaseAfterRepeat time.Duration

	held map[Key]*heldKey
}

type heldKey struct {
	count int
	last  time.Time
}

// NewTracker creates a tracker with the default thresholds
func NewTracker() *Tracker {
	return &Tracker{
		ReleaseAfterPress:  constants.ReleaseAfterPress,
		ReleaseAfterRepeat: constants.ReleaseAfterRepeat,
		held:               make(map[Key]*heldKey),
	}
}

// Press records k at now and reports whether this is a new press
// Repeats of a held key return false
func (t *Tracker) Press(k Key, now time.Time) bool {
	h, ok := t.held[k]
	if !ok {
		t.held[k] = &heldKey{count: 1, last: now}
		return true
	}
	h.count++
	h.last = now
	return false
}

// Expire removes and returns every key that has been quiet past its threshold
// Result is ordered by code then rune so callers see a stable sequence
func (t *Tracker) Expire(now time.Time) []Key {
	var released []Key
	for k, h := range t.held {
		limit := t.ReleaseAfterRepeat
		if h.count == 1 {
			limit = t.ReleaseAfterPress
		}
		if now.Sub(h.last) > limit {
			released = append(released, k)
			delete(t.held, k)
		}
	}

	sort.Slice(released, func(i, j int) bool {
		if released[i].Code != released[j].Code {
			return released[i].Code < released[j].Code
		}
		return released[i].Rune < released[j].Rune
	})
	return released
}

// Held reports whether k is currently considered down
func (t *Tracker) Held(k Key) bool {
	_, ok := t.held[k]
	return ok
}

// Reset forgets every held key without emitting releases
func (t *Tracker) Reset() {
	clear(t.held)
}
