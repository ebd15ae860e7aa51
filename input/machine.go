package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents
// Every bound key yields one press intent when it goes down and one release
// intent when the tracker decides it came back up; auto-repeats are swallowed
type Machine struct {
	keyTable *KeyTable
	tracker  *Tracker
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		tracker:  NewTracker(),
	}
}

// NewMachineWith creates a machine from explicit parts, nil picks the default
func NewMachineWith(kt *KeyTable, tr *Tracker) *Machine {
	m := NewMachine()
	if kt != nil {
		m.keyTable = kt
	}
	if tr != nil {
		m.tracker = tr
	}
	return m
}

// Process parses a terminal event received at now
// Returns nil for unbound keys, repeats and events of no interest
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		k := KeyFromEvent(ev)
		it := m.keyTable.Lookup(k)
		if it == IntentNone {
			return nil
		}
		if !m.tracker.Press(k, now) {
			return nil
		}
		return &Intent{Type: it, Phase: PhasePress, Key: k}
	}
	return nil
}

// Expire returns release intents for every key that went quiet by now
func (m *Machine) Expire(now time.Time) []Intent {
	keys := m.tracker.Expire(now)
	if len(keys) == 0 {
		return nil
	}
	intents := make([]Intent, 0, len(keys))
	for _, k := range keys {
		intents = append(intents, Intent{Type: m.keyTable.Lookup(k), Phase: PhaseRelease, Key: k})
	}
	return intents
}

// Reset drops all held key state
func (m *Machine) Reset() {
	m.tracker.Reset()
}
