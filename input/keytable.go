package input

import "github.com/gdamore/tcell/v2"

// Key identifies a physical key as reported by tcell
// Rune is set only when Code is tcell.KeyRune
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyFromEvent normalizes a tcell key event into a Key
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Rune: ev.Rune()}
	}
	return Key{Code: ev.Key()}
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyUp:    IntentMoveForward,
			tcell.KeyDown:  IntentMoveBackward,
			tcell.KeyLeft:  IntentTurnLeft,
			tcell.KeyRight: IntentTurnRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'e': IntentNudgeBack,
			'r': IntentNudgeForward,
			'v': IntentZoomIn,
			'b': IntentZoomOut,
			'c': IntentResetView,
			'p': IntentTogglePerspective,
			'g': IntentNextBackend,
			'h': IntentFewerMipmaps,
			'j': IntentMoreMipmaps,
			'k': IntentFewerColors,
			'l': IntentMoreColors,
			'm': IntentNextMap,
			'n': IntentToggleSound,
		},
	}
}

// Lookup returns the intent bound to k, IntentNone when unbound
func (kt *KeyTable) Lookup(k Key) IntentType {
	if k.Code == tcell.KeyRune {
		return kt.Runes[k.Rune]
	}
	return kt.SpecialKeys[k.Code]
}
