package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Held controls, emitted with a press and a later release
	IntentMoveForward  // Up arrow
	IntentMoveBackward // Down arrow
	IntentTurnLeft     // Left arrow
	IntentTurnRight    // Right arrow

	// Camera
	IntentNudgeBack    // e
	IntentNudgeForward // r
	IntentZoomIn       // v
	IntentZoomOut      // b
	IntentResetView    // c

	// Render parameters
	IntentTogglePerspective // p
	IntentNextBackend       // g
	IntentFewerMipmaps      // h
	IntentMoreMipmaps       // j
	IntentFewerColors       // k
	IntentMoreColors        // l
	IntentNextMap           // m

	// Audio
	IntentToggleSound // n
)

// Phase tells whether a key went down or came back up
type Phase uint8

const (
	PhasePress Phase = iota
	PhaseRelease
)

// Intent is one parsed input action
type Intent struct {
	Type  IntentType
	Phase Phase
	Key   Key // Originating key, zero for resize
}

var intentNames = [...]string{
	IntentNone:              "none",
	IntentQuit:              "quit",
	IntentResize:            "resize",
	IntentMoveForward:       "move_forward",
	IntentMoveBackward:      "move_backward",
	IntentTurnLeft:          "turn_left",
	IntentTurnRight:         "turn_right",
	IntentNudgeBack:         "nudge_back",
	IntentNudgeForward:      "nudge_forward",
	IntentZoomIn:            "zoom_in",
	IntentZoomOut:           "zoom_out",
	IntentResetView:         "reset_view",
	IntentTogglePerspective: "toggle_perspective",
	IntentNextBackend:       "next_backend",
	IntentFewerMipmaps:      "fewer_mipmaps",
	IntentMoreMipmaps:       "more_mipmaps",
	IntentFewerColors:       "fewer_colors",
	IntentMoreColors:        "more_colors",
	IntentNextMap:           "next_map",
	IntentToggleSound:       "toggle_sound",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}
