package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentResize // Terminal resize event

	// Session control
	IntentStart       // s
	IntentTogglePause // Space, p
	IntentReset       // r
	IntentHint        // h

	// Preferences
	IntentToggleLight // l
	IntentToggleMusic // m

	// Pointer (mouse button 1)
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
	IntentPointerCancel // Esc during drag, focus loss

	// Name entry mode
	IntentNameEdit   // Rune or Backspace changed the buffer
	IntentNameSubmit // Enter
	IntentNameSkip   // Esc
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentResize:        "resize",
	IntentStart:         "start",
	IntentTogglePause:   "toggle-pause",
	IntentReset:         "reset",
	IntentHint:          "hint",
	IntentToggleLight:   "toggle-light",
	IntentToggleMusic:   "toggle-music",
	IntentPointerDown:   "pointer-down",
	IntentPointerMove:   "pointer-move",
	IntentPointerUp:     "pointer-up",
	IntentPointerCancel: "pointer-cancel",
	IntentNameEdit:      "name-edit",
	IntentNameSubmit:    "name-submit",
	IntentNameSkip:      "name-skip",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a parsed input action
type Intent struct {
	Type IntentType

	// Pointer payload, screen cells
	PointerID int
	X, Y      int

	// Name entry payload, the buffer after the edit or the submitted name
	Text string
}

// IsPointer reports whether the intent targets a pointer handler
func (in Intent) IsPointer() bool {
	switch in.Type {
	case IntentPointerDown, IntentPointerMove, IntentPointerUp, IntentPointerCancel:
		return true
	}
	return false
}
