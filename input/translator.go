package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/apple-ten/constants"
	"github.com/lixenwraith/apple-ten/engine"
)

// MousePointerID identifies the terminal mouse; tcell reports a single pointer
const MousePointerID = 1

// InputMode selects how key events are interpreted
type InputMode uint8

const (
	ModeGame InputMode = iota
	ModeNameEntry
)

// Translator parses tcell events into intents
type Translator struct {
	mode     InputMode
	keyTable *KeyTable

	// Button 1 held since the last press
	pressed bool

	name []rune
}

// NewTranslator creates a translator in game mode
func NewTranslator() *Translator {
	return &Translator{
		mode:     ModeGame,
		keyTable: DefaultKeyTable(),
		name:     make([]rune, 0, constants.MaxNameLength),
	}
}

// Mode returns the active input mode
func (t *Translator) Mode() InputMode { return t.mode }

// Dragging reports whether button 1 is held
func (t *Translator) Dragging() bool { return t.pressed }

// BeginNameEntry switches to name entry with an empty buffer
// A held button is dropped; the caller cancels the session drag
func (t *Translator) BeginNameEntry() {
	t.mode = ModeNameEntry
	t.pressed = false
	t.name = t.name[:0]
}

// Name returns the current name buffer
func (t *Translator) Name() string { return string(t.name) }

// Translate converts a tcell event into an intent
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventFocus:
		if !ev.Focused && t.pressed {
			t.pressed = false
			return Intent{Type: IntentPointerCancel, PointerID: MousePointerID}
		}
	case *tcell.EventMouse:
		if t.mode == ModeGame {
			return t.translateMouse(ev)
		}
	case *tcell.EventKey:
		if t.mode == ModeNameEntry {
			return t.translateNameKey(ev)
		}
		return t.translateKey(ev)
	}
	return Intent{Type: IntentNone}
}

// wheelMask covers scroll reports, which carry no button state
const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (t *Translator) translateMouse(ev *tcell.EventMouse) Intent {
	if ev.Buttons()&wheelMask != 0 {
		return Intent{Type: IntentNone}
	}
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	in := Intent{PointerID: MousePointerID, X: x, Y: y}
	switch {
	case down && !t.pressed:
		t.pressed = true
		in.Type = IntentPointerDown
	case down:
		in.Type = IntentPointerMove
	case t.pressed:
		t.pressed = false
		in.Type = IntentPointerUp
	default:
		in.Type = IntentNone
	}
	return in
}

func (t *Translator) translateKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyEscape {
		if t.pressed {
			t.pressed = false
			return Intent{Type: IntentPointerCancel, PointerID: MousePointerID}
		}
		return Intent{Type: IntentNone}
	}
	if ev.Key() == tcell.KeyRune {
		if it, ok := t.keyTable.Runes[unicode.ToLower(ev.Rune())]; ok {
			return Intent{Type: it}
		}
		return Intent{Type: IntentNone}
	}
	if it, ok := t.keyTable.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: it}
	}
	return Intent{Type: IntentNone}
}

func (t *Translator) translateNameKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		name := string(t.name)
		t.mode = ModeGame
		t.name = t.name[:0]
		return Intent{Type: IntentNameSubmit, Text: name}
	case tcell.KeyEscape:
		t.mode = ModeGame
		t.name = t.name[:0]
		return Intent{Type: IntentNameSkip}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(t.name) > 0 {
			t.name = t.name[:len(t.name)-1]
		}
		return Intent{Type: IntentNameEdit, Text: string(t.name)}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsPrint(r) && len(t.name) < constants.MaxNameLength {
			t.name = append(t.name, r)
		}
		return Intent{Type: IntentNameEdit, Text: string(t.name)}
	}
	return Intent{Type: IntentNone}
}

// Forward delivers a pointer intent to the handler, returning false for other intents
func Forward(in Intent, h engine.PointerHandler) bool {
	switch in.Type {
	case IntentPointerDown:
		h.OnPointerDown(in.PointerID, in.X, in.Y)
	case IntentPointerMove:
		h.OnPointerMove(in.PointerID, in.X, in.Y)
	case IntentPointerUp:
		h.OnPointerUp(in.PointerID, in.X, in.Y)
	case IntentPointerCancel:
		h.OnPointerCancel(in.PointerID)
	default:
		return false
	}
	return true
}
