package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents in game mode
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the game bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
		},
		Runes: map[rune]IntentType{
			's': IntentStart,
			' ': IntentTogglePause,
			'p': IntentTogglePause,
			'r': IntentReset,
			'h': IntentHint,
			'l': IntentToggleLight,
			'm': IntentToggleMusic,
			'q': IntentQuit,
		},
	}
}
