package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Printable keys, matched case-insensitively
	Runes map[rune]Intent

	// Special keys (arrows, Esc, Ctrl+*)
	Keys map[tcell.Key]Intent
}

// DefaultKeyTable returns the default bindings: WASD, arrows, q/Esc/Ctrl+C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'a': IntentRotateLeft,
			'd': IntentRotateRight,
			'w': IntentForward,
			's': IntentBackward,
			'q': IntentQuit,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentRotateLeft,
			tcell.KeyRight:  IntentRotateRight,
			tcell.KeyUp:     IntentForward,
			tcell.KeyDown:   IntentBackward,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
	}
}

// Resolve returns the intent bound to a key event, IntentNone if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// Merge applies override bindings on top of the table
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for r, i := range override.Runes {
		kt.Runes[r] = i
	}
	for k, i := range override.Keys {
		kt.Keys[k] = i
	}
}
