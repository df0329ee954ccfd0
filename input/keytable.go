package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]IntentType

	// Printable bindings, matched case-insensitively
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the stock bindings: arrows or wasd fly, space fires,
// z/x turn, Esc or p opens the menu
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyEscape: IntentMenu,
			tcell.KeyEnter:  IntentFire,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlR:  IntentReset,
		},
		Runes: map[rune]IntentType{
			'a': IntentLeft,
			'd': IntentRight,
			'w': IntentUp,
			's': IntentDown,
			' ': IntentFire,
			'z': IntentTurnLeft,
			'x': IntentTurnRight,
			'p': IntentMenu,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
