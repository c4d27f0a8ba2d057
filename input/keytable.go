package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
	Runes       map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEnter:  IntentPress,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
		},
		Runes: map[rune]IntentType{
			' ': IntentPress,
			'q': IntentQuit,
			'Q': IntentQuit,
			'm': IntentToggleMute,
		},
	}
}

// Translate converts a terminal event into an intent
func (kt *KeyTable) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Intent{Type: kt.Runes[ev.Rune()]}
		}
		return Intent{Type: kt.SpecialKeys[ev.Key()]}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return Intent{Type: IntentPress}
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		return Intent{Type: IntentResize, Cols: cols, Rows: rows}
	}
	return Intent{}
}
