// Package input turns terminal events into game intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentPress      // space, enter, left click
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // m, Ctrl+S
	IntentResize     // terminal resize event
)

// Intent is one semantic input
type Intent struct {
	Type IntentType

	// Resize only, in cells
	Cols, Rows int
}
