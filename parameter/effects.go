package parameter

import "time"

// Confetti burst emitted on goose spawn
const (
	ConfettiCount    = 50
	ConfettiMinSize  = 4.0
	ConfettiMaxSize  = 12.0
	ConfettiSpreadX  = 15.0 // horizontal velocity range, centered on 0
	ConfettiMinLift  = 5.0
	ConfettiMaxLift  = 20.0
	ConfettiGravity  = 0.5 // per effects tick
	ConfettiLifetime = 2 * time.Second
)

// ConfettiPalette is the fixed confetti color set
var ConfettiPalette = []string{"red", "blue", "yellow", "green", "purple", "orange"}

// Popup text animation
const (
	PopupFadePerTick = 0.02
	PopupRisePerTick = 2.0
	PopupLifetime    = 1000 * time.Millisecond
)
