package component

import (
	"time"

	"github.com/lixenwraith/duck-goose/vmath"
)

// Confetti is one cosmetic particle
type Confetti struct {
	ID        int64
	Pos       vmath.Vec2
	Color     string
	Size      float64
	Velocity  vmath.Vec2
	ExpiresAt time.Duration
}

// Popup is a rising, fading text label
type Popup struct {
	ID      int64
	Text    string
	Opacity float64
	Offset  float64 // vertical, negative is up
}
