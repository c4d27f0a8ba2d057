package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-goose/parameter"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Panel text
	RgbHud        = tcell.NewRGBColor(0, 200, 200)   // Cyan HUD
	RgbDim        = tcell.NewRGBColor(110, 110, 120) // Faded entities and hints
	RgbTitle      = tcell.NewRGBColor(255, 215, 0)   // Gold

	RgbDuck         = tcell.NewRGBColor(255, 220, 80)
	RgbDuckSafe     = tcell.NewRGBColor(160, 200, 255) // Spawn protection
	RgbGoose        = tcell.NewRGBColor(245, 245, 245)
	RgbGooseBurst   = tcell.NewRGBColor(255, 80, 80)
	RgbPopupGoose   = tcell.NewRGBColor(255, 60, 60)
	RgbPopupDefault = tcell.NewRGBColor(255, 255, 255)

	RgbHealthGood = tcell.NewRGBColor(0, 200, 0)
	RgbHealthWarn = tcell.NewRGBColor(230, 200, 0)
	RgbHealthLow  = tcell.NewRGBColor(220, 40, 40)
)

// confettiColors maps palette names to terminal colors
var confettiColors = map[string]tcell.Color{
	"red":    tcell.NewRGBColor(255, 80, 80),
	"blue":   tcell.NewRGBColor(100, 150, 255),
	"yellow": tcell.NewRGBColor(255, 255, 0),
	"green":  tcell.NewRGBColor(50, 255, 50),
	"purple": tcell.NewRGBColor(180, 100, 255),
	"orange": tcell.NewRGBColor(255, 165, 0),
}

// ConfettiColor resolves a palette name, unknown names render white
func ConfettiColor(name string) tcell.Color {
	if c, ok := confettiColors[name]; ok {
		return c
	}
	return tcell.ColorWhite
}

// HealthColor picks the health bar color for health in [0,100]
func HealthColor(health float64) tcell.Color {
	switch {
	case health > parameter.HealthGoodThreshold:
		return RgbHealthGood
	case health > parameter.HealthWarnThreshold:
		return RgbHealthWarn
	default:
		return RgbHealthLow
	}
}
