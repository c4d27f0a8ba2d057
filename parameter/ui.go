package parameter

// Logical units per terminal cell; the engine works in logical units
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Health bar thresholds
const (
	HealthGoodThreshold = 70.0
	HealthWarnThreshold = 30.0
)

// Text
const (
	TitleText     = "Duck Duck Goose!"
	PressHintText = "[space] press   [q] quit"
)
