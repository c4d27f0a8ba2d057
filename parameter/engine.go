package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SimulationTickRate is the fixed simulation rate; per-second rates are divided by it
	SimulationTickRate = 60

	// SimulationTickInterval is the simulation step period
	SimulationTickInterval = time.Second / SimulationTickRate

	// EffectsTickInterval is the popup/confetti decay period
	EffectsTickInterval = time.Second / SimulationTickRate

	// ScoreTickInterval is the scoring period
	ScoreTickInterval = time.Second

	// CountdownTickInterval is the chase countdown period
	CountdownTickInterval = time.Second

	// ClockInterval is how often the real-time driver advances the game
	ClockInterval = 8 * time.Millisecond

	// MaxClockCatchup bounds a single Advance after a stall
	MaxClockCatchup = 250 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Task priorities, lower runs first among tasks due at the same instant
const (
	PrioritySimulation = 0
	PriorityEffects    = 1
	PriorityScore      = 2
	PriorityCountdown  = 3
	PriorityOneShot    = 4
)
