package parameter

import "time"

// Movement
const (
	BaseSpeed         = 2.0
	DuckSpeedVariance = 0.5
	ChaseMultiplier   = 1.5

	// EntityExtent is the footprint subtracted from the viewport for spawn and bounce bounds
	EntityExtent = 50.0
)

// Interaction radii and rates
const (
	FleeDistance  = 150.0
	DamageRadius  = 100.0
	DamageRate    = 20.0 // health per second at goose size 1
	InitialHealth = 100.0
	MaxHealth     = 100.0

	// PanicSmoothing is the low-pass factor applied to panic and rotation jitter
	PanicSmoothing = 0.1

	// RotationJitter is the peak heading jitter in degrees at full panic
	RotationJitter = 30.0

	// SpawnSafeDuration shields a freshly spawned duck from damage
	SpawnSafeDuration = 500 * time.Millisecond
)

// Spawn policy
const (
	GooseChance       = 0.2
	MinDucksForGoose  = 2
	InputCooldown     = 250 * time.Millisecond
	ResetDelay        = 1000 * time.Millisecond
	HistoryLimit      = 5
	HighScoresKey     = "duckGameHighScores"
	ChaseCountdownSec = 10
)

// Chase policies
const (
	ChasePolicyReset     = "reset"
	ChasePolicyCountdown = "countdown"
)
