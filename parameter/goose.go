package parameter

import "time"

// Goose growth
const (
	GooseInitialSize   = 1.0
	GooseMaxSize       = 3.0
	GooseGrowthPerTick = 0.001
)

// Goose gravitational pull on nearby ducks
const (
	GoosePullRadius   = 200.0
	GoosePullStrength = 30.0 // units per second at distance 0
)

// Goose speed burst
const (
	GooseBurstCooldown   = 5 * time.Second
	GooseBurstDuration   = 1 * time.Second
	GooseBurstMultiplier = 2.0
)
