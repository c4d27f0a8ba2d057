package parameter

// Scholar: learning accelerates the duck up to a ceiling
const (
	ScholarLearningRate     = 0.001
	ScholarMaxSpeedIncrease = 0.5
)

// Rescue: heals other ducks nearby every tick
const (
	RescueHealRadius = 100.0
	RescueHealRate   = 0.1
)

// Cowboy: permanent boost, extra when escaping
const (
	CowboySpeedBoost       = 1.2
	CowboyEscapeMultiplier = 1.5
)

// Crown: passive score bonus
const (
	CrownBonusPerSecond = 5.0
)

// Wizard: compounding drag on a nearby goose
const (
	WizardSlowRadius = 150.0
	WizardSlowFactor = 0.99
)
