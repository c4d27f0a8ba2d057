// Package config holds the tunable gameplay configuration
// Defaults come from the parameter package; a TOML file may override any subset
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/duck-goose/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete tuning set consumed by engine and systems
type Config struct {
	Gameplay Gameplay `toml:"gameplay"`
	Goose    Goose    `toml:"goose"`
	Duck     Duck     `toml:"duck"`
	Timing   Timing   `toml:"timing"`
}

// Gameplay covers movement, interaction and spawn policy
type Gameplay struct {
	BaseSpeed         float64       `toml:"base_speed"`
	DuckSpeedVariance float64       `toml:"duck_speed_variance"`
	ChaseMultiplier   float64       `toml:"chase_multiplier"`
	EntityExtent      float64       `toml:"entity_extent"`
	FleeDistance      float64       `toml:"flee_distance"`
	DamageRadius      float64       `toml:"damage_radius"`
	DamageRate        float64       `toml:"damage_rate"`
	PanicSmoothing    float64       `toml:"panic_smoothing"`
	RotationJitter    float64       `toml:"rotation_jitter"`
	SpawnSafe         time.Duration `toml:"spawn_safe"`
	GooseChance       float64       `toml:"goose_chance"`
	MinDucksForGoose  int           `toml:"min_ducks_for_goose"`
	ChasePolicy       string        `toml:"chase_policy"`
	ChaseCountdown    int           `toml:"chase_countdown"`
	HistoryLimit      int           `toml:"history_limit"`
}

// Goose covers the goose power subsystem
type Goose struct {
	InitialSize     float64       `toml:"initial_size"`
	MaxSize         float64       `toml:"max_size"`
	GrowthPerTick   float64       `toml:"growth_per_tick"`
	PullRadius      float64       `toml:"pull_radius"`
	PullStrength    float64       `toml:"pull_strength"`
	BurstCooldown   time.Duration `toml:"burst_cooldown"`
	BurstDuration   time.Duration `toml:"burst_duration"`
	BurstMultiplier float64       `toml:"burst_multiplier"`
}

// Duck covers variant effects
type Duck struct {
	ScholarLearningRate     float64 `toml:"scholar_learning_rate"`
	ScholarMaxSpeedIncrease float64 `toml:"scholar_max_speed_increase"`
	RescueHealRadius        float64 `toml:"rescue_heal_radius"`
	RescueHealRate          float64 `toml:"rescue_heal_rate"`
	CowboySpeedBoost        float64 `toml:"cowboy_speed_boost"`
	CowboyEscapeMultiplier  float64 `toml:"cowboy_escape_multiplier"`
	CrownBonusPerSecond     float64 `toml:"crown_bonus_per_second"`
	WizardSlowRadius        float64 `toml:"wizard_slow_radius"`
	WizardSlowFactor        float64 `toml:"wizard_slow_factor"`
}

// Timing covers one-shot delays
type Timing struct {
	InputCooldown    time.Duration `toml:"input_cooldown"`
	ResetDelay       time.Duration `toml:"reset_delay"`
	PopupLifetime    time.Duration `toml:"popup_lifetime"`
	ConfettiLifetime time.Duration `toml:"confetti_lifetime"`
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Gameplay: Gameplay{
			BaseSpeed:         parameter.BaseSpeed,
			DuckSpeedVariance: parameter.DuckSpeedVariance,
			ChaseMultiplier:   parameter.ChaseMultiplier,
			EntityExtent:      parameter.EntityExtent,
			FleeDistance:      parameter.FleeDistance,
			DamageRadius:      parameter.DamageRadius,
			DamageRate:        parameter.DamageRate,
			PanicSmoothing:    parameter.PanicSmoothing,
			RotationJitter:    parameter.RotationJitter,
			SpawnSafe:         parameter.SpawnSafeDuration,
			GooseChance:       parameter.GooseChance,
			MinDucksForGoose:  parameter.MinDucksForGoose,
			ChasePolicy:       parameter.ChasePolicyReset,
			ChaseCountdown:    parameter.ChaseCountdownSec,
			HistoryLimit:      parameter.HistoryLimit,
		},
		Goose: Goose{
			InitialSize:     parameter.GooseInitialSize,
			MaxSize:         parameter.GooseMaxSize,
			GrowthPerTick:   parameter.GooseGrowthPerTick,
			PullRadius:      parameter.GoosePullRadius,
			PullStrength:    parameter.GoosePullStrength,
			BurstCooldown:   parameter.GooseBurstCooldown,
			BurstDuration:   parameter.GooseBurstDuration,
			BurstMultiplier: parameter.GooseBurstMultiplier,
		},
		Duck: Duck{
			ScholarLearningRate:     parameter.ScholarLearningRate,
			ScholarMaxSpeedIncrease: parameter.ScholarMaxSpeedIncrease,
			RescueHealRadius:        parameter.RescueHealRadius,
			RescueHealRate:          parameter.RescueHealRate,
			CowboySpeedBoost:        parameter.CowboySpeedBoost,
			CowboyEscapeMultiplier:  parameter.CowboyEscapeMultiplier,
			CrownBonusPerSecond:     parameter.CrownBonusPerSecond,
			WizardSlowRadius:        parameter.WizardSlowRadius,
			WizardSlowFactor:        parameter.WizardSlowFactor,
		},
		Timing: Timing{
			InputCooldown:    parameter.InputCooldown,
			ResetDelay:       parameter.ResetDelay,
			PopupLifetime:    parameter.PopupLifetime,
			ConfettiLifetime: parameter.ConfettiLifetime,
		},
	}
}

// Load reads path over the defaults
// An empty path returns the defaults unchanged
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes TOML data over the current values and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func (c *Config) Merge(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate checks ranges that would otherwise break invariants at runtime
func (c *Config) Validate() error {
	g := c.Gameplay
	switch {
	case g.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalid)
	case g.DuckSpeedVariance < 0 || g.DuckSpeedVariance >= 1:
		return fmt.Errorf("%w: duck_speed_variance must be in [0,1)", ErrInvalid)
	case g.FleeDistance <= 0 || g.DamageRadius <= 0:
		return fmt.Errorf("%w: flee_distance and damage_radius must be positive", ErrInvalid)
	case g.PanicSmoothing <= 0 || g.PanicSmoothing > 1:
		return fmt.Errorf("%w: panic_smoothing must be in (0,1]", ErrInvalid)
	case g.GooseChance < 0 || g.GooseChance > 1:
		return fmt.Errorf("%w: goose_chance must be in [0,1]", ErrInvalid)
	case g.HistoryLimit <= 0:
		return fmt.Errorf("%w: history_limit must be positive", ErrInvalid)
	case g.ChasePolicy != parameter.ChasePolicyReset && g.ChasePolicy != parameter.ChasePolicyCountdown:
		return fmt.Errorf("%w: unknown chase_policy %q", ErrInvalid, g.ChasePolicy)
	case g.ChasePolicy == parameter.ChasePolicyCountdown && g.ChaseCountdown <= 0:
		return fmt.Errorf("%w: chase_countdown must be positive with countdown policy", ErrInvalid)
	}

	gs := c.Goose
	switch {
	case gs.InitialSize <= 0 || gs.InitialSize > gs.MaxSize:
		return fmt.Errorf("%w: goose sizes must satisfy 0 < initial_size <= max_size", ErrInvalid)
	case gs.BurstDuration <= 0 || gs.BurstCooldown <= 0:
		return fmt.Errorf("%w: burst timings must be positive", ErrInvalid)
	case gs.PullRadius < 0:
		return fmt.Errorf("%w: pull_radius must not be negative", ErrInvalid)
	}

	if c.Duck.WizardSlowFactor <= 0 || c.Duck.WizardSlowFactor > 1 {
		return fmt.Errorf("%w: wizard_slow_factor must be in (0,1]", ErrInvalid)
	}

	t := c.Timing
	if t.InputCooldown < 0 || t.ResetDelay <= 0 || t.PopupLifetime <= 0 {
		return fmt.Errorf("%w: timing values must be positive", ErrInvalid)
	}
	return nil
}

// CountdownPolicy reports whether chase mode ends on a fixed countdown
func (c *Config) CountdownPolicy() bool {
	return c.Gameplay.ChasePolicy == parameter.ChasePolicyCountdown
}
