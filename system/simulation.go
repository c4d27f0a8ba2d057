package system

import (
	"math"
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/vmath"
)

// tickFraction converts per-second rates to per-step amounts
const tickFraction = 1.0 / parameter.SimulationTickRate

// SimulationSystem advances every entity one fixed step
// The next state is computed from the previous one; cross-entity effects are applied after
type SimulationSystem struct {
	world *engine.World
}

func NewSimulationSystem(world *engine.World) engine.System {
	return &SimulationSystem{world: world}
}

func (s *SimulationSystem) Name() string            { return "simulation" }
func (s *SimulationSystem) Priority() int           { return parameter.PrioritySimulation }
func (s *SimulationSystem) Interval() time.Duration { return parameter.SimulationTickInterval }
func (s *SimulationSystem) Scope() engine.Scope     { return engine.ScopeRound }

// stepEffects collects writes that target entities other than the one being stepped
type stepEffects struct {
	heal       map[int]float64 // entity index -> health gained
	drag       float64         // multiplier applied to goose drag
	scoreDelta float64
	caught     int // entity index, -1 if none
}

func (s *SimulationSystem) Update() {
	w := s.world
	w.Tick++

	width, height := w.Bounds()
	prev := w.Entities
	next := make([]component.Entity, len(prev))
	powers := w.Powers

	var goose *component.Entity
	if gi := component.FindGoose(prev); gi >= 0 {
		g := prev[gi]
		goose = &g
	}

	fx := stepEffects{heal: make(map[int]float64), drag: 1, caught: -1}

	for i := range prev {
		e := prev[i]

		switch e.Kind {
		case component.KindDuck:
			if w.Chase && goose != nil {
				if !s.stepDuck(&e, i, prev, goose, &fx) {
					// Caught: carried over unmodified, reset follows this tick
					next[i] = prev[i]
					continue
				}
			}

		case component.KindGoose:
			if w.Chase {
				s.stepGoose(&e, prev, &powers)
			}
		}

		s.move(&e, width, height)
		next[i] = e
	}

	for i, amount := range fx.heal {
		if i == fx.caught {
			continue
		}
		next[i].Duck.Health = math.Min(parameter.MaxHealth, next[i].Duck.Health+amount)
	}
	powers.Drag *= fx.drag

	w.Entities = next
	w.Powers = powers
	w.Score += fx.scoreDelta

	if fx.caught >= 0 {
		w.ReportCatch(prev[fx.caught])
	}
}

// stepDuck applies pull, variant, panic, jitter, damage and flee
// Returns false when the duck's health reached zero
func (s *SimulationSystem) stepDuck(e *component.Entity, idx int, prev []component.Entity, goose *component.Entity, fx *stepEffects) bool {
	w := s.world
	gp := &w.Config.Gameplay
	gc := &w.Config.Goose
	size := w.Powers.Size

	toGoose := goose.Pos.Sub(e.Pos)
	dist := toGoose.Magnitude()

	// Gravitational pull
	if dist < gc.PullRadius && dist > 0 {
		pull := gc.PullStrength * (1 - dist/gc.PullRadius) * tickFraction
		e.Pos = e.Pos.Add(vmath.Normalize(toGoose).Scale(pull))
	}

	s.applyVariant(e, idx, prev, dist, fx)

	// Panic
	target := math.Max(0, 1-dist/gp.FleeDistance)
	e.Duck.PanicLevel += (target - e.Duck.PanicLevel) * gp.PanicSmoothing
	e.Duck.PanicLevel = vmath.Clamp(e.Duck.PanicLevel, 0, 1)

	// Rotation jitter
	jitter := (w.Rand.Float64()*2 - 1) * e.Duck.PanicLevel * gp.RotationJitter
	e.Rotation = vmath.WrapDegrees(e.Rotation + jitter*gp.PanicSmoothing)

	// Damage
	if dist < gp.DamageRadius*size && !e.Safe(w.Now) {
		e.Duck.Health -= gp.DamageRate * tickFraction * size
		if e.Duck.Health <= 0 {
			if fx.caught < 0 {
				fx.caught = idx
			}
			return false
		}
	}

	// Flee
	if dist < gp.FleeDistance && dist > 0 {
		e.Dir = vmath.Normalize(toGoose.Neg())
	}
	return true
}

func (s *SimulationSystem) applyVariant(e *component.Entity, idx int, prev []component.Entity, dist float64, fx *stepEffects) {
	dc := &s.world.Config.Duck

	switch e.Duck.Variant {
	case component.VariantCrown:
		if e.Alive() {
			fx.scoreDelta += dc.CrownBonusPerSecond * tickFraction
		}

	case component.VariantScholar:
		e.Duck.LearningProgress += dc.ScholarLearningRate
		e.Speed = e.Duck.BaseSpeed * (1 + math.Min(e.Duck.LearningProgress, dc.ScholarMaxSpeedIncrease))

	case component.VariantRescue:
		for j := range prev {
			if j == idx || !prev[j].IsDuck() || !prev[j].Alive() {
				continue
			}
			if vmath.Distance(e.Pos, prev[j].Pos) < dc.RescueHealRadius {
				fx.heal[j] += dc.RescueHealRate
			}
		}

	case component.VariantCowboy:
		e.Speed = e.Duck.BaseSpeed * dc.CowboySpeedBoost
		if dist < s.world.Config.Gameplay.FleeDistance {
			e.Speed *= dc.CowboyEscapeMultiplier
		}

	case component.VariantWizard:
		if dist < dc.WizardSlowRadius {
			fx.drag *= dc.WizardSlowFactor
		}
	}
}

// stepGoose grows the goose, aims it and manages bursts
func (s *SimulationSystem) stepGoose(e *component.Entity, prev []component.Entity, powers *component.GoosePowers) {
	w := s.world
	gc := &w.Config.Goose

	powers.Size = math.Min(gc.MaxSize, powers.Size+gc.GrowthPerTick)

	if target := pickTarget(prev); target != nil {
		if d := target.Pos.Sub(e.Pos); d.Magnitude() > 0 {
			e.Dir = vmath.Normalize(d)
		}
	}

	if !powers.IsBursting && w.Now-powers.LastBurstTime >= gc.BurstCooldown {
		powers.IsBursting = true
		powers.LastBurstTime = w.Now
		started := w.Now
		w.After("burst-end", gc.BurstDuration, func(time.Duration) {
			// A newer burst owns the flag
			if w.Powers.LastBurstTime == started {
				w.Powers.IsBursting = false
			}
		})
		w.Emit(event.EventBurstStarted, nil)
	}

	mult := 1.0
	if powers.IsBursting {
		mult = gc.BurstMultiplier
	}
	e.Speed = w.Config.Gameplay.BaseSpeed * mult * powers.Drag
}

// pickTarget returns the first crown duck, else the first duck
func pickTarget(entities []component.Entity) *component.Entity {
	first := -1
	for i := range entities {
		if !entities[i].IsDuck() {
			continue
		}
		if entities[i].Duck.Variant == component.VariantCrown {
			return &entities[i]
		}
		if first < 0 {
			first = i
		}
	}
	if first < 0 {
		return nil
	}
	return &entities[first]
}

// move applies the universal step and wall bounce
func (s *SimulationSystem) move(e *component.Entity, width, height float64) {
	w := s.world
	gp := &w.Config.Gameplay

	speed := e.Speed
	if w.Chase {
		speed *= gp.ChaseMultiplier
	}
	e.Pos = e.Pos.Add(e.Dir.Scale(speed))

	maxX := math.Max(0, width-gp.EntityExtent)
	maxY := math.Max(0, height-gp.EntityExtent)
	if e.Pos.X < 0 || e.Pos.X > maxX {
		e.Dir = vmath.ReflectAxisX(e.Dir)
		e.Pos.X = vmath.Clamp(e.Pos.X, 0, maxX)
	}
	if e.Pos.Y < 0 || e.Pos.Y > maxY {
		e.Dir = vmath.ReflectAxisY(e.Dir)
		e.Pos.Y = vmath.Clamp(e.Pos.Y, 0, maxY)
	}
}
