package system

import (
	"math"
	"time"

	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/parameter"
)

// EffectsSystem animates popups and confetti
// Global scope: effects keep fading through resets and on the game-over screen
type EffectsSystem struct {
	world *engine.World
}

func NewEffectsSystem(world *engine.World) engine.System {
	return &EffectsSystem{world: world}
}

func (s *EffectsSystem) Name() string            { return "effects" }
func (s *EffectsSystem) Priority() int           { return parameter.PriorityEffects }
func (s *EffectsSystem) Interval() time.Duration { return parameter.EffectsTickInterval }
func (s *EffectsSystem) Scope() engine.Scope     { return engine.ScopeGlobal }

func (s *EffectsSystem) Update() {
	w := s.world

	for i := range w.Popups {
		p := &w.Popups[i]
		p.Opacity = math.Max(0, p.Opacity-parameter.PopupFadePerTick)
		p.Offset -= parameter.PopupRisePerTick
	}

	// Compact in place, dropping expired particles
	live := w.Confetti[:0]
	for _, c := range w.Confetti {
		if w.Now >= c.ExpiresAt {
			continue
		}
		c.Pos = c.Pos.Add(c.Velocity)
		c.Velocity.Y += parameter.ConfettiGravity
		live = append(live, c)
	}
	w.Confetti = live
}
