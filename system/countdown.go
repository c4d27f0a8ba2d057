package system

import (
	"time"

	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
)

// CountdownSystem ends chase mode when the countdown reaches zero
// Only armed under the countdown chase policy
type CountdownSystem struct {
	world *engine.World
}

func NewCountdownSystem(world *engine.World) engine.System {
	return &CountdownSystem{world: world}
}

func (s *CountdownSystem) Name() string            { return "countdown" }
func (s *CountdownSystem) Priority() int           { return parameter.PriorityCountdown }
func (s *CountdownSystem) Interval() time.Duration { return parameter.CountdownTickInterval }
func (s *CountdownSystem) Scope() engine.Scope     { return engine.ScopeCountdown }

func (s *CountdownSystem) Update() {
	w := s.world
	if w.Countdown <= 0 {
		return
	}
	w.Countdown--
	if w.Countdown == 0 && w.Chase {
		w.Chase = false
		w.Emit(event.EventChaseEnded, nil)
	}
}

// Finished stops the periodic task once the countdown is spent
func (s *CountdownSystem) Finished() bool {
	return s.world.Countdown <= 0
}
