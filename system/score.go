package system

import (
	"time"

	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/parameter"
)

// ScoreSystem adds one point per living duck every second
type ScoreSystem struct {
	world *engine.World
}

func NewScoreSystem(world *engine.World) engine.System {
	return &ScoreSystem{world: world}
}

func (s *ScoreSystem) Name() string            { return "score" }
func (s *ScoreSystem) Priority() int           { return parameter.PriorityScore }
func (s *ScoreSystem) Interval() time.Duration { return parameter.ScoreTickInterval }
func (s *ScoreSystem) Scope() engine.Scope     { return engine.ScopeRound }

func (s *ScoreSystem) Update() {
	alive := 0
	for i := range s.world.Entities {
		if s.world.Entities[i].IsDuck() && s.world.Entities[i].Alive() {
			alive++
		}
	}
	s.world.Score += float64(alive)
}
