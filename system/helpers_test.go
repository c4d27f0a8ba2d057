package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/config"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/storage"
	"github.com/lixenwraith/duck-goose/vmath"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

const tick = parameter.SimulationTickInterval

func newGame(t *testing.T, cfg *config.Config, src vmath.Source, vp engine.Viewport) *engine.Game {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	if src == nil {
		src = constSource(0.5)
	}
	if vp == nil {
		vp = engine.FixedViewport{W: 800, H: 600}
	}
	g, err := engine.NewGame(cfg,
		engine.WithStore(storage.NewMemoryStore()),
		engine.WithSource(src),
		engine.WithViewport(vp),
	)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	RegisterDefaults(g)
	return g
}

// startRound presses once and returns the world for direct staging
func startRound(t *testing.T, g *engine.Game) *engine.World {
	t.Helper()
	if !g.Press() {
		t.Fatal("round start press rejected")
	}
	return g.World()
}

func duckAt(id int64, x, y float64, v component.Variant) component.Entity {
	return component.Entity{
		ID:      id,
		Kind:    component.KindDuck,
		Pos:     vmath.Vec2{X: x, Y: y},
		Dir:     vmath.Vec2{X: 1},
		Speed:   parameter.BaseSpeed,
		Opacity: 1,
		Duck: component.DuckState{
			Health:    parameter.InitialHealth,
			Variant:   v,
			BaseSpeed: parameter.BaseSpeed,
		},
	}
}

func gooseAt(id int64, x, y float64) component.Entity {
	return component.Entity{
		ID:      id,
		Kind:    component.KindGoose,
		Pos:     vmath.Vec2{X: x, Y: y},
		Dir:     vmath.Vec2{X: 1},
		Speed:   parameter.BaseSpeed,
		Opacity: 1,
	}
}

// stageChase installs entities with chase mode on and fresh goose powers
func stageChase(w *engine.World, entities ...component.Entity) {
	w.Entities = entities
	w.Chase = true
	w.Powers = component.NewGoosePowers(w.Config.Goose.InitialSize)
	w.Powers.LastBurstTime = w.Now
}

func seeded(seed int64) vmath.Source {
	return rand.New(rand.NewSource(seed))
}

func approx(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
