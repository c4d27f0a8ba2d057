// Package system holds the periodic activities driven by the engine task queue
package system

import "github.com/lixenwraith/duck-goose/engine"

// RegisterDefaults adds the standard simulation, effects, score and countdown systems
func RegisterDefaults(g *engine.Game) {
	w := g.World()
	g.AddSystem(NewSimulationSystem(w))
	g.AddSystem(NewEffectsSystem(w))
	g.AddSystem(NewScoreSystem(w))
	g.AddSystem(NewCountdownSystem(w))
}
