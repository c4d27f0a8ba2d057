package engine

import (
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/vmath"
)

// spawnEntity adds one duck or, when eligible and the coin favours it, the goose
// Random draw order: goose coin (eligible only), x, y, heading, speed (duck), rotation, variant (duck)
func (g *Game) spawnEntity() {
	w := g.world
	gp := &w.Config.Gameplay
	width, height := w.Bounds()

	isGoose := w.Goose() == nil &&
		w.DuckCount() >= gp.MinDucksForGoose &&
		w.Rand.Float64() < gp.GooseChance

	e := component.Entity{
		ID:        w.NextID(),
		SpawnedAt: w.Now,
		Pos:       vmath.RandomPosition(w.Rand, width, height, gp.EntityExtent),
		Dir:       vmath.RandomDirection(w.Rand),
		Opacity:   1,
	}

	if isGoose {
		e.Kind = component.KindGoose
		e.Speed = gp.BaseSpeed
		e.Rotation = w.Rand.Float64() * 360
	} else {
		e.Kind = component.KindDuck
		e.Speed = vmath.RandomSpeed(w.Rand, gp.BaseSpeed, gp.DuckSpeedVariance)
		e.Rotation = w.Rand.Float64() * 360
		e.Duck = component.DuckState{
			Health:    parameter.InitialHealth,
			Variant:   pickVariant(w.Rand),
			BaseSpeed: e.Speed,
			SafeUntil: w.Now + gp.SpawnSafe,
		}
	}

	w.Entities = append(w.Entities, e)
	g.addPopup(e.Label())

	payload := &event.SpawnPayload{EntityID: e.ID, Label: e.Label()}
	if isGoose {
		g.startChase(width, height)
		w.Emit(event.EventGooseSpawned, payload)
		g.logf("goose spawned with %d ducks", w.DuckCount())
	} else {
		w.Emit(event.EventDuckSpawned, payload)
	}
}

func pickVariant(src vmath.Source) component.Variant {
	n := len(component.Variants)
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return component.Variants[i]
}

// startChase turns chase mode on for a freshly spawned goose
func (g *Game) startChase(width, height float64) {
	w := g.world
	w.Chase = true
	w.Powers.IsBursting = false
	w.Powers.LastBurstTime = w.Now
	w.Powers.Drag = 1

	g.burstConfetti(vmath.Vec2{X: width / 2, Y: height / 2})

	if w.Config.CountdownPolicy() {
		w.Countdown = w.Config.Gameplay.ChaseCountdown
		g.armScope(ScopeCountdown)
	}
}

// burstConfetti emits the celebratory particle batch at center
func (g *Game) burstConfetti(center vmath.Vec2) {
	w := g.world
	palette := parameter.ConfettiPalette
	for i := 0; i < parameter.ConfettiCount; i++ {
		ci := int(w.Rand.Float64() * float64(len(palette)))
		if ci >= len(palette) {
			ci = len(palette) - 1
		}
		w.Confetti = append(w.Confetti, component.Confetti{
			ID:    w.NextID(),
			Pos:   center,
			Color: palette[ci],
			Size:  vmath.RandomRange(w.Rand, parameter.ConfettiMinSize, parameter.ConfettiMaxSize),
			Velocity: vmath.Vec2{
				X: (w.Rand.Float64() - 0.5) * parameter.ConfettiSpreadX,
				Y: -vmath.RandomRange(w.Rand, parameter.ConfettiMinLift, parameter.ConfettiMaxLift),
			},
			ExpiresAt: w.Now + w.Config.Timing.ConfettiLifetime,
		})
	}
}

// addPopup shows text and schedules its removal
func (g *Game) addPopup(text string) {
	w := g.world
	id := w.NextID()
	w.Popups = append(w.Popups, component.Popup{ID: id, Text: text, Opacity: 1})

	w.AfterGlobal("popup-expire", w.Config.Timing.PopupLifetime, func(time.Duration) {
		for i := range w.Popups {
			if w.Popups[i].ID == id {
				w.Popups = append(w.Popups[:i], w.Popups[i+1:]...)
				return
			}
		}
	})
}
