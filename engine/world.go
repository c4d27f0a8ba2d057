package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/config"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/status"
	"github.com/lixenwraith/duck-goose/vmath"
)

// World is the complete simulation state
// All fields are owned by Game and only touched under its lock
type World struct {
	Config   *config.Config
	Rand     vmath.Source
	Viewport Viewport
	Status   *status.Registry
	Events   *event.EventQueue

	Now       time.Duration // game time since creation
	Tick      uint64        // simulation ticks executed
	Round     RoundID
	Entities  []component.Entity
	Powers    component.GoosePowers
	Score     float64
	Chase     bool
	Countdown int // seconds left, countdown policy only
	Confetti  []component.Confetti
	Popups    []component.Popup
	Catch     component.CatchInfo
	History   []component.GameScore

	InputLocked bool

	tasks  *TaskQueue
	nextID int64
	caught bool
}

func newWorld(cfg *config.Config) *World {
	return &World{
		Config:   cfg,
		Viewport: FixedViewport{W: 800, H: 600},
		Status:   status.NewRegistry(),
		Events:   event.NewEventQueue(),
		Powers:   component.NewGoosePowers(cfg.Goose.InitialSize),
		tasks:    NewTaskQueue(),
	}
}

// NextID returns the next creation-order identifier
func (w *World) NextID() int64 {
	w.nextID++
	return w.nextID
}

// Bounds returns the current viewport size
func (w *World) Bounds() (float64, float64) {
	return w.Viewport.Bounds()
}

// Emit queues an outbound event stamped with the current tick
func (w *World) Emit(et event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: et, Payload: payload, Tick: w.Tick})
}

// After schedules a round-scoped one-shot, dropped if the round ends first
func (w *World) After(name string, delay time.Duration, fn func(now time.Duration)) TaskID {
	return w.schedule(name, delay, w.Round, fn)
}

// AfterGlobal schedules a one-shot that survives resets
func (w *World) AfterGlobal(name string, delay time.Duration, fn func(now time.Duration)) TaskID {
	return w.schedule(name, delay, "", fn)
}

func (w *World) schedule(name string, delay time.Duration, round RoundID, fn func(time.Duration)) TaskID {
	return w.tasks.Schedule(&Task{
		Name:     name,
		Due:      w.Now + delay,
		Priority: parameter.PriorityOneShot,
		Round:    round,
		Fn: func(now time.Duration) bool {
			fn(now)
			return false
		},
	})
}

// ReportCatch records the first duck of the round whose health reached zero
// Catch info describes that caught duck, not the first duck in the entity list
// The game raises DuckCaught once the running task commits
func (w *World) ReportCatch(e component.Entity) {
	if w.caught {
		return
	}
	w.caught = true
	secs := math.Round((w.Now-e.SpawnedAt).Seconds()*10) / 10
	w.Catch = component.CatchInfo{Caught: true, Variant: e.Duck.Variant, Seconds: secs}
	w.Emit(event.EventDuckCaught, &event.CatchPayload{
		EntityID: e.ID,
		Variant:  e.Duck.Variant.String(),
		Seconds:  secs,
	})
}

// Goose returns the goose entity, nil if none exists
func (w *World) Goose() *component.Entity {
	if i := component.FindGoose(w.Entities); i >= 0 {
		return &w.Entities[i]
	}
	return nil
}

// DuckCount returns the number of ducks in the active set
func (w *World) DuckCount() int {
	return component.CountDucks(w.Entities)
}
