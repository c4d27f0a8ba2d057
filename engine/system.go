package engine

import "time"

// Scope decides when a system's periodic task is armed and cancelled
type Scope int

const (
	// ScopeGlobal runs from game creation, survives resets
	ScopeGlobal Scope = iota
	// ScopeRound is armed at round start and cancelled by the reset sequence
	ScopeRound
	// ScopeCountdown is armed when the goose spawns under the countdown chase policy
	ScopeCountdown
)

// System is a periodic activity driven by the task queue
// Update runs under the game lock with World.Now set to the task's due time
type System interface {
	Name() string
	Priority() int
	Interval() time.Duration
	Scope() Scope
	Update()
}

// Finisher is implemented by systems that can stop repeating on their own
type Finisher interface {
	Finished() bool
}

// AddSystem registers a system; global systems are armed immediately
func (g *Game) AddSystem(s System) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.systems = append(g.systems, s)
	if s.Scope() == ScopeGlobal {
		g.armSystem(s)
	}
	// Late registration while a round is live
	if s.Scope() == ScopeRound && g.fsm.InState(stateActive) {
		g.armSystem(s)
	}
}

// armScope schedules every system registered for scope
func (g *Game) armScope(scope Scope) {
	for _, s := range g.systems {
		if s.Scope() == scope {
			g.armSystem(s)
		}
	}
}

func (g *Game) armSystem(s System) {
	w := g.world
	round := w.Round
	if s.Scope() == ScopeGlobal {
		round = ""
	}
	w.tasks.Schedule(&Task{
		Name:     s.Name(),
		Due:      w.Now + s.Interval(),
		Priority: s.Priority(),
		Interval: s.Interval(),
		Round:    round,
		Fn: func(time.Duration) bool {
			s.Update()
			if f, ok := s.(Finisher); ok && f.Finished() {
				return false
			}
			return true
		},
	})
}
