package engine

import (
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/engine/fsm"
	"github.com/lixenwraith/duck-goose/event"
)

// Lifecycle state names used by the embedded graph
const (
	stateWelcome   = "Welcome"
	statePlaying   = "Playing"
	stateActive    = "Active"
	stateResetting = "Resetting"
	stateGameOver  = "GameOver"
)

// Phase is the externally visible game state
type Phase string

const (
	PhaseWelcome  Phase = "welcome"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameover"
)

// registerLifecycle binds the action and guard names referenced by lifecycle.toml
func registerLifecycle(m *fsm.Machine[*Game]) {
	m.RegisterGuard("InputReady", func(g *Game) bool {
		return !g.world.InputLocked
	})

	m.RegisterAction("StartRound", func(g *Game, _ map[string]any) { g.startRound() })
	m.RegisterAction("SpawnEntity", func(g *Game, _ map[string]any) { g.spawnEntity() })
	m.RegisterAction("BeginReset", func(g *Game, _ map[string]any) { g.beginReset() })
	m.RegisterAction("FinalizeRound", func(g *Game, _ map[string]any) { g.finalizeRound() })
	m.RegisterAction("Log", func(g *Game, args map[string]any) {
		if msg, ok := args["msg"].(string); ok {
			g.logf("%s", msg)
		}
	})
}

func (g *Game) phase() Phase {
	switch {
	case g.fsm.InState(statePlaying):
		return PhasePlaying
	case g.fsm.InState(stateGameOver):
		return PhaseGameOver
	default:
		return PhaseWelcome
	}
}

func (g *Game) stateName() string {
	return g.fsm.Current()
}

func (g *Game) resetting() bool {
	return g.fsm.InState(stateResetting)
}

// startRound clears the world and arms round-scoped systems
func (g *Game) startRound() {
	w := g.world
	w.Round = NewRoundID()
	w.Entities = nil
	w.Confetti = nil
	w.Popups = nil
	w.Score = 0
	w.Chase = false
	w.Countdown = 0
	w.Catch = component.CatchInfo{}
	w.caught = false
	w.Powers = component.NewGoosePowers(w.Config.Goose.InitialSize)

	g.armScope(ScopeRound)
	g.statRounds.Add(1)

	w.Emit(event.EventRoundStarted, &event.RoundPayload{RoundID: string(w.Round)})
	g.logf("round started")
}

// beginReset freezes the round and schedules finalization
func (g *Game) beginReset() {
	w := g.world
	w.Chase = false
	w.Countdown = 0
	w.Powers.IsBursting = false

	cancelled := w.tasks.CancelRound(w.Round)
	for i := range w.Entities {
		w.Entities[i].Opacity = 0
	}

	w.After("reset-finalize", w.Config.Timing.ResetDelay, func(time.Duration) {
		g.fsm.HandleEvent(g, event.EventResetComplete)
	})

	if w.Catch.Caught {
		g.logf("caught %s duck after %.1fs, %d tasks cancelled", w.Catch.Variant, w.Catch.Seconds, cancelled)
	}
}

// finalizeRound records the score and clears the field
func (g *Game) finalizeRound() {
	w := g.world
	rank := g.recordScore()
	w.Entities = nil

	w.Emit(event.EventGameOver, &event.GameOverPayload{
		RoundID: string(w.Round),
		Score:   w.Score,
		Rank:    rank,
	})
	g.logf("round over, score %.1f rank %d", w.Score, rank)
}
