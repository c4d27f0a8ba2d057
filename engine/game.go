package engine

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/duck-goose/config"
	"github.com/lixenwraith/duck-goose/engine/fsm"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/status"
	"github.com/lixenwraith/duck-goose/storage"
	"github.com/lixenwraith/duck-goose/vmath"
)

//go:embed lifecycle.toml
var defaultLifecycle []byte

// Game owns the world and the lifecycle machine behind a single mutex
// Press and Advance are the only mutators; each is logically atomic
type Game struct {
	mu sync.Mutex

	world   *World
	fsm     *fsm.Machine[*Game]
	systems []System

	store     storage.Store
	lifecycle []byte
	wallClock func() time.Time

	statTicks  *atomic.Int64
	statRounds *atomic.Int64
}

// Option configures a Game at construction
type Option func(*Game)

// WithStore sets the high-score persistence collaborator
func WithStore(s storage.Store) Option {
	return func(g *Game) { g.store = s }
}

// WithSource sets the random source used by spawn and simulation
func WithSource(src vmath.Source) Option {
	return func(g *Game) { g.world.Rand = src }
}

// WithViewport sets the playfield size provider
func WithViewport(v Viewport) Option {
	return func(g *Game) { g.world.Viewport = v }
}

// WithLifecycle replaces the embedded lifecycle graph
func WithLifecycle(graph []byte) Option {
	return func(g *Game) { g.lifecycle = graph }
}

// WithStatus shares a status registry with other components
func WithStatus(reg *status.Registry) Option {
	return func(g *Game) { g.world.Status = reg }
}

// WithWallClock sets the clock used to date history entries
func WithWallClock(now func() time.Time) Option {
	return func(g *Game) { g.wallClock = now }
}

// NewGame builds a game in the welcome state with history loaded from the store
func NewGame(cfg *config.Config, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		world:     newWorld(cfg),
		fsm:       fsm.NewMachine[*Game](),
		store:     storage.NewMemoryStore(),
		lifecycle: defaultLifecycle,
		wallClock: time.Now,
	}
	g.world.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, opt := range opts {
		opt(g)
	}

	g.statTicks = g.world.Status.Ints.Get(status.KeyTicks)
	g.statRounds = g.world.Status.Ints.Get(status.KeyRounds)

	g.world.History = loadHistory(context.Background(), g.store, cfg.Gameplay.HistoryLimit)

	registerLifecycle(g.fsm)
	if err := g.fsm.LoadConfig(g.lifecycle); err != nil {
		return nil, fmt.Errorf("failed to load lifecycle: %w", err)
	}
	if err := g.fsm.Init(g); err != nil {
		return nil, fmt.Errorf("failed to init lifecycle: %w", err)
	}

	g.publish()
	return g, nil
}

// World exposes the simulation state to systems at construction time
// Fields may only be touched from System.Update
func (g *Game) World() *World {
	return g.world
}

// Events returns the outbound event queue
func (g *Game) Events() *event.EventQueue {
	return g.world.Events
}

// Status returns the metrics registry
func (g *Game) Status() *status.Registry {
	return g.world.Status
}

// Press delivers the single player input
// Returns true if the press was accepted (round start or spawn)
func (g *Game) Press() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	accepted := g.fsm.HandleEvent(g, event.EventPress)
	if accepted {
		g.armCooldown()
	}
	g.settle()
	g.publish()
	return accepted
}

// Advance moves game time forward by elapsed, running every task that comes due
func (g *Game) Advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.world
	target := w.Now + elapsed
	for t := w.tasks.PopDue(target); t != nil; t = w.tasks.PopDue(target) {
		w.Now = t.Due
		g.run(t)
	}
	w.Now = target

	g.fsm.Update(g, elapsed)
	g.publish()
}

// run executes one due task, dropping it if its round has ended
func (g *Game) run(t *Task) {
	w := g.world
	if t.Round != "" && t.Round != w.Round {
		return
	}
	keep := t.Fn(w.Now)
	if t.Interval > 0 && keep {
		w.tasks.reschedule(t)
	}
	g.settle()
}

// settle raises lifecycle events reported by the task that just committed
func (g *Game) settle() {
	w := g.world
	if w.caught {
		w.caught = false
		g.fsm.HandleEvent(g, event.EventDuckCaught)
	}
}

func (g *Game) armCooldown() {
	w := g.world
	w.InputLocked = true
	w.AfterGlobal("input-cooldown", w.Config.Timing.InputCooldown, func(time.Duration) {
		w.InputLocked = false
	})
}

// publish mirrors the headline numbers into the status registry
func (g *Game) publish() {
	w := g.world
	reg := w.Status
	g.statTicks.Store(int64(w.Tick))
	reg.Floats.Get(status.KeyScore).Set(w.Score)
	reg.Ints.Get(status.KeyDucks).Store(int64(w.DuckCount()))
	reg.Floats.Get(status.KeyGooseSize).Set(w.Powers.Size)
	reg.Bools.Get(status.KeyChase).Store(w.Chase)
	reg.Strings.Get(status.KeyRoundID).Store(string(w.Round))
	reg.Strings.Get(status.KeyState).Store(g.stateName())
}

// logf prefixes engine log lines with the round
func (g *Game) logf(format string, args ...any) {
	log.Printf("[round %s] "+format, append([]any{g.world.Round.Short()}, args...)...)
}
