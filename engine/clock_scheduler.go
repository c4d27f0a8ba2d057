package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/duck-goose/core"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
)

// ClockScheduler feeds wall-clock time into Game.Advance on a fixed tick
// and routes the events each advance produced
type ClockScheduler struct {
	game  *Game
	clock TimeProvider

	// Tick configuration
	tickInterval     time.Duration
	lastTickTime     time.Time
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals the renderer that a new state is available
	updateDone chan struct{}

	eventRouter *event.Router
}

// NewClockScheduler creates a scheduler with the specified tick interval
// Returns the scheduler and the update-done channel the renderer waits on
func NewClockScheduler(game *Game, clock TimeProvider, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = SystemTimeProvider{}
	}
	if tickInterval <= 0 {
		tickInterval = parameter.ClockInterval
	}
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		game:         game,
		clock:        clock,
		tickInterval: tickInterval,
		lastTickTime: clock.Now(),
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
		eventRouter:  event.NewRouter(game.Events()),
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to the router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler) {
	cs.eventRouter.Register(handler)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of driver ticks processed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.lastTickTime = cs.clock.Now()
	cs.nextTickDeadline = cs.lastTickTime.Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := cs.clock.Now()
		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		if !now.Before(deadline) {
			cs.Step()

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
			// Drop missed deadlines instead of bursting to catch up
			if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
				cs.nextTickDeadline = now.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()
		}

		sleep := deadline.Sub(cs.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// Step advances the game by the wall time since the previous step and dispatches events
// Exported for deterministic driving with a MockTimeProvider
func (cs *ClockScheduler) Step() {
	now := cs.clock.Now()

	cs.mu.Lock()
	elapsed := now.Sub(cs.lastTickTime)
	cs.lastTickTime = now
	cs.mu.Unlock()

	// A stalled process must not fast-forward the round
	if elapsed > parameter.MaxClockCatchup {
		elapsed = parameter.MaxClockCatchup
	}

	cs.game.Advance(elapsed)
	cs.eventRouter.DispatchAll()
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
