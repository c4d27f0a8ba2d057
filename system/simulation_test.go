package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/event"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/vmath"
)

func TestSimulationIdleBeforeRound(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	g.Advance(time.Second)
	if got := g.Snapshot().Tick; got != 0 {
		t.Errorf("ticks before round got %d, want 0", got)
	}
}

func TestSimulationTickRate(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	startRound(t, g)
	g.Advance(time.Second)
	if got := g.Snapshot().Tick; got != parameter.SimulationTickRate {
		t.Errorf("ticks in 1s got %d, want %d", got, parameter.SimulationTickRate)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name    string
		pos     vmath.Vec2
		dir     vmath.Vec2
		wantPos vmath.Vec2
		wantDir vmath.Vec2
	}{
		{"right wall", vmath.Vec2{X: 749, Y: 100}, vmath.Vec2{X: 1}, vmath.Vec2{X: 750, Y: 100}, vmath.Vec2{X: -1}},
		{"left wall", vmath.Vec2{X: 1, Y: 100}, vmath.Vec2{X: -1}, vmath.Vec2{X: 0, Y: 100}, vmath.Vec2{X: 1}},
		{"bottom wall", vmath.Vec2{X: 100, Y: 549}, vmath.Vec2{Y: 1}, vmath.Vec2{X: 100, Y: 550}, vmath.Vec2{Y: -1}},
		{"free", vmath.Vec2{X: 100, Y: 100}, vmath.Vec2{X: 1}, vmath.Vec2{X: 102, Y: 100}, vmath.Vec2{X: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, nil, nil, nil)
			w := startRound(t, g)
			d := duckAt(1, tt.pos.X, tt.pos.Y, component.VariantNormal)
			d.Dir = tt.dir
			w.Entities = []component.Entity{d}

			g.Advance(tick)
			got := g.Snapshot().Entities[0]
			if got.Pos != tt.wantPos || got.Dir != tt.wantDir {
				t.Errorf("got pos %v dir %v, want %v %v", got.Pos, got.Dir, tt.wantPos, tt.wantDir)
			}
		})
	}
}

func TestViewportReadEveryTick(t *testing.T) {
	vp := engine.NewSharedViewport(800, 600)
	g := newGame(t, nil, nil, vp)
	w := startRound(t, g)
	w.Entities = []component.Entity{duckAt(1, 500, 100, component.VariantNormal)}

	vp.Resize(300, 600)
	g.Advance(tick)
	if x := g.Snapshot().Entities[0].Pos.X; x != 250 {
		t.Errorf("x after shrink got %v, want clamp to 250", x)
	}
}

func TestCatchTriggersResetSameTick(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)

	// Accrue some score before the goose arrives
	w.Entities = []component.Entity{
		duckAt(1, 100, 100, component.VariantNormal),
		duckAt(2, 600, 400, component.VariantNormal),
	}
	g.Advance(3 * time.Second)
	scoreAtCatch := g.Snapshot().Score
	if scoreAtCatch <= 0 {
		t.Fatalf("score before catch got %v, want > 0", scoreAtCatch)
	}

	victim := duckAt(1, 100, 100, component.VariantScholar)
	victim.Duck.Health = 0.1
	victim.SpawnedAt = w.Now
	stageChase(w, victim, duckAt(2, 600, 400, component.VariantNormal), gooseAt(3, 120, 100))

	g.Advance(tick)
	snap := g.Snapshot()
	if !snap.Resetting {
		t.Fatal("catch should enter resetting in the same tick")
	}
	caught := snap.Entities[0]
	if caught.Duck.Health != 0.1 || caught.Pos != victim.Pos {
		t.Errorf("caught duck should be carried unmodified, got health %v pos %v", caught.Duck.Health, caught.Pos)
	}
	for _, e := range snap.Entities {
		if e.Opacity != 0 {
			t.Errorf("entity %d opacity %v, want 0", e.ID, e.Opacity)
		}
	}
	if !snap.Catch.Caught || snap.Catch.Variant != component.VariantScholar {
		t.Errorf("catch info got %+v", snap.Catch)
	}
	if snap.Chase {
		t.Error("chase should end with the reset")
	}

	ticks := snap.Tick
	g.Advance(999 * time.Millisecond)
	snap = g.Snapshot()
	if snap.Phase != engine.PhasePlaying {
		t.Fatal("gameover before 1000ms")
	}
	if snap.Tick != ticks {
		t.Error("simulation ran during the reset window")
	}

	g.Advance(time.Millisecond)
	snap = g.Snapshot()
	if snap.Phase != engine.PhaseGameOver {
		t.Fatalf("phase got %s, want gameover exactly 1000ms after the catch", snap.Phase)
	}
	if len(snap.History) != 1 || len(snap.Entities) != 0 {
		t.Fatalf("history %d entities %d, want 1 and 0", len(snap.History), len(snap.Entities))
	}
	if got := snap.History[0].Score; got != scoreAtCatch {
		t.Errorf("recorded score got %v, want pre-reset %v", got, scoreAtCatch)
	}
	if want := "The goose caught a Scholar Duck in 0.0 seconds!"; snap.CatchSummary() != want {
		t.Errorf("summary got %q, want %q", snap.CatchSummary(), want)
	}
}

func TestSpawnSafeZoneBlocksDamage(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)

	d := duckAt(1, 100, 100, component.VariantNormal)
	d.Duck.SafeUntil = w.Now + parameter.SpawnSafeDuration
	stageChase(w, d, gooseAt(2, 110, 100))

	g.Advance(tick)
	if h := g.Snapshot().Entities[0].Duck.Health; h != parameter.InitialHealth {
		t.Errorf("health during safe-zone got %v, want %v", h, parameter.InitialHealth)
	}
}

func TestDamageScalesWithGooseSize(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w, duckAt(1, 100, 100, component.VariantNormal), gooseAt(2, 110, 100))
	w.Powers.Size = 2

	g.Advance(tick)
	want := parameter.InitialHealth - parameter.DamageRate/parameter.SimulationTickRate*2
	if h := g.Snapshot().Entities[0].Duck.Health; !approx(h, want, 1e-9) {
		t.Errorf("health got %v, want %v", h, want)
	}
}

func TestDuckFleesAndPanics(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w, duckAt(1, 300, 300, component.VariantNormal), gooseAt(2, 400, 300))

	g.Advance(tick)
	d := g.Snapshot().Entities[0]
	if d.Dir.X >= 0 {
		t.Errorf("duck should flee away from goose, dir %v", d.Dir)
	}
	if d.Duck.PanicLevel <= 0 || d.Duck.PanicLevel > 1 {
		t.Errorf("panic got %v, want (0,1]", d.Duck.PanicLevel)
	}
}

func TestRescueHealsNeighbours(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)

	hurt := duckAt(2, 150, 100, component.VariantNormal)
	hurt.Duck.Health = 50
	full := duckAt(3, 180, 100, component.VariantNormal)
	stageChase(w, duckAt(1, 100, 100, component.VariantRescue), hurt, full, gooseAt(4, 700, 500))

	g.Advance(tick)
	snap := g.Snapshot()
	if h := snap.Entities[1].Duck.Health; !approx(h, 50+parameter.RescueHealRate, 1e-9) {
		t.Errorf("healed health got %v, want %v", h, 50+parameter.RescueHealRate)
	}
	if h := snap.Entities[2].Duck.Health; h != parameter.MaxHealth {
		t.Errorf("full duck health got %v, want clamp at %v", h, parameter.MaxHealth)
	}
	if h := snap.Entities[0].Duck.Health; h != parameter.InitialHealth {
		t.Errorf("rescue duck healed itself: %v", h)
	}
}

func TestScholarAndCowboySpeeds(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w,
		duckAt(1, 100, 100, component.VariantScholar),
		duckAt(2, 100, 300, component.VariantCowboy),
		duckAt(3, 700, 500, component.VariantCowboy),
		gooseAt(4, 150, 300),
	)

	g.Advance(tick)
	snap := g.Snapshot()

	scholar := snap.Entities[0]
	if want := parameter.BaseSpeed * (1 + parameter.ScholarLearningRate); !approx(scholar.Speed, want, 1e-12) {
		t.Errorf("scholar speed got %v, want %v", scholar.Speed, want)
	}
	near := snap.Entities[1]
	if want := parameter.BaseSpeed * parameter.CowboySpeedBoost * parameter.CowboyEscapeMultiplier; !approx(near.Speed, want, 1e-12) {
		t.Errorf("escaping cowboy speed got %v, want %v", near.Speed, want)
	}
	far := snap.Entities[2]
	if want := parameter.BaseSpeed * parameter.CowboySpeedBoost; !approx(far.Speed, want, 1e-12) {
		t.Errorf("cowboy speed got %v, want %v", far.Speed, want)
	}
}

func TestScholarSpeedCapped(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	s := duckAt(1, 100, 100, component.VariantScholar)
	s.Duck.LearningProgress = 10
	stageChase(w, s, gooseAt(2, 700, 500))

	g.Advance(tick)
	want := parameter.BaseSpeed * (1 + parameter.ScholarMaxSpeedIncrease)
	if got := g.Snapshot().Entities[0].Speed; got != want {
		t.Errorf("capped scholar speed got %v, want %v", got, want)
	}
}

func TestWizardSlowsGooseMonotonically(t *testing.T) {
	// Small field keeps the pair inside the slow radius
	g := newGame(t, nil, nil, engine.FixedViewport{W: 120, H: 120})
	w := startRound(t, g)
	stageChase(w, duckAt(1, 10, 10, component.VariantWizard), gooseAt(2, 60, 60))

	prev := parameter.BaseSpeed + 1
	prevDrag := 1.0
	for i := 0; i < 60; i++ {
		g.Advance(tick)
		snap := g.Snapshot()
		if snap.Resetting {
			t.Fatal("wizard caught before the test finished")
		}
		gi := component.FindGoose(snap.Entities)
		speed := snap.Entities[gi].Speed
		if speed > prev {
			t.Fatalf("tick %d: goose speed rose from %v to %v", i, prev, speed)
		}
		if snap.Goose.Drag >= prevDrag {
			t.Fatalf("tick %d: drag did not shrink (%v -> %v)", i, prevDrag, snap.Goose.Drag)
		}
		prev, prevDrag = speed, snap.Goose.Drag
	}
	if prev >= parameter.BaseSpeed {
		t.Errorf("goose speed after 60 ticks got %v, want below %v", prev, parameter.BaseSpeed)
	}
}

func TestCrownBonusOverFiveSeconds(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	crown := duckAt(1, 100, 100, component.VariantCrown)
	crown.Duck.SafeUntil = w.Now + 10*time.Second
	stageChase(w, crown, gooseAt(2, 700, 500))

	g.Advance(5 * time.Second)
	snap := g.Snapshot()
	if snap.Resetting {
		t.Fatal("crown duck caught during the test")
	}
	// Crown points per second plus one living duck per score tick
	want := 5*parameter.CrownBonusPerSecond + 5
	if got := snap.Score; !approx(got, want, 1e-6) {
		t.Errorf("score got %v, want %v", got, want)
	}
}

func TestCrownBonusNeedsChase(t *testing.T) {
	tests := []struct {
		name  string
		chase bool
	}{
		{"no goose, chase off", false},
		{"no goose, chase on", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGame(t, nil, nil, nil)
			w := startRound(t, g)
			w.Entities = []component.Entity{duckAt(1, 100, 100, component.VariantCrown)}
			w.Chase = tt.chase

			g.Advance(time.Second)
			// Only the score tick counts the living duck
			if got := g.Snapshot().Score; !approx(got, 1, 1e-9) {
				t.Errorf("score got %v, want 1", got)
			}
		})
	}
}

func TestGooseGrowsAndTargetsCrown(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w,
		duckAt(1, 400, 100, component.VariantNormal),
		duckAt(2, 100, 300, component.VariantCrown),
		gooseAt(3, 300, 300),
	)

	g.Advance(tick)
	snap := g.Snapshot()
	if want := parameter.GooseInitialSize + parameter.GooseGrowthPerTick; !approx(snap.Goose.Size, want, 1e-12) {
		t.Errorf("size got %v, want %v", snap.Goose.Size, want)
	}
	goose := snap.Entities[2]
	if goose.Dir.X >= 0 || !approx(goose.Dir.Y, 0, 1e-9) {
		t.Errorf("goose should head toward the crown duck, dir %v", goose.Dir)
	}
}

func TestGooseSizeClampedAtMax(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w, duckAt(1, 700, 500, component.VariantNormal), gooseAt(2, 10, 10))
	w.Powers.Size = parameter.GooseMaxSize - parameter.GooseGrowthPerTick/2

	g.Advance(2 * tick)
	if got := g.Snapshot().Goose.Size; got != parameter.GooseMaxSize {
		t.Errorf("size got %v, want %v", got, parameter.GooseMaxSize)
	}
}

func TestGooseBurst(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	stageChase(w, duckAt(1, 700, 500, component.VariantNormal), gooseAt(2, 10, 10))
	w.Powers.LastBurstTime = w.Now - parameter.GooseBurstCooldown

	g.Advance(tick)
	snap := g.Snapshot()
	if !snap.Goose.IsBursting {
		t.Fatal("burst should start once the cooldown elapsed")
	}
	goose := snap.Entities[component.FindGoose(snap.Entities)]
	if want := parameter.BaseSpeed * parameter.GooseBurstMultiplier; goose.Speed != want {
		t.Errorf("burst speed got %v, want %v", goose.Speed, want)
	}

	var bursts int
	for _, ev := range g.Events().Consume() {
		if ev.Type == event.EventBurstStarted {
			bursts++
		}
	}
	if bursts != 1 {
		t.Errorf("BurstStarted events got %d, want 1", bursts)
	}

	g.Advance(parameter.GooseBurstDuration)
	if g.Snapshot().Goose.IsBursting {
		t.Error("burst should end after its duration")
	}
}

func TestChaseMultiplierAppliesToAll(t *testing.T) {
	g := newGame(t, nil, nil, nil)
	w := startRound(t, g)
	d := duckAt(1, 100, 500, component.VariantNormal)
	stageChase(w, d, gooseAt(2, 700, 100))

	g.Advance(tick)
	got := g.Snapshot().Entities[0].Pos.X
	if want := 100 + parameter.BaseSpeed*parameter.ChaseMultiplier; !approx(got, want, 1e-9) {
		t.Errorf("x got %v, want %v", got, want)
	}
}

func TestPickTarget(t *testing.T) {
	tests := []struct {
		name   string
		ents   []component.Entity
		wantID int64
	}{
		{"none", []component.Entity{gooseAt(1, 0, 0)}, 0},
		{"first duck", []component.Entity{gooseAt(1, 0, 0), duckAt(2, 0, 0, component.VariantNormal), duckAt(3, 0, 0, component.VariantWizard)}, 2},
		{"crown first", []component.Entity{duckAt(2, 0, 0, component.VariantNormal), duckAt(3, 0, 0, component.VariantCrown)}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pickTarget(tt.ents)
			var id int64
			if got != nil {
				id = got.ID
			}
			if id != tt.wantID {
				t.Errorf("target got %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestBoundsHoldDuringPlay(t *testing.T) {
	g := newGame(t, nil, seeded(7), nil)
	cfg := g.World().Config

	for step := 0; step < 400; step++ {
		if step%5 == 0 {
			g.Press()
		}
		g.Advance(100 * time.Millisecond)

		snap := g.Snapshot()
		if snap.Goose.Size < cfg.Goose.InitialSize || snap.Goose.Size > cfg.Goose.MaxSize {
			t.Fatalf("step %d: goose size %v out of bounds", step, snap.Goose.Size)
		}
		if countGeese(snap.Entities) > 1 {
			t.Fatalf("step %d: more than one goose", step)
		}
		for _, e := range snap.Entities {
			if e.Opacity < 0 || e.Opacity > 1 {
				t.Fatalf("step %d: opacity %v", step, e.Opacity)
			}
			if e.Kind == component.KindDuck && (e.Duck.Health < 0 || e.Duck.Health > 100) {
				t.Fatalf("step %d: health %v", step, e.Duck.Health)
			}
		}
		for _, p := range snap.Popups {
			if p.Opacity < 0 || p.Opacity > 1 {
				t.Fatalf("step %d: popup opacity %v", step, p.Opacity)
			}
		}
		if len(snap.History) > 5 {
			t.Fatalf("step %d: history length %d", step, len(snap.History))
		}
	}
}

func countGeese(entities []component.Entity) int {
	n := 0
	for i := range entities {
		if entities[i].IsGoose() {
			n++
		}
	}
	return n
}
