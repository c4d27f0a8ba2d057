package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/config"
	"github.com/lixenwraith/duck-goose/storage"
)

// scriptedSource replays values cyclically
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func constSource(v float64) *scriptedSource {
	return &scriptedSource{vals: []float64{v}}
}

var testEpoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, opts ...Option) (*Game, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	base := []Option{
		WithStore(store),
		WithSource(constSource(0.5)),
		WithViewport(FixedViewport{W: 800, H: 600}),
		WithWallClock(func() time.Time { return testEpoch }),
	}
	g, err := NewGame(config.Default(), append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, store
}

// pressAndWait presses then lets the input cooldown expire
func pressAndWait(t *testing.T, g *Game) {
	t.Helper()
	if !g.Press() {
		t.Fatal("press was not accepted")
	}
	g.Advance(250 * time.Millisecond)
}

// forceCatch reports a catch of the entity at idx as the simulation would
func forceCatch(g *Game, idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.ReportCatch(g.world.Entities[idx])
	g.settle()
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
