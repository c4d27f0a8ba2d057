package engine

import (
	"time"

	"github.com/lixenwraith/duck-goose/component"
)

// Snapshot is a deep copy of everything a renderer or observer needs
type Snapshot struct {
	Phase       Phase                 `json:"phase"`
	State       string                `json:"state"` // lifecycle leaf
	Resetting   bool                  `json:"resetting"`
	Chase       bool                  `json:"chase"`
	Countdown   int                   `json:"countdown"`
	Countdowns  bool                  `json:"countdown_policy"`
	Score       float64               `json:"score"`
	DuckCount   int                   `json:"duck_count"`
	InputLocked bool                  `json:"input_locked"`
	RoundID     string                `json:"round_id"`
	Now         time.Duration         `json:"now"`
	Tick        uint64                `json:"tick"`
	Width       float64               `json:"width"`
	Height      float64               `json:"height"`
	Entities    []component.Entity    `json:"entities"`
	Goose       component.GoosePowers `json:"goose"`
	Confetti    []component.Confetti  `json:"confetti"`
	Popups      []component.Popup     `json:"popups"`
	History     []component.GameScore `json:"history"`
	Catch       component.CatchInfo   `json:"catch"`
}

// Snapshot returns a deep copy of the current state
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.world
	width, height := w.Bounds()
	return Snapshot{
		Phase:       g.phase(),
		State:       g.stateName(),
		Resetting:   g.resetting(),
		Chase:       w.Chase,
		Countdown:   w.Countdown,
		Countdowns:  w.Config.CountdownPolicy(),
		Score:       w.Score,
		DuckCount:   w.DuckCount(),
		InputLocked: w.InputLocked,
		RoundID:     string(w.Round),
		Now:         w.Now,
		Tick:        w.Tick,
		Width:       width,
		Height:      height,
		Entities:    append([]component.Entity(nil), w.Entities...),
		Goose:       w.Powers,
		Confetti:    append([]component.Confetti(nil), w.Confetti...),
		Popups:      append([]component.Popup(nil), w.Popups...),
		History:     append([]component.GameScore(nil), w.History...),
		Catch:       w.Catch,
	}
}

// HasGoose reports whether the snapshot contains the goose
func (s *Snapshot) HasGoose() bool {
	return component.FindGoose(s.Entities) >= 0
}

// CatchSummary is the end-of-round line shown on the game-over panel
func (s *Snapshot) CatchSummary() string {
	return s.Catch.Summary()
}
