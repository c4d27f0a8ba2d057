package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/lixenwraith/duck-goose/component"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/storage"
)

// storeTimeout bounds a single load or save
const storeTimeout = 2 * time.Second

// loadHistory reads persisted scores, sorted descending and capped at limit
// Any failure yields empty history
func loadHistory(ctx context.Context, store storage.Store, limit int) []component.GameScore {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	data, err := store.Load(ctx, parameter.HighScoresKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("history load failed: %v", err)
		}
		return nil
	}

	var scores []component.GameScore
	if err := json.Unmarshal(data, &scores); err != nil {
		log.Printf("history malformed, starting empty: %v", err)
		return nil
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// mergeHistory appends entry, sorts by score descending and keeps limit
// Ties keep insertion order, so a new entry ranks below equal older ones
// Returns the merged list and the 1-based rank of entry, 0 if it was dropped
func mergeHistory(history []component.GameScore, entry component.GameScore, limit int) ([]component.GameScore, int) {
	type ranked struct {
		score component.GameScore
		fresh bool
	}
	all := make([]ranked, 0, len(history)+1)
	for _, s := range history {
		all = append(all, ranked{score: s})
	}
	all = append(all, ranked{score: entry, fresh: true})

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score.Score > all[j].score.Score
	})
	if len(all) > limit {
		all = all[:limit]
	}

	rank := 0
	merged := make([]component.GameScore, len(all))
	for i, r := range all {
		merged[i] = r.score
		if r.fresh {
			rank = i + 1
		}
	}
	return merged, rank
}

// recordScore merges the round score into history and persists it best-effort
func (g *Game) recordScore() int {
	w := g.world
	entry := component.NewGameScore(w.Score, g.wallClock())

	var rank int
	w.History, rank = mergeHistory(w.History, entry, w.Config.Gameplay.HistoryLimit)

	data, err := json.Marshal(w.History)
	if err != nil {
		g.logf("history encode failed: %v", err)
		return rank
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := g.store.Save(ctx, parameter.HighScoresKey, data); err != nil {
		g.logf("history save failed: %v", err)
	}
	return rank
}
