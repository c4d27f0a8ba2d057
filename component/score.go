package component

import (
	"fmt"
	"time"
)

// GameScore is one persisted history entry
type GameScore struct {
	Score float64 `json:"score"`
	Date  string  `json:"date"` // RFC 3339
}

// NewGameScore stamps score with t in UTC RFC 3339
func NewGameScore(score float64, t time.Time) GameScore {
	return GameScore{Score: score, Date: t.UTC().Format(time.RFC3339Nano)}
}

// CatchInfo describes the duck that ended the round
type CatchInfo struct {
	Caught  bool
	Variant Variant
	Seconds float64 // rounded to one decimal
}

// Summary is the game-over sentence describing the catch
func (c CatchInfo) Summary() string {
	if !c.Caught {
		return "No ducks were caught."
	}
	return fmt.Sprintf("The goose caught a %s in %.1f seconds!", c.Variant.DisplayName(), c.Seconds)
}
