package event

// SpawnPayload describes a freshly spawned entity
type SpawnPayload struct {
	EntityID int64
	Label    string
}

// CatchPayload describes the duck whose health reached zero
type CatchPayload struct {
	EntityID int64
	Variant  string
	Seconds  float64
}

// RoundPayload identifies a round
type RoundPayload struct {
	RoundID string
}

// GameOverPayload carries the recorded score
type GameOverPayload struct {
	RoundID string
	Score   float64
	Rank    int // 1-based position in history, 0 if not retained
}
