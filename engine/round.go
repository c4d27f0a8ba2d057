package engine

import "github.com/google/uuid"

// RoundID identifies one playing round; round-scoped tasks carry it
type RoundID string

// NewRoundID returns a fresh random round identity
func NewRoundID() RoundID {
	return RoundID(uuid.NewString())
}

// Short returns the leading UUID group for log lines
func (r RoundID) Short() string {
	if len(r) > 8 {
		return string(r[:8])
	}
	return string(r)
}
