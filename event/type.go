package event

// EventType represents the type of game event
// Zero is reserved for FSM tick-driven (automatic) transitions
type EventType int

const (
	// EventTick is the pseudo-event for automatic FSM transitions, never queued
	EventTick EventType = iota

	// === Input ===

	// EventPress is the single player input
	// Trigger: input poller | Consumer: lifecycle FSM | Payload: nil
	EventPress

	// === Lifecycle ===

	// EventDuckCaught signals a duck's health reached zero
	// Trigger: simulation tick | Consumer: lifecycle FSM | Payload: *CatchPayload
	EventDuckCaught

	// EventResetComplete signals the end-of-round fade elapsed
	// Trigger: reset finalize one-shot | Consumer: lifecycle FSM | Payload: nil
	EventResetComplete

	// EventRoundStarted announces a fresh round
	// Trigger: lifecycle FSM | Consumer: audio, logging | Payload: *RoundPayload
	EventRoundStarted

	// EventGameOver announces the recorded final score
	// Trigger: lifecycle FSM | Consumer: audio, logging | Payload: *GameOverPayload
	EventGameOver

	// === Simulation ===

	// EventDuckSpawned announces a new duck
	// Trigger: spawn | Consumer: audio | Payload: *SpawnPayload
	EventDuckSpawned

	// EventGooseSpawned announces the goose and chase mode start
	// Trigger: spawn | Consumer: audio | Payload: *SpawnPayload
	EventGooseSpawned

	// EventBurstStarted announces a goose speed burst
	// Trigger: goose power subsystem | Consumer: audio | Payload: nil
	EventBurstStarted

	// EventChaseEnded announces chase mode deactivation by countdown
	// Trigger: countdown tick | Consumer: audio | Payload: nil
	EventChaseEnded
)

// GameEvent is a queued event instance
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // simulation tick at emission
}
