package fsm

import (
	"time"

	"github.com/lixenwraith/duck-goose/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a hierarchical finite state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.Game)
type Machine[T any] struct {
	// Graph data (immutable after load)
	nodes     map[StateID]*Node[T]
	nameToID  map[string]StateID
	initialID StateID

	// Runtime state
	activeStateID StateID
	activePath    []StateID // Root -> ... -> Leaf
	timeInState   time.Duration

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
// TargetID == StateNone is an internal transition: actions run, no exit/enter
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = automatic
	Guard    GuardFunc[T]    // nil = always true
	Actions  []Action[T]     // run after exits, before enters
}

// Action represents a side-effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
