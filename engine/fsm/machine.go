package fsm

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/duck-goose/event"
)

// ErrNotLoaded is returned by Init before a graph is loaded
var ErrNotLoaded = errors.New("fsm: no graph loaded")

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		nameToID:  make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initialID]
	if !ok || m.initialID == StateNone {
		return ErrNotLoaded
	}

	m.activeStateID = m.initialID
	m.activePath = append(m.activePath[:0], node.Path...)
	m.timeInState = 0

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances time in state, runs OnUpdate of the leaf and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.fire(ctx, event.EventTick)
}

// HandleEvent routes an event through the active path, leaf first
// Returns true if a transition (internal or external) fired
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	if m.activeStateID == StateNone || et == event.EventTick {
		return false
	}
	return m.fire(ctx, et)
}

// fire evaluates transitions for et, bubbling Leaf -> Parent -> Root
func (m *Machine[T]) fire(ctx T, et event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != et {
				continue
			}
			if trans.Guard != nil && !trans.Guard(ctx) {
				continue
			}
			m.transition(ctx, trans)
			return true
		}
		currID = node.ParentID
	}
	return false
}

// transition performs exit, transition actions, enter
func (m *Machine[T]) transition(ctx T, trans Transition[T]) {
	if trans.TargetID == StateNone {
		runActions(ctx, trans.Actions)
		return
	}

	targetNode, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("fsm: transition to unknown state ID %d", trans.TargetID))
	}

	// Self transition re-enters the leaf
	currentPath := m.activePath
	targetPath := targetNode.Path
	lcaIndex := -1
	for i := 0; i < len(currentPath) && i < len(targetPath); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	if trans.TargetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	// Exit: current leaf up to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	runActions(ctx, trans.Actions)

	// Commit before enter so enter actions observe the new state
	m.activeStateID = trans.TargetID
	m.activePath = append(m.activePath[:0], targetPath...)
	m.timeInState = 0

	// Enter: LCA (exclusive) down to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// Current returns the active leaf state name
func (m *Machine[T]) Current() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// InState reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) InState(name string) bool {
	id, ok := m.nameToID[name]
	if !ok {
		return false
	}
	for _, active := range m.activePath {
		if active == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the current leaf
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameToID[name]
	return id, ok
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}
