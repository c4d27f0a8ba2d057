package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/duck-goose/event"
)

// LoadConfig parses a TOML graph and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.nameToID = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.initialID = StateNone

	m.AddState(StateRoot, "Root", StateNone)
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sort keys for deterministic ID generation
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	ids := map[string]StateID{"Root": StateRoot}
	for i, name := range names {
		ids[name] = StateID(i + 2)
	}

	// Create nodes first so parent lookup does not depend on order
	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
			config.States[name] = cfg
		}
		parent := cfg.Parent
		if parent == "" {
			parent = "Root"
		}
		parentID, ok := ids[parent]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, parent)
		}
		m.AddState(ids[name], name, parentID)
	}

	for name, cfg := range config.States {
		node := m.nodes[ids[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, ids); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initialID, ok := ids[config.InitialState]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.initialID = initialID
	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{Name: cfg.Action, Func: fn, Args: cfg.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, ids map[string]StateID) error {
	for _, cfg := range configs {
		targetID := StateNone
		if cfg.Target != "" {
			id, ok := ids[cfg.Target]
			if !ok {
				return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
			}
			targetID = id
		}

		et, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		actions, err := m.compileActions(cfg.Actions)
		if err != nil {
			return err
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    et,
			Guard:    guard,
			Actions:  actions,
		})
	}
	return nil
}
