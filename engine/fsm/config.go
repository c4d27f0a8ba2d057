package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `toml:"parent"`
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnUpdate    []ActionConfig     `toml:"on_update"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string         `toml:"trigger"` // event name or "Tick"
	Target  string         `toml:"target"`  // empty = internal transition
	Guard   string         `toml:"guard"`
	Actions []ActionConfig `toml:"actions"`
}

// ActionConfig represents an action invocation
type ActionConfig struct {
	Action string         `toml:"action"`
	Args   map[string]any `toml:"args"`
}
