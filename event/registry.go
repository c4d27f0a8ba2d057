package event

import "strings"

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

func init() {
	RegisterType("Press", EventPress)
	RegisterType("DuckCaught", EventDuckCaught)
	RegisterType("ResetComplete", EventResetComplete)
	RegisterType("RoundStarted", EventRoundStarted)
	RegisterType("GameOver", EventGameOver)
	RegisterType("DuckSpawned", EventDuckSpawned)
	RegisterType("GooseSpawned", EventGooseSpawned)
	RegisterType("BurstStarted", EventBurstStarted)
	RegisterType("ChaseEnded", EventChaseEnded)
}

// RegisterType maps a config name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
// "Tick" (any case) resolves to EventTick
func GetEventType(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the config name for an EventType
func GetEventName(et EventType) string {
	if et == EventTick {
		return "Tick"
	}
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}
