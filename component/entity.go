package component

import (
	"strings"
	"time"

	"github.com/lixenwraith/duck-goose/vmath"
)

// Kind tags the entity union
type Kind uint8

const (
	KindDuck Kind = iota
	KindGoose
)

func (k Kind) String() string {
	switch k {
	case KindDuck:
		return "duck"
	case KindGoose:
		return "goose"
	default:
		return "unknown"
	}
}

// Entity is a duck or a goose
// Duck is meaningful only when Kind == KindDuck; goose power state lives in GoosePowers
type Entity struct {
	ID        int64
	Kind      Kind
	SpawnedAt time.Duration // game time at creation
	Pos       vmath.Vec2
	Dir       vmath.Vec2 // unit vector
	Speed     float64
	Opacity   float64 // [0,1], only lowered by reset fade
	Rotation  float64 // degrees, visual heading jitter

	Duck DuckState
}

// DuckState is the duck-only payload
type DuckState struct {
	Health           float64 // [0,100]
	Variant          Variant
	PanicLevel       float64 // [0,1], low-pass filtered
	LearningProgress float64 // scholar only
	BaseSpeed        float64 // spawn speed, reference for variant multipliers
	SafeUntil        time.Duration
}

// IsDuck reports whether the entity carries a duck payload
func (e *Entity) IsDuck() bool { return e.Kind == KindDuck }

// IsGoose reports whether the entity is the goose
func (e *Entity) IsGoose() bool { return e.Kind == KindGoose }

// Alive reports a duck with defined, positive health
func (e *Entity) Alive() bool {
	return e.Kind == KindDuck && e.Duck.Health > 0
}

// Safe reports whether the duck's spawn safe-zone is active at now
func (e *Entity) Safe(now time.Duration) bool {
	return e.Kind == KindDuck && now < e.Duck.SafeUntil
}

// Label is the popup text announcing the entity
func (e *Entity) Label() string {
	name := strings.ToUpper(e.Kind.String())
	if e.Kind == KindDuck && e.Duck.Variant != VariantNormal {
		return strings.ToUpper(e.Duck.Variant.String()) + " " + name
	}
	return name
}

// FindGoose returns the index of the goose in entities, -1 if absent
func FindGoose(entities []Entity) int {
	for i := range entities {
		if entities[i].Kind == KindGoose {
			return i
		}
	}
	return -1
}

// CountDucks returns the number of ducks regardless of health
func CountDucks(entities []Entity) int {
	n := 0
	for i := range entities {
		if entities[i].Kind == KindDuck {
			n++
		}
	}
	return n
}
