package component

import "time"

// GoosePowers is the single goose's dynamic power state
type GoosePowers struct {
	Size          float64 // [InitialSize, MaxSize]
	IsBursting    bool
	LastBurstTime time.Duration
	Drag          float64 // compounded wizard slow, 1 = none
}

// NewGoosePowers returns the state at round start
func NewGoosePowers(initialSize float64) GoosePowers {
	return GoosePowers{Size: initialSize, Drag: 1}
}
