package engine

import "sync"

// Viewport reports the playfield size in logical units
// Read once per spawn and once per simulation tick
type Viewport interface {
	Bounds() (w, h float64)
}

// FixedViewport is a constant-size playfield
type FixedViewport struct {
	W, H float64
}

func (v FixedViewport) Bounds() (float64, float64) { return v.W, v.H }

// SharedViewport is resized from the input goroutine and read by the game
type SharedViewport struct {
	mu   sync.RWMutex
	w, h float64
}

// NewSharedViewport creates a viewport with an initial size
func NewSharedViewport(w, h float64) *SharedViewport {
	return &SharedViewport{w: w, h: h}
}

// Resize updates the playfield size
func (v *SharedViewport) Resize(w, h float64) {
	v.mu.Lock()
	v.w, v.h = w, h
	v.mu.Unlock()
}

func (v *SharedViewport) Bounds() (float64, float64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.w, v.h
}
