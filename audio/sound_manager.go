// Package audio synthesizes the game's sound cues with beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/duck-goose/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDuration = 100 * time.Millisecond
	quackDuration         = 180 * time.Millisecond
	honkDuration          = 350 * time.Millisecond
	whooshDuration        = 400 * time.Millisecond
	buzzDuration          = 500 * time.Millisecond
)

// Cue is one sound effect
type Cue int

const (
	CueNone Cue = iota
	CueQuack
	CueHonk
	CueWhoosh
	CueBuzz
)

// SoundManager plays cues in response to routed game events
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	chaseLoop   *beep.Ctrl
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.chaseLoop != nil {
		sm.chaseLoop.Paused = true
		sm.chaseLoop = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.chaseLoop != nil {
		sm.chaseLoop.Paused = true
	}
}

// Play mixes in a one-shot cue
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	var s beep.Streamer
	switch cue {
	case CueQuack:
		s = beep.Take(sampleRate.N(quackDuration), NewQuackGenerator(sampleRate))
	case CueHonk:
		s = beep.Take(sampleRate.N(honkDuration), NewHonkGenerator(sampleRate))
	case CueWhoosh:
		s = beep.Take(sampleRate.N(whooshDuration), NewWhooshGenerator(sampleRate))
	case CueBuzz:
		s = beep.Take(sampleRate.N(buzzDuration), NewBuzzGenerator(sampleRate, 120))
	default:
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartChase loops the low chase drone until StopChase
func (sm *SoundManager) StartChase() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	// If already playing, don't restart
	if sm.chaseLoop != nil && !sm.chaseLoop.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, NewDroneGenerator(sampleRate))}
	sm.chaseLoop = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopChase silences the chase drone
func (sm *SoundManager) StopChase() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.chaseLoop != nil {
		speaker.Lock()
		sm.chaseLoop.Paused = true
		speaker.Unlock()
		sm.chaseLoop = nil
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDuckSpawned,
		event.EventGooseSpawned,
		event.EventBurstStarted,
		event.EventDuckCaught,
		event.EventChaseEnded,
		event.EventGameOver,
	}
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if cue := CueFor(ev.Type); cue != CueNone {
		sm.Play(cue)
	}

	switch ev.Type {
	case event.EventGooseSpawned:
		sm.StartChase()
	case event.EventDuckCaught, event.EventChaseEnded, event.EventGameOver:
		sm.StopChase()
	}
}

// CueFor maps an event to its one-shot cue
func CueFor(et event.EventType) Cue {
	switch et {
	case event.EventDuckSpawned:
		return CueQuack
	case event.EventGooseSpawned:
		return CueHonk
	case event.EventBurstStarted:
		return CueWhoosh
	case event.EventDuckCaught:
		return CueBuzz
	default:
		return CueNone
	}
}
