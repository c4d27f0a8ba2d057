package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-goose/core"
)

// Poller reads terminal events on its own goroutine and emits intents
type Poller struct {
	screen   tcell.Screen
	keyTable *KeyTable
	intents  chan Intent
	lastDown bool
}

// NewPoller creates a poller over screen
func NewPoller(screen tcell.Screen) *Poller {
	return &Poller{
		screen:   screen,
		keyTable: DefaultKeyTable(),
		intents:  make(chan Intent, 16),
	}
}

// Intents returns the channel intents are delivered on, closed when polling ends
func (p *Poller) Intents() <-chan Intent {
	return p.intents
}

// Start begins polling; it ends when the screen is finalized
func (p *Poller) Start() {
	core.Go(p.loop)
}

func (p *Poller) loop() {
	defer close(p.intents)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		intent := p.filter(ev)
		if intent.Type == IntentNone {
			continue
		}
		p.intents <- intent
	}
}

// filter translates ev and collapses a held mouse button into one press
func (p *Poller) filter(ev tcell.Event) Intent {
	if m, ok := ev.(*tcell.EventMouse); ok {
		down := m.Buttons()&tcell.Button1 != 0
		wasDown := p.lastDown
		p.lastDown = down
		if !down || wasDown {
			return Intent{}
		}
	}
	return p.keyTable.Translate(ev)
}
