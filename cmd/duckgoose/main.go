package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/duck-goose/audio"
	"github.com/lixenwraith/duck-goose/config"
	"github.com/lixenwraith/duck-goose/core"
	"github.com/lixenwraith/duck-goose/engine"
	"github.com/lixenwraith/duck-goose/input"
	"github.com/lixenwraith/duck-goose/parameter"
	"github.com/lixenwraith/duck-goose/render"
	"github.com/lixenwraith/duck-goose/scoreboard"
	"github.com/lixenwraith/duck-goose/status"
	"github.com/lixenwraith/duck-goose/storage"
	"github.com/lixenwraith/duck-goose/system"
)

var (
	configFlag = flag.String("config", "", "Tuning config TOML path")
	dbFlag     = flag.String("db", "duckgoose.db", "Store path: database file for sqlite, directory for file")
	storeFlag  = flag.String("store", storage.BackendSQLite, "Store backend: sqlite, file, memory")
	httpFlag   = flag.String("http", "", "Scoreboard listen address, empty disables")
	debugFlag  = flag.Bool("debug", false, "Log to logs/duckgoose.log and show status line")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the clock")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "duckgoose: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	store, closeStore, err := storage.Open(*storeFlag, *dbFlag)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetRestoreHook(screen.Fini)
	defer screen.Fini()

	viewport := engine.NewSharedViewport(render.ViewportFor(screen.Size()))
	opts := []engine.Option{
		engine.WithStore(store),
		engine.WithViewport(viewport),
	}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithSource(rand.New(rand.NewSource(*seedFlag))))
	}

	game, err := engine.NewGame(cfg, opts...)
	if err != nil {
		return err
	}
	system.RegisterDefaults(game)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	muted := *muteFlag
	sound.SetMuted(muted)

	clockScheduler, updateDone := engine.NewClockScheduler(game, engine.SystemTimeProvider{}, parameter.ClockInterval)
	clockScheduler.RegisterEventHandler(sound)
	clockScheduler.Start()
	defer clockScheduler.Stop()

	if *httpFlag != "" {
		sb := scoreboard.NewServer(game)
		sb.Start(*httpFlag)
		defer func() {
			if err := sb.Stop(); err != nil {
				log.Printf("scoreboard shutdown: %v", err)
			}
		}()
	}

	renderer := render.NewTerminalRenderer(screen)
	poller := input.NewPoller(screen)
	poller.Start()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case in, ok := <-poller.Intents():
			if !ok {
				return nil
			}
			switch in.Type {
			case input.IntentPress:
				game.Press()
			case input.IntentQuit:
				return nil
			case input.IntentToggleMute:
				muted = !muted
				sound.SetMuted(muted)
			case input.IntentResize:
				renderer.Resize(in.Cols, in.Rows)
				viewport.Resize(render.ViewportFor(in.Cols, in.Rows))
				screen.Sync()
			}
			dirty = true

		case <-updateDone:
			dirty = true

		case <-frameTicker.C:
			if !dirty {
				continue
			}
			if *debugFlag {
				renderer.SetStatus(statusLine(game.Status(), muted))
			}
			renderer.RenderFrame(game.Snapshot())
			dirty = false
		}
	}
}

// statusLine is the debug readout drawn at the right of the HUD
func statusLine(reg *status.Registry, muted bool) string {
	line := fmt.Sprintf("%s t=%d r=%d %s",
		reg.Strings.Get(status.KeyState).Load(),
		reg.Ints.Get(status.KeyTicks).Load(),
		reg.Ints.Get(status.KeyRounds).Load(),
		engine.RoundID(reg.Strings.Get(status.KeyRoundID).Load()).Short(),
	)
	if muted {
		line += " [muted]"
	}
	return line
}
