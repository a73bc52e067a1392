// Command dockdemo is an interactive showcase of the dock package: two dock
// spaces of sample panels that can be dragged, split, resized and pruned
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/dockspace/audio"
	"github.com/lixenwraith/dockspace/config"
	"github.com/lixenwraith/dockspace/terminal"
)

const frameInterval = 33 * time.Millisecond

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/dockdemo.log")
	soundFlag  = flag.Bool("sound", false, "Play audio cues for dock events")
	groupFlag  = flag.Bool("group", false, "Share one dock group so tabs move between spaces")
)

func main() {
	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDOCKDEMO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockdemo: %v\n", err)
		os.Exit(1)
	}

	cues := startAudio(cfg, *soundFlag)
	if cues != nil {
		defer cues.Cleanup()
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	a, err := newApp(term, cfg, cues, *groupFlag)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "dockdemo: %v\n", err)
		os.Exit(1)
	}
	a.bell = *soundFlag || cfg.Audio.Enabled

	loop(term, a)
	log.Printf("[demo] exit")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log.Printf("[demo] config loaded from %s", path)
	return cfg, nil
}

// startAudio returns a running cue manager, or nil when sound is off or no device opens
func startAudio(cfg *config.Config, force bool) *audio.CueManager {
	if !force && !cfg.Audio.Enabled {
		return nil
	}
	cues := audio.NewCueManager(cfg.Audio.Volume)
	if err := cues.Initialize(); err != nil {
		log.Printf("[demo] audio unavailable, using terminal bell: %v", err)
		return nil
	}
	return cues
}

// loop polls input on its own goroutine and renders at a fixed rate
// Events arriving between ticks are batched into the next frame
func loop(term terminal.Terminal, a *app) {
	eventCh := make(chan terminal.Event, 16)
	go func() {
		for {
			ev := term.PollEvent()
			eventCh <- ev
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var pending []terminal.Event
	for {
		select {
		case ev := <-eventCh:
			pending = append(pending, ev)
			// Mouse motion floods the channel; drain before rendering
		drain:
			for {
				select {
				case ev := <-eventCh:
					pending = append(pending, ev)
				default:
					break drain
				}
			}
		case <-ticker.C:
		}

		if !a.frame(pending) {
			return
		}
		pending = pending[:0]
	}
}
