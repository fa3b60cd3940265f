package play

import (
	"fmt"
	"time"

	"rsnake/ai"
	"rsnake/config"
	"rsnake/game"
	"rsnake/term"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal plays in the current terminal until the player quits.
func RunTerminal(g *game.Game, cfg *config.Config, tr *Tracker) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return TerminalLoop(g, screen, cfg, tr)
}

// TerminalLoop owns the game: key events arrive over a channel from the
// polling goroutine and steps happen on the ticker, both on this goroutine.
func TerminalLoop(g *game.Game, screen tcell.Screen, cfg *config.Config, tr *Tracker) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	renderer := term.NewRenderer(screen)
	pilot := ai.NewPilot()
	autopilot := cfg.Game.Autopilot
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()
	tr.Begin()

	renderer.Draw(g, autopilot)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				cmd, dir := term.KeyCommand(ev)
				switch cmd {
				case term.Quit:
					return nil
				case term.Restart:
					tr.Restart(g)
				case term.ToggleAutopilot:
					autopilot = !autopilot
				case term.Turn:
					if !autopilot {
						g.ChangeDirection(dir)
					}
				}
			}
		case <-ticker.C:
			if autopilot {
				pilot.Drive(g)
			}
			tr.Observe(g, g.Step())
		}
		renderer.Draw(g, autopilot)
	}
}
