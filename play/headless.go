package play

import (
	"rsnake/ai"
	"rsnake/config"
	"rsnake/game"
)

// RunHeadless plays autopilot games back to back without any display.
func RunHeadless(g *game.Game, cfg *config.Config, tr *Tracker) error {
	pilot := ai.NewPilot()
	for i := 0; i < cfg.Headless.Games; i++ {
		if i > 0 {
			g.Restart()
		}
		tr.Begin()
		playOut(g, pilot, cfg.Headless.MaxSteps, tr)
	}
	return nil
}

// playOut steps one game until it ends or maxSteps is reached (0 = no limit).
func playOut(g *game.Game, pilot *ai.Pilot, maxSteps int, tr *Tracker) {
	for g.IsRunning() {
		if maxSteps > 0 && g.Steps() >= maxSteps {
			tr.Finish(g, reasonStepLimit)
			return
		}
		pilot.Drive(g)
		tr.Observe(g, g.Step())
	}
}
