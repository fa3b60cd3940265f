package main

import (
	"time"

	"rsnake/ai"
	"rsnake/config"
	"rsnake/game"
	"rsnake/play"
	"rsnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func runWindow(g *game.Game, cfg *config.Config, tr *play.Tracker) error {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	renderer := ui.NewRenderer(cfg.Screen.CellSize)
	pilot := ai.NewPilot()
	autopilot := cfg.Game.Autopilot
	lastUpdate := time.Now()
	updateInterval := cfg.TickInterval()
	tr.Begin()

	for !rl.WindowShouldClose() {
		in := ui.ReadInput()
		if in.ToggleAutopilot {
			autopilot = !autopilot
		}
		if in.Restart {
			tr.Restart(g)
		}
		if in.Turn && !autopilot {
			g.ChangeDirection(in.Direction)
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= updateInterval {
			if autopilot {
				pilot.Drive(g)
			}
			tr.Observe(g, g.Step())
			lastUpdate = time.Now()
		}

		renderer.Draw(g, autopilot)
	}
	return nil
}
