// Package play runs games on top of a frontend and records the session.
package play

import (
	"errors"
	"log/slog"

	"rsnake/config"
	"rsnake/game"
)

// NewGame builds a game on the configured grid, seeded with seed, and turns
// the snake to the configured start direction before the first tick.
func NewGame(cfg *config.Config, seed uint64, logger *slog.Logger) (*game.Game, error) {
	grid := cfg.GridDims()
	g, err := game.New(grid.Width, grid.Height, game.WithSeed(seed), game.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	g.ChangeDirection(cfg.StartFacing())
	return g, nil
}

// Run calls frontend and closes the tracker afterwards, so the session
// summary is written even when the frontend fails.
func Run(tr *Tracker, frontend func() error) (err error) {
	defer func() {
		err = errors.Join(err, tr.Close())
	}()
	return frontend()
}
