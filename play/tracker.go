package play

import (
	"errors"
	"log/slog"
	"time"

	"rsnake/game"
	"rsnake/stats"
)

// Reasons a game ends, as recorded in telemetry.
const (
	reasonCrashed   = "crashed"
	reasonCleared   = "cleared"
	reasonStepLimit = "step_limit"
	reasonAbandoned = "abandoned"
)

// Tracker records every finished game of the session.
type Tracker struct {
	session *stats.Session
	out     *stats.OutputManager
	logger  *slog.Logger
	start   time.Time
	now     func() time.Time
}

// Session returns the session being recorded.
func (t *Tracker) Session() *stats.Session {
	return t.session
}

func NewTracker(session *stats.Session, out *stats.OutputManager, logger *slog.Logger) *Tracker {
	return &Tracker{
		session: session,
		out:     out,
		logger:  logger,
		start:   time.Now(),
		now:     time.Now,
	}
}

// Begin marks the start of a new game.
func (t *Tracker) Begin() {
	t.start = t.now()
}

// Finish records the game in its current state.
func (t *Tracker) Finish(g *game.Game, reason string) {
	rec := t.session.AddGame(g.Score(), g.Length(), g.Steps(), reason, t.start, t.now())
	t.logger.Info("game over",
		"game", rec.Game,
		"score", rec.Score,
		"length", rec.Length,
		"steps", rec.Steps,
		"reason", rec.Reason,
	)
	if err := t.out.WriteGame(rec); err != nil {
		t.logger.Error("failed to write game record", "error", err)
	}
}

// Observe records the game if the step ended it.
func (t *Tracker) Observe(g *game.Game, res game.StepResult) {
	switch res {
	case game.Crashed:
		t.Finish(g, reasonCrashed)
	case game.Cleared:
		t.Finish(g, reasonCleared)
	}
}

// Restart records an unfinished game as abandoned, then restarts.
func (t *Tracker) Restart(g *game.Game) {
	if g.IsRunning() && g.Steps() > 0 {
		t.Finish(g, reasonAbandoned)
	}
	g.Restart()
	t.Begin()
}

// Close logs and writes the session summary, then closes the output.
func (t *Tracker) Close() error {
	sum := t.session.Summary()
	t.logger.Info("session summary",
		"session", sum.SessionID,
		"games", sum.GamesPlayed,
		"average_score", sum.AverageScore,
		"median_score", sum.MedianScore,
		"max_score", sum.MaxScore,
		"max_length", sum.MaxLength,
	)
	return errors.Join(t.out.WriteSummary(sum), t.out.Close())
}
