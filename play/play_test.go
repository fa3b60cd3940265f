package play

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rsnake/config"
	"rsnake/game"
	"rsnake/game/types"
	"rsnake/stats"

	"github.com/gdamore/tcell/v2"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Grid.Width, cfg.Grid.Height = 8, 6
	cfg.Tick.IntervalMS = 5
	cfg.Headless.Games = 3
	cfg.Headless.MaxSteps = 200
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config) *game.Game {
	t.Helper()
	g, err := NewGame(cfg, 42, discardLogger())
	require.NoError(t, err)
	return g
}

// stepClock advances one second per call.
func stepClock() func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestTrackerRecordsEndedGames(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), nil, discardLogger())
	tr.now = stepClock()

	tr.Begin()
	tr.Observe(g, game.Moved)
	tr.Observe(g, game.Ate)
	assert.Equal(t, 0, tr.Session().GamesPlayed())

	tr.Observe(g, game.Crashed)
	tr.Observe(g, game.Cleared)
	require.Equal(t, 2, tr.Session().GamesPlayed())
	assert.Equal(t, reasonCrashed, tr.Session().Games[0].Reason)
	assert.Equal(t, reasonCleared, tr.Session().Games[1].Reason)
	assert.Equal(t, 1.0, tr.Session().Games[0].Duration)
}

func TestTrackerRestart(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), nil, discardLogger())

	t.Run("fresh game is not recorded", func(t *testing.T) {
		tr.Restart(g)
		assert.Equal(t, 0, tr.Session().GamesPlayed())
	})

	t.Run("game in progress is abandoned", func(t *testing.T) {
		g.ChangeDirection(types.Down)
		g.Step()
		require.True(t, g.IsRunning())

		tr.Restart(g)
		require.Equal(t, 1, tr.Session().GamesPlayed())
		assert.Equal(t, reasonAbandoned, tr.Session().Games[0].Reason)
		assert.Equal(t, 1, tr.Session().Games[0].Steps)
		assert.Equal(t, 0, g.Steps())
		assert.True(t, g.IsRunning())
	})
}

func TestRunHeadless(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	out, err := stats.NewOutputManager(dir)
	require.NoError(t, err)

	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), out, discardLogger())

	require.NoError(t, Run(tr, func() error {
		return RunHeadless(g, cfg, tr)
	}))
	require.NoError(t, out.Close())

	games := tr.Session().Games
	require.Len(t, games, cfg.Headless.Games)
	for _, rec := range games {
		assert.Contains(t, []string{reasonCrashed, reasonCleared, reasonStepLimit}, rec.Reason)
		assert.LessOrEqual(t, rec.Steps, cfg.Headless.MaxSteps)
		eaten := rec.Length - 1
		if rec.Reason == reasonCrashed {
			// the crashing head was pushed onto the body without a trim
			eaten--
		}
		assert.Equal(t, uint64(eaten)*types.FruitScore, rec.Score)
	}

	f, err := os.Open(filepath.Join(dir, "games.csv"))
	require.NoError(t, err)
	defer f.Close()
	var loaded []stats.GameRecord
	require.NoError(t, gocsv.UnmarshalFile(f, &loaded))
	assert.Equal(t, games, loaded)
}

func TestNewGameAppliesStartDirection(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.StartDirection = "down"

	g, err := NewGame(cfg, 1, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, types.Down, g.Facing())
	assert.Equal(t, 0, g.Steps())

	g.Step()
	assert.Equal(t, types.Point{X: 0, Y: 1}, g.Head())
}

func TestNewGameRejectsInvalidGrid(t *testing.T) {
	cfg := testConfig(t)
	cfg.Grid.Width = 0

	_, err := NewGame(cfg, 1, discardLogger())
	assert.ErrorIs(t, err, types.ErrInvalidGrid)
}

func TestRunWritesSummaryWhenFrontendFails(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	out, err := stats.NewOutputManager(dir)
	require.NoError(t, err)

	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), out, discardLogger())
	errFrontend := errors.New("window closed unexpectedly")

	err = Run(tr, func() error {
		tr.Begin()
		tr.Observe(g, game.Crashed)
		return errFrontend
	})
	assert.ErrorIs(t, err, errFrontend)

	f, err := os.Open(filepath.Join(dir, "summary.csv"))
	require.NoError(t, err)
	defer f.Close()
	var sums []stats.Summary
	require.NoError(t, gocsv.UnmarshalFile(f, &sums))
	require.Len(t, sums, 1)
	assert.Equal(t, 1, sums[0].GamesPlayed)
	assert.Equal(t, tr.Session().ID, sums[0].SessionID)
}

func TestPlayOutStopsAtStepLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Headless.Games = 1
	cfg.Headless.MaxSteps = 1
	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), nil, discardLogger())

	require.NoError(t, RunHeadless(g, cfg, tr))
	require.Equal(t, 1, tr.Session().GamesPlayed())
	rec := tr.Session().Games[0]
	assert.Equal(t, reasonStepLimit, rec.Reason)
	assert.Equal(t, 1, rec.Steps)
	assert.True(t, g.IsRunning())
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalLoopQuits(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), nil, discardLogger())
	screen := newSimScreen(t)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- TerminalLoop(g, screen, cfg, tr) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not quit")
	}
}

func TestTerminalLoopAutopilotPlays(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.Autopilot = true
	g := newTestGame(t, cfg)
	tr := NewTracker(stats.NewSession(), nil, discardLogger())
	screen := newSimScreen(t)

	done := make(chan error, 1)
	go func() { done <- TerminalLoop(g, screen, cfg, tr) }()

	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not quit")
	}
	assert.Positive(t, g.Steps())
}
