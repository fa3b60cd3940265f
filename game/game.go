package game

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rsnake/game/entity"
	"rsnake/game/manager"
	"rsnake/game/types"

	"golang.org/x/exp/rand"
)

// Source yields uniform random integers in [0, n). It drives fruit placement.
type Source = manager.Source

// StepResult describes what a single Step did.
type StepResult int

const (
	// Frozen means the game was not running and nothing changed.
	Frozen StepResult = iota
	// Moved means the snake slid forward without eating.
	Moved
	// Ate means the snake ate the fruit and grew by one segment.
	Ate
	// Crashed means the head ran into the body and the game stopped.
	Crashed
	// Cleared means the snake ate the fruit and no free cell was left for a new one.
	Cleared
)

func (r StepResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Crashed:
		return "crashed"
	case Cleared:
		return "cleared"
	default:
		return "frozen"
	}
}

type options struct {
	rng    Source
	logger *slog.Logger
}

// Option configures a Game.
type Option func(*options)

// WithRand injects the random source used for fruit placement.
func WithRand(rng Source) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed uses a deterministic pseudo-random source.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for game events. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Game is the state of a single snake on a wrapping grid.
// It is not safe for concurrent use.
type Game struct {
	grid         types.Grid
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	fruitMgr     *manager.FruitManager
	stateMgr     *manager.StateManager
	logger       *slog.Logger
}

// New creates a game with the head at the origin facing right, an empty
// body and a fruit on a random cell.
func New(width, height int, opts ...Option) (*Game, error) {
	grid := types.Grid{Width: width, Height: height}
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	g := &Game{
		grid:         grid,
		snake:        entity.NewSnake(grid, types.Point{X: 0, Y: 0}, types.Right),
		collisionMgr: manager.NewCollisionManager(grid),
		fruitMgr:     manager.NewFruitManager(grid, o.rng),
		stateMgr:     manager.NewStateManager(),
		logger:       o.logger.With("component", "game"),
	}
	return g, nil
}

// Restart clears the score and the body and resumes the game. Head, facing
// and fruit stay where they are.
func (g *Game) Restart() {
	g.stateMgr.Reset()
	g.snake.Reset()
	g.logger.Debug("restart", "head", g.snake.Head, "fruit", g.fruitMgr.Fruit())
}

// Step advances the simulation by one tick.
func (g *Game) Step() StepResult {
	if !g.stateMgr.Running() {
		return Frozen
	}
	g.stateMgr.Tick()

	next := g.collisionMgr.NextHead(g.snake.Head, g.snake.Facing)
	g.snake.Advance(next)

	switch g.collisionMgr.Classify(g.snake, g.fruitMgr.Fruit()) {
	case manager.SelfCollision:
		g.stateMgr.Stop(false)
		g.logger.Debug("crashed", "head", g.snake.Head, "score", g.stateMgr.Score(), "length", g.snake.Len())
		return Crashed
	case manager.FruitCollision:
		g.stateMgr.AddFruit()
		if !g.fruitMgr.Relocate(g.snake) {
			g.stateMgr.Stop(true)
			g.logger.Debug("board cleared", "score", g.stateMgr.Score())
			return Cleared
		}
		g.logger.Debug("fruit eaten", "score", g.stateMgr.Score(), "fruit", g.fruitMgr.Fruit())
		return Ate
	default:
		g.snake.Trim()
		return Moved
	}
}

// ChangeDirection turns the snake. Once the score is non-zero, a request to
// reverse along the current axis is ignored. It reports whether the facing
// direction was updated.
func (g *Game) ChangeDirection(d types.Direction) bool {
	facing := g.snake.Facing
	if g.stateMgr.Score() != 0 && d.SameAxis(facing) && d != facing {
		return false
	}
	g.snake.Facing = d
	return true
}

func (g *Game) Score() uint64 {
	return g.stateMgr.Score()
}

func (g *Game) IsRunning() bool {
	return g.stateMgr.Running()
}

// Cleared reports whether the game ended because the snake filled the grid.
func (g *Game) Cleared() bool {
	return g.stateMgr.Cleared()
}

// Steps returns the number of ticks taken since the last restart.
func (g *Game) Steps() int {
	return g.stateMgr.Steps()
}

func (g *Game) HighScore() uint64 {
	return g.stateMgr.HighScore()
}

// ScoreHistory returns the final score of every finished game, oldest first.
func (g *Game) ScoreHistory() []uint64 {
	return g.stateMgr.ScoreHistory()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Head() types.Point {
	return g.snake.Head
}

// Body returns a copy of the body, oldest segment first.
func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

// Length returns the number of segments including the head.
func (g *Game) Length() int {
	return g.snake.Len()
}

func (g *Game) Fruit() types.Point {
	return g.fruitMgr.Fruit()
}

func (g *Game) Facing() types.Direction {
	return g.snake.Facing
}

// IsDanger reports whether the head moving one cell in dir would crash.
func (g *Game) IsDanger(dir types.Direction) bool {
	return g.collisionMgr.IsDanger(g.snake, g.snake.Head.Add(dir.Delta()))
}

// Board returns the occupancy of every cell in row-major order.
// A cell is occupied by the head, the fruit or a body segment.
func (g *Game) Board() []bool {
	board := make([]bool, g.grid.Cells())
	for _, p := range g.snake.Body() {
		board[g.grid.Index(p)] = true
	}
	board[g.grid.Index(g.snake.Head)] = true
	board[g.grid.Index(g.fruitMgr.Fruit())] = true
	return board
}

// RGB returns three bytes per cell in the same order as Board. Occupied
// cells are green while running and black once the game is over.
func (g *Game) RGB() []byte {
	board := g.Board()
	rgb := make([]byte, 0, len(board)*3)

	occupied := types.SnakeColor
	if !g.stateMgr.Running() {
		occupied = types.GameOverColor
	}
	for _, cell := range board {
		c := types.EmptyColor
		if cell {
			c = occupied
		}
		rgb = append(rgb, c.R, c.G, c.B)
	}
	return rgb
}

// String draws the board as text, one row per line: '@' head, 'o' body,
// '*' fruit, '.' empty.
func (g *Game) String() string {
	cells := make([]byte, g.grid.Cells())
	for i := range cells {
		cells[i] = '.'
	}
	cells[g.grid.Index(g.fruitMgr.Fruit())] = '*'
	for _, p := range g.snake.Body() {
		cells[g.grid.Index(p)] = 'o'
	}
	cells[g.grid.Index(g.snake.Head)] = '@'

	var sb strings.Builder
	for y := 0; y < g.grid.Height; y++ {
		sb.Write(cells[y*g.grid.Width : (y+1)*g.grid.Width])
		sb.WriteByte('\n')
	}
	return sb.String()
}
