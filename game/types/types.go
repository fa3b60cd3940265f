package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid is returned when a grid has a non-positive dimension.
var ErrInvalidGrid = errors.New("invalid grid dimensions")

// FruitScore is the amount added to the score for every fruit eaten.
const FruitScore = 10

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four cardinal directions the snake can face.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// SameAxis reports whether d and o move along the same axis.
func (d Direction) SameAxis(o Direction) bool {
	return (d.Horizontal() && o.Horizontal()) || (d.Vertical() && o.Vertical())
}

// Delta converts a Direction into a unit displacement. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Right:
		return Up
	case Down:
		return Right
	default:
		return Down
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Directions lists every direction in a stable order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return Right, fmt.Errorf("unknown direction %q", s)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Validate rejects grids with a non-positive dimension.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index returns the row-major index of p. p must be inside the grid.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// PointAt is the inverse of Index.
func (g Grid) PointAt(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// Wrap folds p back onto the grid, treating each axis as a torus.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.Width), Y: wrap(p.Y, g.Height)}
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Palette used by the pixel buffer.
var (
	SnakeColor    = Color{R: 0, G: 200, B: 0}
	GameOverColor = Color{R: 0, G: 0, B: 0}
	EmptyColor    = Color{R: 0x60, G: 0x60, B: 0x60}
)
