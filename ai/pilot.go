package ai

import (
	"rsnake/game/types"
)

// View is the read-only part of a game the pilot looks at.
type View interface {
	Head() types.Point
	Fruit() types.Point
	Facing() types.Direction
	Grid() types.Grid
	Score() uint64
	IsDanger(dir types.Direction) bool
}

// Controller is a View that also accepts steering commands.
type Controller interface {
	View
	ChangeDirection(dir types.Direction) bool
}

// State summarises what the snake senses around its head.
type State struct {
	RelativeFruitDir [2]int  // sign of the wrapped offset to the fruit (x, y)
	FruitDistance    int     // wrapped Manhattan distance to the fruit
	Dangers          [4]bool // indexed like types.Directions: up, right, down, left
}

// Sense builds the State for the current tick.
func Sense(v View) State {
	head, fruit, grid := v.Head(), v.Fruit(), v.Grid()
	dx := wrappedOffset(head.X, fruit.X, grid.Width)
	dy := wrappedOffset(head.Y, fruit.Y, grid.Height)

	s := State{
		RelativeFruitDir: [2]int{sign(dx), sign(dy)},
		FruitDistance:    abs(dx) + abs(dy),
	}
	for i, d := range types.Directions {
		s.Dangers[i] = v.IsDanger(d)
	}
	return s
}

// Pilot steers greedily towards the fruit while avoiding cells that would
// end the game on the next tick.
type Pilot struct{}

func NewPilot() *Pilot {
	return &Pilot{}
}

// Decide picks the direction for the next tick among going straight,
// turning left and turning right. Ties keep the current facing, then prefer
// the left turn. When every move is deadly the facing is kept.
func (p *Pilot) Decide(v View) types.Direction {
	state := Sense(v)
	facing := v.Facing()
	head, fruit, grid := v.Head(), v.Fruit(), v.Grid()

	best := facing
	bestDist := -1
	for _, d := range candidates(facing) {
		if state.Dangers[dirIndex(d)] {
			continue
		}
		next := grid.Wrap(head.Add(d.Delta()))
		dist := Distance(next, fruit, grid)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Drive decides and applies the next direction.
func (p *Pilot) Drive(c Controller) types.Direction {
	d := p.Decide(c)
	c.ChangeDirection(d)
	return c.Facing()
}

// candidates lists the relative moves: straight, left, right.
func candidates(facing types.Direction) [3]types.Direction {
	return [3]types.Direction{facing, facing.TurnLeft(), facing.TurnRight()}
}

func dirIndex(d types.Direction) int {
	for i, x := range types.Directions {
		if x == d {
			return i
		}
	}
	return 0
}
