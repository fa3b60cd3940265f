package manager

import (
	"rsnake/game/entity"
	"rsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	FruitCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case FruitCollision:
		return "fruit"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns where the head lands after one step in dir, wrapped onto the grid.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	return cm.grid.Wrap(head.Add(dir.Delta()))
}

// Classify checks the snake's current head against its own body and the fruit.
// Self collision takes priority over fruit.
func (cm *CollisionManager) Classify(snake *entity.Snake, fruit types.Point) CollisionType {
	if snake.BodyContains(snake.Head) {
		return SelfCollision
	}
	if snake.Head == fruit {
		return FruitCollision
	}
	return NoCollision
}

// IsDanger reports whether moving the head to pos would end the game.
// The body is checked before the oldest segment is trimmed, so the tail
// cell counts as occupied, and so does the current head.
func (cm *CollisionManager) IsDanger(snake *entity.Snake, pos types.Point) bool {
	pos = cm.grid.Wrap(pos)
	return pos == snake.Head || snake.BodyContains(pos)
}
