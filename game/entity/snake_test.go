package entity_test

import (
	"testing"

	"rsnake/game/entity"
	"rsnake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestSnakeAdvanceAndTrim(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	s := entity.NewSnake(grid, types.Point{X: 0, Y: 0}, types.Right)

	s.Advance(types.Point{X: 1, Y: 0})
	s.Advance(types.Point{X: 2, Y: 0})
	assert.Equal(t, []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, s.Body())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.BodyContains(types.Point{X: 0, Y: 0}))
	assert.False(t, s.BodyContains(types.Point{X: 2, Y: 0}))
	assert.True(t, s.Occupies(types.Point{X: 2, Y: 0}))

	s.Trim()
	assert.Equal(t, []types.Point{{X: 1, Y: 0}}, s.Body())
	assert.False(t, s.BodyContains(types.Point{X: 0, Y: 0}))
	assert.Equal(t, 2, s.Len())
}

func TestSnakeTrimEmpty(t *testing.T) {
	s := entity.NewSnake(types.Grid{Width: 3, Height: 3}, types.Point{}, types.Up)
	s.Trim()
	assert.Empty(t, s.Body())
	assert.Equal(t, 1, s.Len())
}

func TestSnakeResetKeepsHead(t *testing.T) {
	s := entity.NewSnake(types.Grid{Width: 4, Height: 4}, types.Point{}, types.Down)
	s.Advance(types.Point{X: 0, Y: 1})
	s.Advance(types.Point{X: 0, Y: 2})

	s.Reset()
	assert.Empty(t, s.Body())
	assert.Equal(t, types.Point{X: 0, Y: 2}, s.Head)
	assert.Equal(t, types.Down, s.Facing)
	assert.False(t, s.BodyContains(types.Point{X: 0, Y: 1}))
}

func TestSnakeBodyContainsOutsideGrid(t *testing.T) {
	s := entity.NewSnake(types.Grid{Width: 2, Height: 2}, types.Point{}, types.Right)
	assert.False(t, s.BodyContains(types.Point{X: -1, Y: 0}))
	assert.False(t, s.BodyContains(types.Point{X: 5, Y: 5}))
}
