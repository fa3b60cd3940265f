package manager

import (
	"rsnake/game/entity"
	"rsnake/game/types"
)

// Source yields uniform random integers in [0, n).
type Source interface {
	Intn(n int) int
}

// FruitManager owns the single fruit on the board.
type FruitManager struct {
	grid  types.Grid
	rng   Source
	fruit types.Point
	free  []int
}

// NewFruitManager places the first fruit anywhere on the grid.
func NewFruitManager(grid types.Grid, rng Source) *FruitManager {
	fm := &FruitManager{
		grid: grid,
		rng:  rng,
	}
	fm.fruit = grid.PointAt(rng.Intn(grid.Cells()))
	return fm
}

func (fm *FruitManager) Fruit() types.Point {
	return fm.fruit
}

// Relocate moves the fruit to a uniformly chosen cell the snake does not
// occupy. It returns false, leaving the fruit in place, when no such cell exists.
func (fm *FruitManager) Relocate(snake *entity.Snake) bool {
	fm.free = fm.free[:0]
	for i := 0; i < fm.grid.Cells(); i++ {
		if !snake.Occupies(fm.grid.PointAt(i)) {
			fm.free = append(fm.free, i)
		}
	}
	if len(fm.free) == 0 {
		return false
	}
	fm.fruit = fm.grid.PointAt(fm.free[fm.rng.Intn(len(fm.free))])
	return true
}
