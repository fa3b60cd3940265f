package ai

import "rsnake/game/types"

// Distance is the Manhattan distance between two points on a wrapping grid.
func Distance(p1, p2 types.Point, grid types.Grid) int {
	return abs(wrappedOffset(p1.X, p2.X, grid.Width)) + abs(wrappedOffset(p1.Y, p2.Y, grid.Height))
}

// wrappedOffset returns the shortest signed step count from a to b on an axis of size n.
func wrappedOffset(a, b, n int) int {
	d := b - a
	if d > n/2 {
		d -= n
	} else if d < -n/2 {
		d += n
	}
	return d
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
