package ui

import (
	"rsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the keyboard state sampled once per frame.
type Input struct {
	Turn            bool
	Direction       types.Direction
	Restart         bool
	ToggleAutopilot bool
}

var directionKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// ReadInput polls raylib for the keys pressed since the last frame.
// The last direction key in directionKeys order wins.
func ReadInput() Input {
	var in Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Turn = true
			in.Direction = k.dir
		}
	}
	in.Restart = rl.IsKeyPressed(rl.KeyR)
	in.ToggleAutopilot = rl.IsKeyPressed(rl.KeyP)
	return in
}
