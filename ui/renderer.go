package ui

import (
	"fmt"

	"rsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // padding around game area
	hudHeight     = 40 // space above the grid for the score line
)

// Frame is what the renderer reads from the game each frame.
type Frame interface {
	Grid() types.Grid
	RGB() []byte
	Score() uint64
	HighScore() uint64
	IsRunning() bool
	Cleared() bool
}

type Renderer struct {
	maxCellSize     int32
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

// NewRenderer must be called after rl.InitWindow.
func NewRenderer(maxCellSize int) *Renderer {
	r := &Renderer{maxCellSize: int32(maxCellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2 - hudHeight

	cellW := availableWidth / int32(grid.Width)
	cellH := availableHeight / int32(grid.Height)
	r.cellSize = max(min(cellW, cellH, r.maxCellSize), 1)

	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)

	// center the grid below the HUD
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.totalGridHeight)/2
}

// Draw paints one frame from the game's RGB buffer.
func (r *Renderer) Draw(f Frame, autopilot bool) {
	r.UpdateDimensions()
	grid := f.Grid()
	r.layout(grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	rgb := f.RGB()
	for i := 0; i < grid.Cells(); i++ {
		p := grid.PointAt(i)
		color := rl.Color{R: rgb[i*3], G: rgb[i*3+1], B: rgb[i*3+2], A: 255}
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}

	r.drawHUD(f, autopilot)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(f Frame, autopilot bool) {
	fontSize := int32(20)

	label := fmt.Sprintf("Score: %d   Best: %d", f.Score(), f.HighScore())
	if autopilot {
		label += "   [autopilot]"
	}
	rl.DrawText(label, borderPadding, borderPadding, fontSize, rl.White)

	if f.IsRunning() {
		return
	}
	text := "Game Over! Press R to restart"
	if f.Cleared() {
		text = "Board cleared! Press R to restart"
	}
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+r.totalGridHeight/2-fontSize/2,
		fontSize, rl.RayWhite)
}
