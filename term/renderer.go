// Package term draws the game in a terminal and maps key events to commands.
package term

import (
	"fmt"

	"rsnake/game/types"

	"github.com/gdamore/tcell/v2"
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

// cellWidth is the number of terminal columns per grid cell, so cells look square.
const cellWidth = 2

// hudRows is the number of rows above the board.
const hudRows = 1

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw paints the RGB buffer and the score line, then shows the screen.
func (r *Renderer) Draw(f Frame, autopilot bool) {
	r.screen.Clear()

	grid := f.Grid()
	rgb := f.RGB()
	for i := 0; i < grid.Cells(); i++ {
		p := grid.PointAt(i)
		style := CellStyle(rgb, i)
		for c := 0; c < cellWidth; c++ {
			r.screen.SetContent(p.X*cellWidth+c, p.Y+hudRows, ' ', nil, style)
		}
	}

	r.drawText(0, 0, tcell.StyleDefault, StatusLine(f, autopilot))
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// CellStyle returns the background style for cell i of an RGB buffer.
func CellStyle(rgb []byte, i int) tcell.Style {
	c := tcell.NewRGBColor(int32(rgb[i*3]), int32(rgb[i*3+1]), int32(rgb[i*3+2]))
	return tcell.StyleDefault.Background(c)
}

// StatusLine is the text shown above the board.
func StatusLine(f Frame, autopilot bool) string {
	line := fmt.Sprintf("score %d  best %d", f.Score(), f.HighScore())
	if autopilot {
		line += "  [autopilot]"
	}
	switch {
	case f.Cleared():
		line += "  board cleared! r: restart  q: quit"
	case !f.IsRunning():
		line += "  game over. r: restart  q: quit"
	}
	return line
}

// Command is an action requested from the keyboard.
type Command int

const (
	None Command = iota
	Turn
	Restart
	ToggleAutopilot
	Quit
)

// KeyCommand maps a key event to a command. For Turn, dir holds the direction.
func KeyCommand(ev *tcell.EventKey) (cmd Command, dir types.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Turn, types.Up
	case tcell.KeyDown:
		return Turn, types.Down
	case tcell.KeyLeft:
		return Turn, types.Left
	case tcell.KeyRight:
		return Turn, types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return Turn, types.Up
		case 's', 'j':
			return Turn, types.Down
		case 'a', 'h':
			return Turn, types.Left
		case 'd', 'l':
			return Turn, types.Right
		case 'r':
			return Restart, 0
		case 'p':
			return ToggleAutopilot, 0
		case 'q':
			return Quit, 0
		}
	}
	return None, 0
}
