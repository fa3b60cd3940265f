package entity

import (
	"rsnake/game/types"

	"github.com/kamstrup/intmap"
)

// Snake holds the head, the trailing body and the facing direction.
// Body is ordered oldest first; the back of the slice is the segment
// directly behind the head.
type Snake struct {
	Head   types.Point
	Facing types.Direction

	grid  types.Grid
	body  []types.Point
	cells *intmap.Map[int, int] // grid index -> number of body segments on it
}

func NewSnake(grid types.Grid, start types.Point, facing types.Direction) *Snake {
	return &Snake{
		Head:   start,
		Facing: facing,
		grid:   grid,
		body:   make([]types.Point, 0, 16),
		cells:  intmap.New[int, int](64),
	}
}

// Advance pushes the current head onto the body and moves the head to next.
// The caller is responsible for wrapping next onto the grid.
func (s *Snake) Advance(next types.Point) {
	s.push(s.Head)
	s.Head = next
}

// Trim drops the oldest body segment.
func (s *Snake) Trim() {
	if len(s.body) == 0 {
		return
	}
	oldest := s.body[0]
	s.body = s.body[1:]

	idx := s.grid.Index(oldest)
	if n, ok := s.cells.Get(idx); ok {
		if n <= 1 {
			s.cells.Del(idx)
		} else {
			s.cells.Put(idx, n-1)
		}
	}
}

// Reset empties the body. Head and facing are left untouched.
func (s *Snake) Reset() {
	s.body = s.body[:0]
	s.cells.Clear()
}

// BodyContains reports whether p is one of the body segments.
func (s *Snake) BodyContains(p types.Point) bool {
	if !s.grid.Contains(p) {
		return false
	}
	_, ok := s.cells.Get(s.grid.Index(p))
	return ok
}

// Occupies reports whether p is the head or a body segment.
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.BodyContains(p)
}

// Body returns a copy of the body segments, oldest first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of body segments plus the head.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

func (s *Snake) push(p types.Point) {
	s.body = append(s.body, p)
	idx := s.grid.Index(p)
	n, _ := s.cells.Get(idx)
	s.cells.Put(idx, n+1)
}
