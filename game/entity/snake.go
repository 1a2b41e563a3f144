package entity

import "snake-walk/game/types"

// Snake is a fixed-length body of square segments ordered tail (index 0)
// to head (last index).
type Snake struct {
	Heading Direction
	Body    []types.Rect
	step    float32
}

// NewSnake lays out length contiguous segments to the right of origin,
// heading right. A length below one is raised to one.
func NewSnake(origin types.Point, length int, size, step float32) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Rect, length)
	for i := range body {
		corner := types.Point{X: origin.X + float32(i)*size, Y: origin.Y}
		body[i] = types.NewSquare(corner, size)
	}
	return &Snake{
		Heading: Right,
		Body:    body,
		step:    step,
	}
}

// Advance drops the tail and appends a new head one step along the heading.
// The backing array is reused so the length never changes.
func (s *Snake) Advance() {
	next := s.Head().Translate(s.Heading.ToPoint().Scale(s.step))
	copy(s.Body, s.Body[1:])
	s.Body[len(s.Body)-1] = next
}

// SetHeading changes the heading unless dir is the reverse of it.
// Reversals are dropped silently.
func (s *Snake) SetHeading(dir Direction) {
	if dir == s.Heading.Opposite() {
		return
	}
	s.Heading = dir
}

func (s *Snake) Head() types.Rect {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Tail() types.Rect {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Step() float32 {
	return s.step
}

// Segments returns a copy of the body, safe to hand to a renderer.
func (s *Snake) Segments() []types.Rect {
	body := make([]types.Rect, len(s.Body))
	copy(body, s.Body)
	return body
}
