package entity

import (
	"testing"

	"snake-walk/game/types"
)

func newTestSnake() *Snake {
	return NewSnake(types.Point{X: 100, Y: 100}, 4, 10, 5)
}

func TestNewSnakeLayout(t *testing.T) {
	s := newTestSnake()

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
	if s.Heading != Right {
		t.Errorf("Heading = %v, want right", s.Heading)
	}
	for i, seg := range s.Body {
		wantX := float32(100 + 10*i)
		if seg.Min.X != wantX || seg.Min.Y != 100 {
			t.Errorf("segment %d min = (%v, %v), want (%v, 100)", i, seg.Min.X, seg.Min.Y, wantX)
		}
		if seg.Width() != 10 || seg.Height() != 10 {
			t.Errorf("segment %d size = %vx%v, want 10x10", i, seg.Width(), seg.Height())
		}
		if i > 0 && seg.Min.X-s.Body[i-1].Min.X != 10 {
			t.Errorf("segment %d not contiguous with its predecessor", i)
		}
	}
}

func TestNewSnakeNeverEmpty(t *testing.T) {
	s := NewSnake(types.Point{X: 50, Y: 50}, 0, 10, 5)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	s.Advance()
	if s.Len() != 1 || s.Head().Min.X != 55 {
		t.Errorf("single segment snake did not move: %+v", s.Head())
	}
}

func TestAdvanceDropsTailAndAppendsHead(t *testing.T) {
	s := newTestSnake()
	s.Advance()

	want := []types.Rect{
		{Min: types.Point{X: 110, Y: 100}, Max: types.Point{X: 120, Y: 110}},
		{Min: types.Point{X: 120, Y: 100}, Max: types.Point{X: 130, Y: 110}},
		{Min: types.Point{X: 130, Y: 100}, Max: types.Point{X: 140, Y: 110}},
		{Min: types.Point{X: 135, Y: 100}, Max: types.Point{X: 145, Y: 110}},
	}
	if len(s.Body) != len(want) {
		t.Fatalf("len(Body) = %d, want %d", len(s.Body), len(want))
	}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Errorf("Body[%d] = %+v, want %+v", i, s.Body[i], want[i])
		}
	}
}

func TestAdvanceHeadDisplacement(t *testing.T) {
	tests := []struct {
		heading Direction
		dx, dy  float32
	}{
		{Up, 0, -5},
		{Down, 0, 5},
		{Left, -5, 0},
		{Right, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			s := newTestSnake()
			s.Heading = tt.heading
			old := s.Head()

			s.Advance()

			got := s.Head()
			if got.Min.X != old.Min.X+tt.dx || got.Min.Y != old.Min.Y+tt.dy {
				t.Errorf("head min = (%v, %v), want (%v, %v)",
					got.Min.X, got.Min.Y, old.Min.X+tt.dx, old.Min.Y+tt.dy)
			}
			if got.Width() != 10 || got.Height() != 10 {
				t.Errorf("head size changed to %vx%v", got.Width(), got.Height())
			}
		})
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := newTestSnake()
	for n := 0; n < 200; n++ {
		if n%7 == 0 {
			s.SetHeading(Direction(n % 4))
		}
		s.Advance()
		if s.Len() != 4 {
			t.Fatalf("after %d advances Len() = %d, want 4", n+1, s.Len())
		}
	}
}

func TestSetHeading(t *testing.T) {
	tests := []struct {
		name    string
		from    Direction
		request Direction
		want    Direction
	}{
		{"right to left rejected", Right, Left, Right},
		{"left to right rejected", Left, Right, Left},
		{"up to down rejected", Up, Down, Up},
		{"down to up rejected", Down, Up, Down},
		{"right to up accepted", Right, Up, Up},
		{"right to down accepted", Right, Down, Down},
		{"up to left accepted", Up, Left, Left},
		{"down to right accepted", Down, Right, Right},
		{"same direction", Right, Right, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake()
			s.Heading = tt.from
			s.SetHeading(tt.request)
			if s.Heading != tt.want {
				t.Errorf("Heading = %v, want %v", s.Heading, tt.want)
			}
		})
	}
}

func TestSetHeadingSameDirectionLeavesBody(t *testing.T) {
	s := newTestSnake()
	before := s.Segments()

	s.SetHeading(s.Heading)

	for i := range before {
		if s.Body[i] != before[i] {
			t.Fatalf("Body[%d] changed from %+v to %+v", i, before[i], s.Body[i])
		}
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := newTestSnake()
	segs := s.Segments()
	segs[0].Min.X = -1

	if s.Body[0].Min.X != 100 {
		t.Errorf("mutating Segments() leaked into Body")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite of opposite is %v", d, d.Opposite().Opposite())
		}
		p, q := d.ToPoint(), d.Opposite().ToPoint()
		if p.X != -q.X || p.Y != -q.Y {
			t.Errorf("%v and %v are not opposite vectors", d, d.Opposite())
		}
	}
}
