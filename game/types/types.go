package types

import "time"

// Point is a position on the drawing surface, in surface units.
type Point struct {
	X, Y float32
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Scale(f float32) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Point
}

// NewSquare returns the square of the given size whose min corner is corner.
func NewSquare(corner Point, size float32) Rect {
	return Rect{Min: corner, Max: Point{X: corner.X + size, Y: corner.Y + size}}
}

func (r Rect) Translate(v Point) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size is the drawing surface available to the simulation
type Size struct {
	Width  float32
	Height float32
}

// Key identifies one of the arrow keys the simulation listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight

	NumKeys = 4
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Game constants
const (
	SegmentSize   = 10.0
	StepMargin    = 5.0 // step = SegmentSize - StepMargin, leaves a gap between segments
	InitialLength = 4
	TickInterval  = 20 * time.Millisecond
	MaxCatchUp    = 5 // ticks run at most per host frame
)

// InitialOrigin is the min corner of the tail segment of a new snake.
var InitialOrigin = Point{X: 100, Y: 100}
