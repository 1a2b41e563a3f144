package entity

import "snake-walk/game/types"

// Direction is a cardinal direction of travel.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ToPoint converts a Direction into a unit displacement. Y grows downwards.
func (d Direction) ToPoint() types.Point {
	switch d {
	case Up:
		return types.Point{X: 0, Y: -1}
	case Down:
		return types.Point{X: 0, Y: 1}
	case Left:
		return types.Point{X: -1, Y: 0}
	default:
		return types.Point{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
