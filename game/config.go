package game

import (
	"math"
	"time"

	"github.com/pkg/errors"

	"snake-walk/game/types"
)

// Config holds the tunables of a session. DefaultConfig reproduces the
// classic layout: four 10-unit segments at (100,100) stepping 5 units every
// 20ms.
type Config struct {
	SegmentSize   float32
	StepMargin    float32
	InitialLength int
	Origin        types.Point
	TickInterval  time.Duration

	// UnifiedHeld reads all four arrow keys as held. When false the up key
	// only counts on the tick it is pressed.
	UnifiedHeld bool
}

func DefaultConfig() Config {
	return Config{
		SegmentSize:   types.SegmentSize,
		StepMargin:    types.StepMargin,
		InitialLength: types.InitialLength,
		Origin:        types.InitialOrigin,
		TickInterval:  types.TickInterval,
	}
}

// Step is the distance the head travels per tick.
func (c Config) Step() float32 {
	return c.SegmentSize - c.StepMargin
}

// Validate rejects layouts the simulation cannot run. Origin and segment size
// must be multiples of the step so that a head walking towards the origin
// edges lands exactly on zero.
func (c Config) Validate() error {
	if c.SegmentSize <= 0 {
		return errors.Errorf("segment size must be positive, got %v", c.SegmentSize)
	}
	if c.StepMargin < 0 || c.StepMargin >= c.SegmentSize {
		return errors.Errorf("step margin must be in [0, %v), got %v", c.SegmentSize, c.StepMargin)
	}
	if c.InitialLength < 1 {
		return errors.Errorf("initial length must be at least 1, got %d", c.InitialLength)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.Origin.X <= 0 || c.Origin.Y <= 0 {
		return errors.Errorf("origin must lie inside the surface, got (%v, %v)", c.Origin.X, c.Origin.Y)
	}
	step := c.Step()
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"origin x", c.Origin.X},
		{"origin y", c.Origin.Y},
		{"segment size", c.SegmentSize},
	} {
		if !multipleOf(f.v, step) {
			return errors.Errorf("%s %v is not a multiple of step %v", f.name, f.v, step)
		}
	}
	return nil
}

func multipleOf(v, step float32) bool {
	return math.Mod(float64(v), float64(step)) == 0
}
