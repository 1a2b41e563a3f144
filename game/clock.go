package game

import (
	"time"

	"snake-walk/game/types"
)

// Clock turns host frame deltas into a whole number of simulation ticks.
// Time not yet worth a tick is carried to the next frame.
type Clock struct {
	interval   time.Duration
	acc        time.Duration
	maxCatchUp int
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		interval:   interval,
		maxCatchUp: types.MaxCatchUp,
	}
}

// Accumulate adds dt and returns the number of ticks now due. After a long
// stall at most maxCatchUp ticks are returned and the rest of the backlog is
// dropped.
func (c *Clock) Accumulate(dt time.Duration) int {
	if dt > 0 {
		c.acc += dt
	}
	ticks := c.acc / c.interval
	c.acc -= ticks * c.interval
	if ticks > time.Duration(c.maxCatchUp) {
		ticks = time.Duration(c.maxCatchUp)
	}
	return int(ticks)
}

// Pending returns the time carried towards the next tick.
func (c *Clock) Pending() time.Duration {
	return c.acc
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}
