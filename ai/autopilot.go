package ai

import (
	"golang.org/x/exp/rand"

	"snake-walk/game/types"
)

// Autopilot plays the arrow keys at random in place of a keyboard. Each call
// to Next rolls the key state for one tick: with probability turnChance one
// key is pressed (and held for that tick), otherwise nothing is touched.
type Autopilot struct {
	rng        *rand.Rand
	turnChance float64
	pressed    [types.NumKeys]bool
	down       [types.NumKeys]bool
}

func NewAutopilot(seed uint64, turnChance float64) *Autopilot {
	if turnChance < 0 {
		turnChance = 0
	}
	if turnChance > 1 {
		turnChance = 1
	}
	return &Autopilot{
		rng:        rand.New(rand.NewSource(seed)),
		turnChance: turnChance,
	}
}

// Next rolls the key state for the coming tick and returns the key it
// pressed, if any.
func (a *Autopilot) Next() (types.Key, bool) {
	a.pressed = [types.NumKeys]bool{}
	a.down = [types.NumKeys]bool{}
	if a.rng.Float64() >= a.turnChance {
		return 0, false
	}
	k := types.Key(a.rng.Intn(types.NumKeys))
	a.pressed[k] = true
	a.down[k] = true
	return k, true
}

func (a *Autopilot) IsKeyPressed(key types.Key) bool {
	return key >= 0 && key < types.NumKeys && a.pressed[key]
}

func (a *Autopilot) IsKeyDown(key types.Key) bool {
	return key >= 0 && key < types.NumKeys && a.down[key]
}
