package game

import (
	"snake-walk/game/entity"
	"snake-walk/game/types"
)

// Input answers per-tick questions about the arrow keys.
type Input interface {
	// IsKeyPressed reports whether key went down since the last query.
	IsKeyPressed(key types.Key) bool
	// IsKeyDown reports whether key is currently held.
	IsKeyDown(key types.Key) bool
}

// ReadDirection picks the requested direction with precedence
// up > down > left > right. Up is matched on a fresh press and the others
// while held, unless unifiedHeld is set.
func ReadDirection(in Input, unifiedHeld bool) (entity.Direction, bool) {
	if in == nil {
		return 0, false
	}
	up := in.IsKeyPressed(types.KeyUp)
	if unifiedHeld {
		up = in.IsKeyDown(types.KeyUp)
	}
	switch {
	case up:
		return entity.Up, true
	case in.IsKeyDown(types.KeyDown):
		return entity.Down, true
	case in.IsKeyDown(types.KeyLeft):
		return entity.Left, true
	case in.IsKeyDown(types.KeyRight):
		return entity.Right, true
	}
	return 0, false
}

// inputLatch remembers presses seen on host frames that ran no tick, so the
// next tick still sees them. Held state is always read live.
type inputLatch struct {
	in      Input
	pressed [types.NumKeys]bool
}

func (l *inputLatch) observe(in Input) {
	l.in = in
	if in == nil {
		return
	}
	for k := types.Key(0); k < types.NumKeys; k++ {
		if in.IsKeyPressed(k) {
			l.pressed[k] = true
		}
	}
}

func (l *inputLatch) clear() {
	l.pressed = [types.NumKeys]bool{}
}

func (l *inputLatch) IsKeyPressed(key types.Key) bool {
	if key < 0 || key >= types.NumKeys {
		return false
	}
	return l.pressed[key] || (l.in != nil && l.in.IsKeyPressed(key))
}

func (l *inputLatch) IsKeyDown(key types.Key) bool {
	return l.in != nil && l.in.IsKeyDown(key)
}
