package ui

import (
	"snake-walk/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCodes = [types.NumKeys]int32{
	types.KeyUp:    rl.KeyUp,
	types.KeyDown:  rl.KeyDown,
	types.KeyLeft:  rl.KeyLeft,
	types.KeyRight: rl.KeyRight,
}

// Keyboard reads the arrow keys from the raylib window. It satisfies
// game.Input and needs an open window.
type Keyboard struct{}

func (Keyboard) IsKeyPressed(key types.Key) bool {
	code, ok := keyCode(key)
	return ok && rl.IsKeyPressed(code)
}

func (Keyboard) IsKeyDown(key types.Key) bool {
	code, ok := keyCode(key)
	return ok && rl.IsKeyDown(code)
}

func keyCode(key types.Key) (int32, bool) {
	if key < 0 || key >= types.NumKeys {
		return 0, false
	}
	return keyCodes[key], true
}
