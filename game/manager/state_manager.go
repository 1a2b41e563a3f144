package manager

// State is the phase of a simulation session.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// StateManager tracks the Running -> GameOver transition. GameOver is
// terminal: there is no way back to Running.
type StateManager struct {
	state   State
	endedAt uint64
}

func NewStateManager() *StateManager {
	return &StateManager{state: Running}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) IsOver() bool {
	return sm.state == GameOver
}

// End moves the session to GameOver at the given tick. It returns true only
// for the call that performed the transition.
func (sm *StateManager) End(tick uint64) bool {
	if sm.state == GameOver {
		return false
	}
	sm.state = GameOver
	sm.endedAt = tick
	return true
}

// EndedAt returns the tick on which the session ended.
func (sm *StateManager) EndedAt() (uint64, bool) {
	return sm.endedAt, sm.state == GameOver
}
