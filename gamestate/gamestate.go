// Package gamestate implements the screen state machine as a stack. The
// base entry is the running mode (menu or game); overlays such as pause or
// the death sequence are pushed on top and popped to resume what was
// underneath.
package gamestate

// State identifies a screen.
type State int

const (
	Start State = iota
	Menu
	Game
	Pause
	Death
	GameOver
	Victory
	RedefineKeys
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Menu:
		return "Menu"
	case Game:
		return "Game"
	case Pause:
		return "Pause"
	case Death:
		return "Death"
	case GameOver:
		return "GameOver"
	case Victory:
		return "Victory"
	case RedefineKeys:
		return "RedefineKeys"
	}
	return "Unknown"
}

// Stack is the state machine. A zero Stack is invalid; use New.
type Stack struct {
	states []State
}

// New creates a stack sitting in the Start state.
func New() *Stack {
	return &Stack{states: []State{Start}}
}

// Current returns the active state.
func (st *Stack) Current() State {
	return st.states[len(st.states)-1]
}

// Set replaces the active state.
func (st *Stack) Set(s State) {
	st.states[len(st.states)-1] = s
}

// Push overlays a state on top of the current one.
func (st *Stack) Push(s State) {
	st.states = append(st.states, s)
}

// Pop removes the active state, resuming the one beneath it. Popping the
// last state is a no-op; the stack never runs empty.
func (st *Stack) Pop() {
	if len(st.states) > 1 {
		st.states = st.states[:len(st.states)-1]
	}
}

// Depth returns the number of stacked states.
func (st *Stack) Depth() int {
	return len(st.states)
}
