package menu

import "github.com/cobbes/jetstorm/internal/render"

// Bindings maps game actions to keyboard keys. The special weapon fires
// on Down, so it shares that binding.
type Bindings struct {
	Up    render.Key
	Down  render.Key
	Left  render.Key
	Right render.Key
	Fire  render.Key
	Pause render.Key
}

// DefaultBindings returns the stock key layout.
func DefaultBindings() Bindings {
	return Bindings{
		Up:    render.KeyUp,
		Down:  render.KeyDown,
		Left:  render.KeyLeft,
		Right: render.KeyRight,
		Fire:  render.KeyA,
		Pause: render.KeyP,
	}
}
