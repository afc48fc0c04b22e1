package menu

import (
	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/palette"
)

// redefine steps, in prompt order.
var redefineLabels = []string{
	"PRESS KEY FOR UP:",
	"PRESS KEY FOR DOWN:",
	"PRESS KEY FOR LEFT:",
	"PRESS KEY FOR RIGHT:",
	"PRESS KEY FOR FIRE:",
	"PRESS KEY FOR PAUSE:",
}

// RedefineScreen walks the player through rebinding every action. Each
// keypress is captured as the next binding; after the last one the screen
// reports done and the new bindings take effect.
type RedefineScreen struct {
	renderer render.Renderer
	input    render.InputManager

	screenWidth  int
	screenHeight int

	step     int
	captured []render.Key
}

// NewRedefineScreen creates the redefinition screen.
func NewRedefineScreen(r render.Renderer, input render.InputManager, width, height int) *RedefineScreen {
	return &RedefineScreen{renderer: r, input: input, screenWidth: width, screenHeight: height}
}

// Reset restarts the flow from the first prompt.
func (s *RedefineScreen) Reset() {
	s.step = 0
	s.captured = s.captured[:0]
}

// Update captures one key per tick. It reports true once all actions have
// been rebound, writing the result into b.
func (s *RedefineScreen) Update(b *Bindings) bool {
	keys := s.input.JustPressedKeys()
	if len(keys) != 1 || keys[0] == render.KeyNone {
		return false
	}

	s.captured = append(s.captured, keys[0])
	s.step++
	if s.step < len(redefineLabels) {
		return false
	}

	b.Up = s.captured[0]
	b.Down = s.captured[1]
	b.Left = s.captured[2]
	b.Right = s.captured[3]
	b.Fire = s.captured[4]
	b.Pause = s.captured[5]
	return true
}

// Draw renders the prompts answered so far plus the pending one.
func (s *RedefineScreen) Draw(screen render.Image) {
	screen.Fill(palette.Black)

	y := 80
	for i := 0; i <= s.step && i < len(redefineLabels); i++ {
		label := redefineLabels[i]
		w, _ := s.renderer.MeasureText(label, itemScale)
		x := s.screenWidth/2 - w
		s.renderer.DrawText(screen, label, x, y, itemColor, itemScale)
		if i < len(s.captured) {
			s.renderer.DrawText(screen, " "+render.KeyName(s.captured[i]), s.screenWidth/2, y, selectedColor, itemScale)
		}
		y += 2 * itemGap
	}
}
