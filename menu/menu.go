// Package menu implements the keyboard-driven screens around the game
// itself: the start splash, the main menu, the pause and end screens, and
// the key-redefinition flow. Every screen draws through the renderer
// abstraction so the package stays independent of the graphics backend.
package menu

import (
	"image/color"

	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/palette"
)

// Action is the result of one main menu update.
type Action int

const (
	ActionNone Action = iota
	ActionResume
	ActionNewGame
	ActionRedefine
	ActionExit
)

const (
	titleScale = 4.0
	itemScale  = 2.0
	itemGap    = 40
)

var (
	itemColor     = color.RGBA{0xB0, 0xB0, 0xB0, 0xFF}
	selectedColor = palette.Cyan
)

// MainMenu is the main menu screen.
type MainMenu struct {
	renderer render.Renderer
	input    render.InputManager

	screenWidth  int
	screenHeight int
	selected     int
}

// NewMainMenu creates the main menu.
func NewMainMenu(r render.Renderer, input render.InputManager, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

func (m *MainMenu) items(resume bool) []string {
	if resume {
		return []string{"RESUME", "NEW GAME", "REDEFINE KEYS", "EXIT"}
	}
	return []string{"NEW GAME", "REDEFINE KEYS", "EXIT"}
}

func (m *MainMenu) actions(resume bool) []Action {
	if resume {
		return []Action{ActionResume, ActionNewGame, ActionRedefine, ActionExit}
	}
	return []Action{ActionNewGame, ActionRedefine, ActionExit}
}

// Update moves the selection and reports the chosen action, if any.
// The resume entry is only offered while a game is in progress.
func (m *MainMenu) Update(resume bool) Action {
	items := m.items(resume)
	if m.selected >= len(items) {
		m.selected = 0
	}

	if m.input.IsKeyJustPressed(render.KeyUp) && m.selected > 0 {
		m.selected--
	}
	if m.input.IsKeyJustPressed(render.KeyDown) && m.selected < len(items)-1 {
		m.selected++
	}
	if m.input.IsKeyJustPressed(render.KeyEnter) || m.input.IsKeyJustPressed(render.KeySpace) {
		return m.actions(resume)[m.selected]
	}
	if m.input.IsKeyJustPressed(render.KeyEscape) {
		return ActionExit
	}
	return ActionNone
}

// Draw renders the menu.
func (m *MainMenu) Draw(screen render.Image, resume bool) {
	screen.Fill(palette.Black)

	m.drawCentered(screen, "JETSTORM", m.screenHeight/4, palette.White, titleScale)

	items := m.items(resume)
	y := m.screenHeight / 2
	for i, it := range items {
		clr := color.Color(itemColor)
		if i == m.selected {
			clr = selectedColor
		}
		m.drawCentered(screen, it, y+i*itemGap, clr, itemScale)
	}
}

func (m *MainMenu) drawCentered(screen render.Image, text string, y int, clr color.Color, scale float64) {
	w, _ := m.renderer.MeasureText(text, scale)
	m.renderer.DrawText(screen, text, (m.screenWidth-w)/2, y, clr, scale)
}
