package menu

import (
	"fmt"
	"image/color"

	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/palette"
)

// StartScreen is the splash shown at launch. Any key dismisses it.
type StartScreen struct {
	renderer render.Renderer
	input    render.InputManager

	screenWidth  int
	screenHeight int
}

// NewStartScreen creates the splash screen.
func NewStartScreen(r render.Renderer, input render.InputManager, width, height int) *StartScreen {
	return &StartScreen{renderer: r, input: input, screenWidth: width, screenHeight: height}
}

// Update reports whether any key went down this tick.
func (s *StartScreen) Update() bool {
	return len(s.input.JustPressedKeys()) > 0
}

// Draw renders the splash.
func (s *StartScreen) Draw(screen render.Image) {
	screen.Fill(palette.Black)
	drawCentered(s.renderer, screen, "JETSTORM", s.screenWidth, s.screenHeight/3, palette.White, titleScale)
	drawCentered(s.renderer, screen, "PRESS ANY KEY", s.screenWidth, s.screenHeight*2/3, itemColor, itemScale)
}

// PauseScreen is the overlay drawn on top of a frozen game.
type PauseScreen struct {
	renderer render.Renderer

	screenWidth  int
	screenHeight int
}

// NewPauseScreen creates the pause overlay.
func NewPauseScreen(r render.Renderer, width, height int) *PauseScreen {
	return &PauseScreen{renderer: r, screenWidth: width, screenHeight: height}
}

// Draw renders the overlay. The caller draws the game underneath first.
func (p *PauseScreen) Draw(screen render.Image) {
	drawCentered(p.renderer, screen, "PAUSED", p.screenWidth, p.screenHeight/2, palette.Yellow, titleScale)
}

// EndScreen is the shared game over / victory screen.
type EndScreen struct {
	renderer render.Renderer
	input    render.InputManager

	title        string
	screenWidth  int
	screenHeight int
}

// NewGameOverScreen creates the screen shown when the ship is destroyed.
func NewGameOverScreen(r render.Renderer, input render.InputManager, width, height int) *EndScreen {
	return &EndScreen{renderer: r, input: input, title: "GAME OVER", screenWidth: width, screenHeight: height}
}

// NewVictoryScreen creates the screen shown when the last base falls.
func NewVictoryScreen(r render.Renderer, input render.InputManager, width, height int) *EndScreen {
	return &EndScreen{renderer: r, input: input, title: "VICTORY", screenWidth: width, screenHeight: height}
}

// Update reports whether the player dismissed the screen.
func (e *EndScreen) Update() bool {
	return e.input.IsKeyJustPressed(render.KeyEnter) || e.input.IsKeyJustPressed(render.KeySpace)
}

// Draw renders the screen with the final score.
func (e *EndScreen) Draw(screen render.Image, score int) {
	screen.Fill(palette.Black)
	drawCentered(e.renderer, screen, e.title, e.screenWidth, e.screenHeight/3, palette.White, titleScale)
	drawCentered(e.renderer, screen, fmt.Sprintf("SCORE: %07d", score), e.screenWidth, e.screenHeight/2, selectedColor, itemScale)
	drawCentered(e.renderer, screen, "PRESS ENTER", e.screenWidth, e.screenHeight*2/3, itemColor, itemScale)
}

func drawCentered(r render.Renderer, screen render.Image, text string, screenWidth, y int, clr color.Color, scale float64) {
	w, _ := r.MeasureText(text, scale)
	r.DrawText(screen, text, (screenWidth-w)/2, y, clr, scale)
}
