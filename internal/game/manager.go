package game

import (
	"errors"
	"log"

	"github.com/cobbes/jetstorm/gamestate"
	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/menu"
)

// ErrQuit is returned from the game loop when the player exits from the
// main menu.
var ErrQuit = errors.New("quit")

// Fixed logic tick.
const tickSeconds = 1.0 / 60.0

// Manager drives the state machine around the simulation: splash, menu,
// gameplay, pause, death, the end screens and key redefinition. It is the
// render.Game handed to the engine.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int

	States   *gamestate.Stack
	Bindings menu.Bindings

	Game     *Game
	Renderer render.Renderer
	InputMgr render.InputManager

	StartScreen    *menu.StartScreen
	MainMenu       *menu.MainMenu
	PauseScreen    *menu.PauseScreen
	GameOverScreen *menu.EndScreen
	VictoryScreen  *menu.EndScreen
	RedefineScreen *menu.RedefineScreen
}

// NewManager creates the state machine and all of its screens.
func NewManager(g *Game, r render.Renderer, input render.InputManager, width, height int) *Manager {
	return &Manager{
		ScreenWidth:    width,
		ScreenHeight:   height,
		States:         gamestate.New(),
		Bindings:       menu.DefaultBindings(),
		Game:           g,
		Renderer:       r,
		InputMgr:       input,
		StartScreen:    menu.NewStartScreen(r, input, width, height),
		MainMenu:       menu.NewMainMenu(r, input, width, height),
		PauseScreen:    menu.NewPauseScreen(r, width, height),
		GameOverScreen: menu.NewGameOverScreen(r, input, width, height),
		VictoryScreen:  menu.NewVictoryScreen(r, input, width, height),
		RedefineScreen: menu.NewRedefineScreen(r, input, width, height),
	}
}

// Update advances the active state by one tick.
func (m *Manager) Update() error {
	switch m.States.Current() {
	case gamestate.Start:
		if m.StartScreen.Update() {
			m.States.Set(gamestate.Menu)
		}

	case gamestate.Menu:
		switch m.MainMenu.Update(m.Game.Maze.Loaded) {
		case menu.ActionResume:
			m.States.Set(gamestate.Game)
		case menu.ActionNewGame:
			if err := m.Game.StartNew(); err != nil {
				log.Printf("failed to start game: %v", err)
				return err
			}
			m.States.Set(gamestate.Game)
		case menu.ActionRedefine:
			m.RedefineScreen.Reset()
			m.States.Push(gamestate.RedefineKeys)
		case menu.ActionExit:
			return ErrQuit
		}

	case gamestate.Game:
		if m.InputMgr.IsKeyJustPressed(m.Bindings.Pause) {
			m.States.Push(gamestate.Pause)
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.States.Set(gamestate.Menu)
			return nil
		}
		switch m.Game.Update(tickSeconds, m.Bindings) {
		case OutcomeDying:
			m.Game.StartDeath()
			m.States.Push(gamestate.Death)
		case OutcomeGameOver:
			m.Game.Abandon()
			m.States.Set(gamestate.GameOver)
		case OutcomeVictory:
			m.Game.Abandon()
			m.States.Set(gamestate.Victory)
		}

	case gamestate.Pause:
		if m.InputMgr.IsKeyJustPressed(m.Bindings.Pause) {
			m.States.Pop()
		}

	case gamestate.Death:
		if m.Game.UpdateDeath(tickSeconds) {
			m.States.Pop()
		}

	case gamestate.GameOver:
		if m.GameOverScreen.Update() {
			m.States.Set(gamestate.Menu)
		}

	case gamestate.Victory:
		if m.VictoryScreen.Update() {
			m.States.Set(gamestate.Menu)
		}

	case gamestate.RedefineKeys:
		if m.RedefineScreen.Update(&m.Bindings) {
			m.States.Pop()
		}
	}
	return nil
}

// Draw renders the active state.
func (m *Manager) Draw(screen render.Image) {
	switch m.States.Current() {
	case gamestate.Start:
		m.StartScreen.Draw(screen)
	case gamestate.Menu:
		m.MainMenu.Draw(screen, m.Game.Maze.Loaded)
	case gamestate.Game, gamestate.Death:
		m.Game.Draw(screen)
	case gamestate.Pause:
		m.Game.Draw(screen)
		m.PauseScreen.Draw(screen)
	case gamestate.GameOver:
		m.GameOverScreen.Draw(screen, m.Game.HUD.Score())
	case gamestate.Victory:
		m.VictoryScreen.Draw(screen, m.Game.HUD.Score())
	case gamestate.RedefineKeys:
		m.RedefineScreen.Draw(screen)
	}
}

// Layout reports the fixed logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(maze.WindowW), int(maze.WindowH)
}
