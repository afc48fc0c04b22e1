package game

import (
	"math/rand"
	"time"

	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/behavior"
	"github.com/cobbes/jetstorm/combat"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/explosion"
	"github.com/cobbes/jetstorm/hud"
	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/item"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/menu"
	"github.com/cobbes/jetstorm/player"
	"github.com/cobbes/jetstorm/special"
)

// Outcome is what one game tick reports back to the state machine.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeDying
	OutcomeGameOver
	OutcomeVictory
)

// Game owns the whole running simulation: the maze, the ship, every
// combat system and the info bar. It is created once and survives trips
// through the menu so a paused game can be resumed.
type Game struct {
	Renderer render.Renderer
	Input    render.InputManager

	Maze     *maze.Maze
	Player   *player.Player
	Dice     *dice.Roller
	Audio    audio.Player
	Counters *audio.Counters
	Events   *events.Queue
	Booms    *explosion.Set
	Enemies  *behavior.Stepper
	Combat   *combat.System
	Specials *special.System
	Items    *item.Collector
	HUD      *hud.HUD

	DataDir string

	death *deathSequence
	frame int
}

// NewGame wires up the simulation. Nothing is loaded until StartNew.
func NewGame(r render.Renderer, input render.InputManager, au audio.Player, dataDir string) *Game {
	d := dice.NewRoller(rand.New(rand.NewSource(time.Now().UnixNano())))
	q := events.NewQueue()
	booms := explosion.NewSet(d)
	counters := audio.NewCounters()

	return &Game{
		Renderer: r,
		Input:    input,
		Maze:     maze.New(),
		Player:   player.New(),
		Dice:     d,
		Audio:    au,
		Counters: counters,
		Events:   q,
		Booms:    booms,
		Enemies:  &behavior.Stepper{Dice: d, Audio: au, Counters: counters},
		Combat:   &combat.System{Audio: au, Counters: counters, Events: q, Booms: booms},
		Specials: &special.System{Dice: d, Audio: au, Events: q, Booms: booms},
		Items:    &item.Collector{Dice: d, Audio: au, Events: q},
		HUD:      hud.New(r, d),
		DataDir:  dataDir,
	}
}

// StartNew resets everything and loads the maze for a fresh game.
func (g *Game) StartNew() error {
	g.Player.Clear()
	g.Maze.Clear()
	g.Booms.Clear()
	g.Specials.Despawn(g.Player)
	g.Combat.Reset(g.Player)
	g.Counters.Silence(g.Audio)
	g.Events.Drain()
	g.death = nil

	if err := g.Maze.Load(g.DataDir, g.Dice); err != nil {
		return err
	}

	g.HUD.Reset(0, g.Maze.Bases, g.Player.Special, g.Player.SpecialAmmo)
	g.enterRoom(g.Maze.CurrentRoom)
	return nil
}

// Abandon marks the current game as over so the menu stops offering a
// resume entry.
func (g *Game) Abandon() {
	g.Maze.Loaded = false
	g.Counters.Silence(g.Audio)
}

// enterRoom finishes loading the room's records on first visit: positions
// read from the data files are converted to world coordinates once and
// written back.
func (g *Game) enterRoom(roomSeq int) {
	room := &g.Maze.Rooms[roomSeq]
	for i := range room.Enemies {
		e := &room.Enemies[i]
		if e.First {
			size := e.Size()
			e.Pos.X += size.X / 2
			e.Pos.Y = maze.FieldH - e.Pos.Y - size.Y/2
			e.First = false
		}
	}
	for i := range room.Items {
		it := &room.Items[i]
		if it.First {
			it.Pos.X += maze.ItemSize.X / 2
			it.Pos.Y = maze.FieldH - it.Pos.Y - maze.ItemSize.Y/2 - 6
			it.First = false
		}
	}
}

// changeRoom performs the room switch a transition started: the new room
// is activated, projectiles and effects are dropped, and the looping shot
// sounds fall silent.
func (g *Game) changeRoom() {
	seq := maze.RoomSeq(g.Player.Row, g.Player.Col)
	g.Maze.CurrentRoom = seq
	g.enterRoom(seq)
	g.Maze.ResetCooldowns(seq)

	g.Combat.Reset(g.Player)
	g.Booms.Clear()
	g.Counters.Silence(g.Audio)

	// The ball and the star ride along into the new room; missiles are
	// too short-lived to carry over.
	if sp := g.Specials.Active; sp != nil {
		switch sp.Type {
		case events.SpecialBall, events.SpecialStar:
			sp.Pos = g.Player.Pos
		default:
			g.Specials.Despawn(g.Player)
		}
	}

	g.Player.ChangingRoom = false
}

func (g *Game) readInput(b menu.Bindings) player.Input {
	return player.Input{
		Left:     g.Input.IsKeyPressed(b.Left),
		Right:    g.Input.IsKeyPressed(b.Right),
		Up:       g.Input.IsKeyPressed(b.Up),
		Fire:     g.Input.IsKeyPressed(b.Fire),
		DownJust: g.Input.IsKeyJustPressed(b.Down),
	}
}

// Update advances the simulation by one tick.
func (g *Game) Update(dt float64, b menu.Bindings) Outcome {
	g.frame++
	room := g.Maze.Current()
	walls := room.WallBoxes()

	cannon, sp := g.Player.Move(dt, g.readInput(b), walls, g.Events, g.Audio)
	if cannon != nil {
		g.Combat.FireCannon(cannon)
	}
	if sp != nil {
		g.Specials.Launch(sp)
	}

	if g.Player.ChangingRoom {
		g.changeRoom()
	} else {
		g.Combat.AddEnemyShots(g.Enemies.Step(dt, room, g.Player.Pos))
		g.Combat.StepEnemyShots(dt, g.Player, walls)
		g.Combat.StepCannon(dt, g.Maze, g.Player, room)
		g.Combat.ContactPass(g.Player, g.Maze, room)
		g.Items.Step(g.Player, room)
		g.Specials.Step(dt, g.Player, g.Maze, room)
	}

	g.Booms.Step(dt, walls)

	g.HUD.Apply(g.Events.Drain())
	g.HUD.Step(dt)

	if g.Maze.Loaded && g.Maze.BasesTotal > 0 && g.Maze.Bases == 0 {
		return OutcomeVictory
	}

	switch g.Player.CheckStatus() {
	case player.StatusDying:
		return OutcomeDying
	case player.StatusDead:
		return OutcomeGameOver
	}
	return OutcomeRunning
}
