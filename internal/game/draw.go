package game

import (
	"image/color"

	"github.com/cobbes/jetstorm/explosion"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/palette"
	"github.com/cobbes/jetstorm/player"
)

// Boom animation colors, hottest first.
var boomColors = [explosion.BoomFrames]color.RGBA{
	{0xFF, 0xFF, 0xFF, 0xFF},
	{0xFF, 0xFF, 0x80, 0xFF},
	{0xFF, 0xC0, 0x00, 0xFF},
	{0xFF, 0x60, 0x00, 0xFF},
	{0xC0, 0x20, 0x00, 0xFF},
	{0x60, 0x60, 0x60, 0xFF},
}

var fragmentColors = [explosion.FragmentFrames]color.RGBA{
	{0xE0, 0xE0, 0xE0, 0xFF},
	{0xC0, 0xC0, 0x80, 0xFF},
	{0xA0, 0xA0, 0xA0, 0xFF},
	{0x80, 0x80, 0x60, 0xFF},
	{0x60, 0x60, 0x60, 0xFF},
}

var boomSize = geom.Vec2{X: 50, Y: 50}

// Draw renders the playfield and the info bar.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(g.backgroundColor())

	room := g.Maze.Current()

	for _, w := range room.Walls {
		g.fillWorldRect(screen, w.Box.Center, w.Box.Size, palette.Wall)
	}

	for i := range room.Items {
		it := &room.Items[i]
		if it.Collected || it.First {
			continue
		}
		clr := palette.Item[(g.frame/10+it.ItemSeq)%len(palette.Item)]
		g.fillWorldRect(screen, it.Pos, maze.ItemSize, clr)
	}

	g.drawEnemies(screen, room.Enemies)
	g.drawEnemies(screen, room.EnemiesFrom10)

	for _, shot := range g.Combat.EnemyShots {
		g.fillWorldRect(screen, shot.Pos, shot.Size, palette.White)
	}
	if c := g.Combat.Cannon; c != nil {
		g.fillWorldRect(screen, c.Pos, c.Size(), palette.White)
	}

	if sp := g.Specials.Active; sp != nil {
		g.fillWorldRect(screen, sp.Pos, sp.Size(), palette.Item[sp.ColorIndex%len(palette.Item)])
	}

	g.drawPlayer(screen)
	g.drawExplosions(screen)

	g.HUD.Draw(screen, g.Player)
}

func (g *Game) backgroundColor() color.RGBA {
	switch g.Booms.BackgroundColor() {
	case explosion.BackgroundWhite:
		return palette.White
	case explosion.BackgroundYellow:
		return palette.Yellow
	default:
		return palette.Black
	}
}

func (g *Game) drawEnemies(screen render.Image, enemies []maze.Enemy) {
	for i := range enemies {
		e := &enemies[i]
		if e.Health <= 0 || e.First {
			continue
		}
		g.fillWorldRect(screen, e.Pos, e.Size(), palette.Enemy[e.ColorIndex%len(palette.Enemy)])

		// A carrier's payload rides on top of it.
		rider := geom.Vec2{X: e.Pos.X, Y: e.Pos.Y + 50}
		if f := e.Fellow; f != nil && f.Health > 0 {
			g.fillWorldRect(screen, rider, maze.EnemySizeOf(f.Type), palette.Enemy[f.ColorIndex%len(palette.Enemy)])
		}
		if it := e.FellowItem; it != nil && !it.Collected {
			clr := palette.Item[(g.frame/10+it.Type)%len(palette.Item)]
			g.fillWorldRect(screen, rider, maze.ItemSize, clr)
		}
	}
}

func (g *Game) drawPlayer(screen render.Image) {
	size := geom.Vec2{X: player.Width, Y: player.Height}
	clr := palette.White
	if g.death != nil {
		clr = palette.Item[g.Player.ColorIndex%len(palette.Item)]
	}
	g.fillWorldRect(screen, g.Player.Pos, size, clr)
}

func (g *Game) drawExplosions(screen render.Image) {
	for i := range g.Booms.Booms {
		b := &g.Booms.Booms[i]
		frame := b.Frame
		if frame >= explosion.BoomFrames {
			frame = explosion.BoomFrames - 1
		}
		g.fillWorldRect(screen, b.Pos, boomSize, boomColors[frame])
	}
	for i := range g.Booms.Fragments {
		f := &g.Booms.Fragments[i]
		frame := f.Frame
		if frame >= explosion.FragmentFrames {
			frame = explosion.FragmentFrames - 1
		}
		size := geom.Vec2{X: explosion.FragmentSize, Y: explosion.FragmentSize}
		g.fillWorldRect(screen, f.Pos, size, fragmentColors[frame])
	}
}

// fillWorldRect draws a centered world-space box. World coordinates have
// the origin at the bottom-left with y up; the screen is y down.
func (g *Game) fillWorldRect(screen render.Image, pos, size geom.Vec2, clr color.Color) {
	x := float32(pos.X - size.X/2)
	y := float32(maze.WindowH - pos.Y - size.Y/2)
	g.Renderer.FillRect(screen, x, y, float32(size.X), float32(size.Y), clr)
}
