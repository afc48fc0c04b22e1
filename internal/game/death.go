package game

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/palette"
)

// Death sequence timing.
const (
	deathDuration = 4.0
	deathBoomGap  = 0.3
)

type deathSequence struct {
	timer     float64
	boomTimer float64
}

// StartDeath begins the ship's death sequence: all looping effects stop
// and the death jingle plays over a shower of explosions.
func (g *Game) StartDeath() {
	g.Audio.StopLoop(audio.ChannelDamage)
	g.Counters.Silence(g.Audio)
	g.Audio.Play(audio.SoundDeath)
	g.death = &deathSequence{timer: deathDuration}
}

// UpdateDeath advances the death sequence one tick and reports whether it
// has finished. Explosions keep bursting around the wreck and the hull
// cycles through the item palette while the timer runs.
func (g *Game) UpdateDeath(dt float64) bool {
	if g.death == nil {
		return true
	}

	g.death.boomTimer += dt
	if g.death.boomTimer >= deathBoomGap {
		g.death.boomTimer -= deathBoomGap

		g.Player.ColorIndex++
		if g.Player.ColorIndex >= len(palette.Item) {
			g.Player.ColorIndex = 0
		}

		g.Booms.SpawnBoom(geom.Vec2{
			X: g.Player.Pos.X + g.Dice.Float(-60, 60),
			Y: g.Player.Pos.Y + g.Dice.Float(-30, 30),
		})
	}

	g.Booms.Step(dt, g.Maze.Current().WallBoxes())

	g.death.timer -= dt
	if g.death.timer <= 0 {
		g.Player.IsDead = true
		g.death = nil
		return true
	}
	return false
}
