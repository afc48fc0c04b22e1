// Package item resolves pickup collection. Items never respawn; a
// collected record stays in the maze marked Collected for the rest of
// the game.
package item

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/player"
)

// Pickup effect ammo stocks.
const (
	BallAmmo    = 20
	MissileAmmo = 50
	StarAmmo    = 20
)

// Collector applies pickups to the player.
type Collector struct {
	Dice   *dice.Roller
	Audio  audio.Player
	Events *events.Queue
}

// Step collects every uncollected item the ship currently overlaps.
func (c *Collector) Step(p *player.Player, room *maze.Room) {
	playerBox := p.Box()

	for i := range room.Items {
		it := &room.Items[i]
		if it.Collected {
			continue
		}
		if !playerBox.Overlaps(geom.Box{Center: it.Pos, Size: maze.ItemSize}) {
			continue
		}

		c.Audio.Play(audio.SoundGetItem)
		c.apply(p, it.Type)
		c.Events.Push(events.SpecialChanged{Special: p.Special})
		c.Events.Push(events.SpecialAmmoChanged{Ammo: p.SpecialAmmo})
		it.Collected = true
	}
}

// apply resolves one pickup. Type 7 is the surprise box: it rerolls into
// one of the concrete pickups.
func (c *Collector) apply(p *player.Player, itemType int) {
	if itemType == 7 {
		itemType = c.Dice.IntN(7)
	}

	switch itemType {
	case 0:
		p.Ammo = player.AmmoMax
	case 1:
		p.Special = events.SpecialBall
		p.SpecialAmmo = BallAmmo
	case 2:
		p.Fuel = player.FuelMax
	case 3:
		p.Special = events.SpecialMissileDown
		p.SpecialAmmo = MissileAmmo
	case 4:
		p.Special = events.SpecialMissileSide
		p.SpecialAmmo = MissileAmmo
	case 5:
		p.Health = player.HealthMax
	case 6:
		p.Special = events.SpecialStar
		p.SpecialAmmo = StarAmmo
	}
}
