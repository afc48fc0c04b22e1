package item

import (
	"math/rand"
	"testing"

	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/player"
)

type soundLog struct {
	audio.Nop
	played []audio.Sound
}

func (s *soundLog) Play(snd audio.Sound) { s.played = append(s.played, snd) }

func newCollector(log *soundLog) *Collector {
	return &Collector{
		Dice:   dice.NewRoller(rand.New(rand.NewSource(1))),
		Audio:  log,
		Events: events.NewQueue(),
	}
}

func roomWithItem(itemType int) *maze.Room {
	return &maze.Room{Items: []maze.Item{
		{Type: itemType, Pos: geom.Vec2{X: 400, Y: 250}},
	}}
}

func TestCollectAmmo(t *testing.T) {
	log := &soundLog{}
	c := newCollector(log)
	p := &player.Player{Pos: geom.Vec2{X: 400, Y: 250}}
	room := roomWithItem(0)

	c.Step(p, room)

	if !room.Items[0].Collected {
		t.Fatal("Expected the item collected")
	}
	if p.Ammo != player.AmmoMax {
		t.Errorf("Expected full ammo, got %d", p.Ammo)
	}
	if len(log.played) != 1 || log.played[0] != audio.SoundGetItem {
		t.Error("Expected the pickup sound")
	}
	if c.Events.Len() != 2 {
		t.Errorf("Expected 2 events, got %d", c.Events.Len())
	}
}

func TestCollectRefills(t *testing.T) {
	c := newCollector(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 400, Y: 250}}

	c.Step(p, roomWithItem(2))
	if p.Fuel != player.FuelMax {
		t.Errorf("Expected full fuel, got %v", p.Fuel)
	}

	c.Step(p, roomWithItem(5))
	if p.Health != player.HealthMax {
		t.Errorf("Expected full shield, got %v", p.Health)
	}
}

func TestCollectSpecials(t *testing.T) {
	cases := []struct {
		itemType int
		special  events.SpecialType
		ammo     int
	}{
		{1, events.SpecialBall, BallAmmo},
		{3, events.SpecialMissileDown, MissileAmmo},
		{4, events.SpecialMissileSide, MissileAmmo},
		{6, events.SpecialStar, StarAmmo},
	}
	for _, tc := range cases {
		c := newCollector(&soundLog{})
		p := &player.Player{Pos: geom.Vec2{X: 400, Y: 250}}

		c.Step(p, roomWithItem(tc.itemType))

		if p.Special != tc.special {
			t.Errorf("Item %d: expected special %v, got %v", tc.itemType, tc.special, p.Special)
		}
		if p.SpecialAmmo != tc.ammo {
			t.Errorf("Item %d: expected ammo %d, got %d", tc.itemType, tc.ammo, p.SpecialAmmo)
		}
	}
}

func TestSurpriseRerolls(t *testing.T) {
	c := newCollector(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 400, Y: 250}}
	room := roomWithItem(7)

	c.Step(p, room)

	if !room.Items[0].Collected {
		t.Fatal("Expected the surprise collected")
	}
	// The reroll lands on one of the concrete pickups.
	gotSomething := p.Ammo == player.AmmoMax ||
		p.Fuel == player.FuelMax ||
		p.Health == player.HealthMax ||
		p.SpecialAmmo > 0
	if !gotSomething {
		t.Error("Expected the surprise to grant a concrete pickup")
	}
}

func TestCollectedStaysCollected(t *testing.T) {
	log := &soundLog{}
	c := newCollector(log)
	p := &player.Player{Pos: geom.Vec2{X: 400, Y: 250}}
	room := roomWithItem(0)
	room.Items[0].Collected = true

	c.Step(p, room)

	if len(log.played) != 0 {
		t.Error("Expected no pickup from a collected item")
	}
	if p.Ammo != 0 {
		t.Errorf("Expected no effect, got ammo %d", p.Ammo)
	}
}

func TestNoPickupOutOfReach(t *testing.T) {
	c := newCollector(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 100, Y: 100}}
	room := roomWithItem(0)

	c.Step(p, room)

	if room.Items[0].Collected {
		t.Error("Expected the distant item untouched")
	}
}
