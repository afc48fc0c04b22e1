package special

import (
	"math/rand"
	"testing"

	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/explosion"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/player"
)

const dt = 1.0 / 60.0

type soundLog struct {
	audio.Nop
	played []audio.Sound
}

func (s *soundLog) Play(snd audio.Sound) { s.played = append(s.played, snd) }

func (s *soundLog) count(snd audio.Sound) int {
	n := 0
	for _, p := range s.played {
		if p == snd {
			n++
		}
	}
	return n
}

func newSystem(log *soundLog) *System {
	d := dice.NewRoller(rand.New(rand.NewSource(1)))
	return &System{
		Dice:   d,
		Audio:  log,
		Events: events.NewQueue(),
		Booms:  explosion.NewSet(d),
	}
}

func TestLaunchBall(t *testing.T) {
	s := newSystem(&soundLog{})
	s.Launch(&player.SpecialIntent{
		Type: events.SpecialBall,
		Pos:  geom.Vec2{X: 400, Y: 250},
		Dir:  maze.DirLeft,
	})

	if s.Active == nil {
		t.Fatal("Expected an airborne special")
	}
	if s.Active.Vel.X != -250 || s.Active.Vel.Y != -300 {
		t.Errorf("Expected velocity (-250, -300), got %+v", s.Active.Vel)
	}
	if s.Active.Duration != BallDuration {
		t.Errorf("Expected duration %d, got %d", BallDuration, s.Active.Duration)
	}
}

func TestLaunchMissiles(t *testing.T) {
	s := newSystem(&soundLog{})

	s.Launch(&player.SpecialIntent{Type: events.SpecialMissileSide, Dir: maze.DirRight})
	if s.Active.Vel.X != 200 || s.Active.Vel.Y != -200 {
		t.Errorf("Expected side missile velocity (200, -200), got %+v", s.Active.Vel)
	}

	s.Launch(&player.SpecialIntent{Type: events.SpecialMissileDown})
	if s.Active.Vel.X != 0 || s.Active.Vel.Y != -200 {
		t.Errorf("Expected down missile velocity (0, -200), got %+v", s.Active.Vel)
	}
	if s.Active.Dir != maze.DirNone {
		t.Error("Expected the down missile to carry no facing")
	}
}

func TestLaunchStar(t *testing.T) {
	s := newSystem(&soundLog{})
	s.Launch(&player.SpecialIntent{Type: events.SpecialStar, Pos: geom.Vec2{X: 400, Y: 250}})

	v := s.Active.Vel
	if (v.X != 100 && v.X != -100) || (v.Y != 100 && v.Y != -100) {
		t.Errorf("Expected diagonal star velocity, got %+v", v)
	}
	if s.Active.Duration != StarDuration {
		t.Errorf("Expected duration %d, got %d", StarDuration, s.Active.Duration)
	}
}

func TestBallBouncesOffWall(t *testing.T) {
	log := &soundLog{}
	s := newSystem(log)
	p := &player.Player{Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{Walls: []maze.Wall{
		{Box: geom.Box{Center: geom.Vec2{X: 436, Y: 250}, Size: geom.Vec2{X: 49, Y: 49}}},
	}}

	s.Active = &Special{
		Type:     events.SpecialBall,
		Pos:      geom.Vec2{X: 400, Y: 250},
		Vel:      geom.Vec2{X: 250},
		Duration: BallDuration,
	}
	s.Step(dt, p, m, room)

	if s.Active.Vel.X != -250 {
		t.Errorf("Expected a full horizontal bounce, got %v", s.Active.Vel.X)
	}
	if s.Active.Pos.X != 400 {
		t.Errorf("Expected the ball held at the wall, got %v", s.Active.Pos.X)
	}
	if log.count(audio.SoundBallBounce) != 1 {
		t.Error("Expected the bounce sound")
	}
}

func TestBallBouncesOffScreenEdge(t *testing.T) {
	log := &soundLog{}
	s := newSystem(log)
	p := &player.Player{Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{}

	s.Active = &Special{
		Type:     events.SpecialBall,
		Pos:      geom.Vec2{X: 12, Y: 250},
		Vel:      geom.Vec2{X: -250},
		Duration: BallDuration,
	}
	s.Step(dt, p, m, room)

	if s.Active.Vel.X != 250 {
		t.Errorf("Expected a bounce off the left edge, got %v", s.Active.Vel.X)
	}
	if s.Active.Pos.X != BallSize.X/2 {
		t.Errorf("Expected the ball clamped to the edge, got %v", s.Active.Pos.X)
	}
	if log.count(audio.SoundBallBounce) != 1 {
		t.Error("Expected the bounce sound")
	}
}

func TestBallKillsOnTouch(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{Bases: 1}
	room := &maze.Room{Enemies: []maze.Enemy{
		{Health: 200, Type: 0, Pos: geom.Vec2{X: 410, Y: 250}},
	}}

	s.Active = &Special{
		Type:     events.SpecialBall,
		Pos:      geom.Vec2{X: 400, Y: 250},
		Vel:      geom.Vec2{X: 250},
		Duration: BallDuration,
	}
	s.Step(dt, p, m, room)

	if room.Enemies[0].Health > 0 {
		t.Error("Expected the base destroyed outright")
	}
	if m.Score != 1000 || m.Bases != 0 {
		t.Errorf("Expected score 1000 and no bases, got %d and %d", m.Score, m.Bases)
	}
	if s.Active == nil {
		t.Error("Expected the ball to survive the kill")
	}
}

func TestBallExpires(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{ShootingSpecial: true, Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{}

	s.Active = &Special{
		Type:     events.SpecialBall,
		Pos:      geom.Vec2{X: 400, Y: 250},
		Vel:      geom.Vec2{X: 10},
		Duration: 1,
	}
	s.Step(dt, p, m, room)

	if s.Active != nil {
		t.Error("Expected the ball gone")
	}
	if p.ShootingSpecial {
		t.Error("Expected the trigger re-armed")
	}
}

func TestBallFadeCyclesColor(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{}

	s.Active = &Special{
		Type:     events.SpecialBall,
		Pos:      geom.Vec2{X: 400, Y: 250},
		Vel:      geom.Vec2{X: 100},
		Duration: 5000,
	}
	s.Step(dt, p, m, room)

	if s.Active.ColorIndex != 1 {
		t.Errorf("Expected the fading ball to cycle color, got %d", s.Active.ColorIndex)
	}
	if s.Active.Vel.X >= 100 {
		t.Errorf("Expected the fading ball to slow down, got %v", s.Active.Vel.X)
	}
}

func TestMissileDiesOnWall(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{ShootingSpecial: true, Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{Walls: []maze.Wall{
		{Box: geom.Box{Center: geom.Vec2{X: 430, Y: 250}, Size: geom.Vec2{X: 49, Y: 49}}},
	}}

	s.Active = &Special{
		Type: events.SpecialMissileSide,
		Pos:  geom.Vec2{X: 400, Y: 250},
		Vel:  geom.Vec2{X: 200},
		Dir:  maze.DirRight,
	}
	s.Step(dt, p, m, room)

	if s.Active != nil {
		t.Error("Expected the missile destroyed on the wall")
	}
	if p.ShootingSpecial {
		t.Error("Expected the trigger re-armed")
	}
}

func TestMissileDiesOnKill(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{ShootingSpecial: true, Pos: geom.Vec2{X: 700, Y: 450}}
	m := &maze.Maze{}
	room := &maze.Room{Enemies: []maze.Enemy{
		{Health: 90, Type: 2, Pos: geom.Vec2{X: 410, Y: 250}},
	}}

	s.Active = &Special{
		Type: events.SpecialMissileDown,
		Pos:  geom.Vec2{X: 410, Y: 270},
		Vel:  geom.Vec2{Y: -200},
	}
	s.Step(dt, p, m, room)

	if room.Enemies[0].Health > 0 {
		t.Error("Expected the enemy destroyed outright")
	}
	if s.Active != nil {
		t.Error("Expected the missile consumed by the kill")
	}
	if m.Score != 100 {
		t.Errorf("Expected score 100, got %d", m.Score)
	}
}

func TestStarBouncesSoft(t *testing.T) {
	log := &soundLog{}
	s := newSystem(log)
	p := &player.Player{Pos: geom.Vec2{X: 12, Y: 250}}
	m := &maze.Maze{}
	room := &maze.Room{}

	s.Active = &Special{
		Type:     events.SpecialStar,
		Pos:      geom.Vec2{X: 11, Y: 250},
		Vel:      geom.Vec2{X: -100},
		Duration: StarDuration,
	}
	s.Step(dt, p, m, room)

	if s.Active.Vel.X <= 0 {
		t.Errorf("Expected the star reflected, got %v", s.Active.Vel.X)
	}
	if s.Active.Pos.X != StarSize.X/2 {
		t.Errorf("Expected the star clamped at the edge, got %v", s.Active.Pos.X)
	}
	if log.count(audio.SoundBallBounce) != 1 {
		t.Error("Expected a single bounce cue")
	}

	// The cue stays silent for a while after a bounce.
	s.Active.Pos = geom.Vec2{X: 11, Y: 250}
	s.Active.Vel = geom.Vec2{X: -100}
	s.Step(dt, p, m, room)
	if log.count(audio.SoundBallBounce) != 1 {
		t.Error("Expected the bounce cue rate limited")
	}
}

func TestStarHomesTowardPlayer(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{Pos: geom.Vec2{X: 700, Y: 250}}
	m := &maze.Maze{}
	room := &maze.Room{}

	s.Active = &Special{
		Type:     events.SpecialStar,
		Pos:      geom.Vec2{X: 400, Y: 250},
		Duration: StarDuration,
	}
	s.Step(dt, p, m, room)

	if s.Active.Vel.X <= 0 {
		t.Errorf("Expected attraction toward the player, got %v", s.Active.Vel.X)
	}
	if s.Active.Pos.X <= 400 {
		t.Errorf("Expected the star moving toward the player, got %v", s.Active.Pos.X)
	}
}

func TestDespawnRearmsTrigger(t *testing.T) {
	s := newSystem(&soundLog{})
	p := &player.Player{ShootingSpecial: true}
	s.Active = &Special{Type: events.SpecialBall}

	s.Despawn(p)

	if s.Active != nil || p.ShootingSpecial {
		t.Error("Expected the special gone and the trigger re-armed")
	}

	// A second despawn with nothing airborne is a no-op.
	p.ShootingSpecial = true
	s.Despawn(p)
	if !p.ShootingSpecial {
		t.Error("Expected no trigger change without an airborne special")
	}
}
