// Package player holds the ship state and its per-tick movement: thrust,
// gravity, friction, wall bounces, weapon triggers and room transitions.
package player

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
)

// Ship geometry and starting state.
const (
	Width  = 99.0
	Height = 48.0

	StartX = 210.0
	StartY = 300.0

	HealthMax = 1000.0
	FuelMax   = 1000.0
	AmmoMax   = 1000

	// Fuel burned per tick per held thrust key.
	FuelSub = 0.005

	// Ticks between contact damage applications.
	DamageDelay = 50
)

// Movement tuning, in world units per second.
const (
	GravityY   = -60.0
	FrictionX  = 100.0
	ThrustX    = 200.0
	ThrustY    = 200.0
	WallBounce = -0.25
)

// Room exit thresholds. Crossing one while moving outward triggers a
// transition to the neighboring room.
const (
	LeftEdge   = Width / 2
	RightEdge  = maze.WindowW - Width/2
	TopEdge    = maze.FieldH - Height/2
	BottomEdge = Height / 2
)

// Cannon shot geometry.
const (
	CannonW     = 22.0
	CannonH     = 6.0
	CannonSpeed = 500.0
)

// Input is the movement-relevant key state for one tick. DownJust is the
// just-pressed edge of the special trigger; the rest are held states.
type Input struct {
	Left     bool
	Right    bool
	Up       bool
	Fire     bool
	DownJust bool
}

// CannonIntent asks the combat layer to spawn a cannon shot.
type CannonIntent struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

// SpecialIntent asks the special-weapon layer to launch the armed special.
type SpecialIntent struct {
	Type events.SpecialType
	Pos  geom.Vec2
	Dir  maze.Direction
}

// Player is the ship's full logical state. It survives room transitions
// and is reset by Clear when a new game starts.
type Player struct {
	Pos    geom.Vec2
	Health float64
	Fuel   float64
	Ammo   int

	Special     events.SpecialType
	SpecialAmmo int

	Dir maze.Direction
	Vel geom.Vec2

	ShootingCannon  bool
	ShootingSpecial bool

	Row, Col     int
	ChangingRoom bool

	DamageCooldown int
	IsDead         bool
	ColorIndex     int
}

// New returns a player ready for a fresh game.
func New() *Player {
	p := &Player{}
	p.Clear()
	return p
}

// Clear resets the full state for a new game.
func (p *Player) Clear() {
	p.Pos = geom.Vec2{X: StartX, Y: StartY}
	p.Health = HealthMax
	p.Fuel = FuelMax
	p.Ammo = AmmoMax
	p.Special = events.SpecialBall
	p.SpecialAmmo = 4
	p.Dir = maze.DirRight
	p.Vel = geom.Vec2{}
	p.ShootingCannon = false
	p.ShootingSpecial = false
	p.Row, p.Col = maze.StartRow, maze.StartCol
	p.ChangingRoom = false
	p.DamageCooldown = DamageDelay
	p.IsDead = false
	p.ColorIndex = 0
}

// Box returns the ship's collision box.
func (p *Player) Box() geom.Box {
	return geom.Box{Center: p.Pos, Size: geom.Vec2{X: Width, Y: Height}}
}

// Move advances the ship by one tick. It returns the weapon intents
// triggered this tick; firing sounds and ammo accounting happen here, the
// actual projectiles are spawned by the caller. A room transition pushes a
// RoomChanged event and freezes movement until the caller finishes the
// switch and clears ChangingRoom.
func (p *Player) Move(dt float64, in Input, walls []geom.Box, q *events.Queue, au audio.Player) (*CannonIntent, *SpecialIntent) {
	if p.ChangingRoom {
		return nil, nil
	}

	var force geom.Vec2
	force.Y += GravityY * dt

	if p.Vel.X > 0 {
		force.X -= FrictionX * dt
	}
	if p.Vel.X < 0 {
		force.X += FrictionX * dt
	}

	if in.Left && p.Fuel > 0 {
		p.Dir = maze.DirLeft
		p.Fuel -= FuelSub
		force.X -= ThrustX * dt
	}
	if in.Right && p.Fuel > 0 {
		p.Dir = maze.DirRight
		p.Fuel -= FuelSub
		force.X += ThrustX * dt
	}
	if in.Up && p.Fuel > 0 {
		p.Fuel -= FuelSub
		force.Y += ThrustY * dt
	}

	var special *SpecialIntent
	if in.DownJust && !p.ShootingSpecial && p.SpecialAmmo > 0 {
		au.Play(audio.SoundSpecialLaunch)
		p.SpecialAmmo--
		p.ShootingSpecial = true

		pos := p.Pos
		if p.Special == events.SpecialMissileDown || p.Special == events.SpecialMissileSide {
			pos.Y -= 10
		}
		special = &SpecialIntent{Type: p.Special, Pos: pos, Dir: p.Dir}
		q.Push(events.SpecialAmmoChanged{Ammo: p.SpecialAmmo})
	}

	var cannon *CannonIntent
	if in.Fire && !p.ShootingCannon && p.Ammo > 0 {
		au.Play(audio.SoundCannon)
		p.ShootingCannon = true
		p.Ammo--

		c := CannonIntent{Pos: geom.Vec2{X: p.Pos.X + 15, Y: p.Pos.Y - CannonH/2}, Vel: geom.Vec2{X: CannonSpeed}}
		if p.Dir == maze.DirLeft {
			c.Pos.X = p.Pos.X - 15
			c.Vel.X = -CannonSpeed
		}
		cannon = &c
	}

	p.Vel = p.Vel.Add(force)
	p.Vel.X = geom.Clamp(p.Vel.X, -400, 400)
	p.Vel.Y = geom.Clamp(p.Vel.Y, -400, 400)

	step := p.Vel.Scale(dt)
	size := geom.Vec2{X: Width, Y: Height}

	target := geom.Vec2{X: p.Pos.X + step.X, Y: p.Pos.Y}
	if hitsAny(geom.Box{Center: target, Size: size}, walls) {
		p.Vel.X *= WallBounce
	} else {
		p.Pos = target
	}

	target = geom.Vec2{X: p.Pos.X, Y: p.Pos.Y + step.Y}
	if hitsAny(geom.Box{Center: target, Size: size}, walls) {
		p.Vel.Y *= WallBounce
	} else {
		p.Pos = target
	}

	switch {
	case p.Vel.X < 0 && p.Pos.X < LeftEdge && !p.ChangingRoom:
		p.Pos.X = RightEdge - 1
		p.Col--
		p.beginTransition(q)
	case p.Vel.X > 0 && p.Pos.X > RightEdge && !p.ChangingRoom:
		p.Pos.X = LeftEdge + 1
		p.Col++
		p.beginTransition(q)
	case p.Vel.Y > 0 && p.Pos.Y > TopEdge && !p.ChangingRoom:
		p.Pos.Y = BottomEdge - 1
		p.Row--
		p.beginTransition(q)
	case p.Vel.Y < 0 && p.Pos.Y < BottomEdge && !p.ChangingRoom:
		p.Pos.Y = TopEdge + 1
		p.Row++
		p.beginTransition(q)
	}

	return cannon, special
}

func (p *Player) beginTransition(q *events.Queue) {
	p.ChangingRoom = true
	q.Push(events.RoomChanged{Row: p.Row, Col: p.Col})
}

func hitsAny(b geom.Box, walls []geom.Box) bool {
	for _, w := range walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}

// Status is the outcome of the per-tick health check.
type Status int

const (
	StatusAlive Status = iota
	StatusDying        // health just ran out, start the death sequence
	StatusDead         // death sequence finished, game over
)

// CheckStatus applies the empty-fuel health drain and reports whether the
// ship is still flying.
func (p *Player) CheckStatus() Status {
	if p.IsDead {
		return StatusDead
	}
	if p.Fuel < 0 {
		p.Health -= 0.5
	}
	if p.Health < 0 {
		return StatusDying
	}
	return StatusAlive
}
