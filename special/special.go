// Package special implements the four secondary weapons: the bouncing
// ball, the two missiles and the homing star. Only one special is airborne
// at a time; every special destroys any enemy it touches outright.
package special

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/explosion"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/player"
)

// Projectile sizes.
var (
	BallSize        = geom.Vec2{X: 22, Y: 22}
	MissileSideSize = geom.Vec2{X: 25, Y: 21}
	MissileDownSize = geom.Vec2{X: 21, Y: 25}
	StarSize        = geom.Vec2{X: 21, Y: 21}
)

// Lifetimes in ticks. The fade phase starts the color cycling and, for
// the ball, the velocity decay.
const (
	BallDuration = 15000
	StarDuration = 18000
	fadeBelow    = 6000

	starSpeed     = 100.0
	starForce     = 400.0
	starSoundGap  = 100
	ballDecay     = 0.0001
	missileSideFX = 100.0
	missileRiseFY = 150.0
	missileDownFY = -100.0
)

// Special is the single airborne special projectile.
type Special struct {
	Type events.SpecialType
	Pos  geom.Vec2
	Vel  geom.Vec2
	Dir  maze.Direction

	Duration   int
	ColorIndex int
	soundDelay int
}

// Size returns the projectile's collision box size.
func (sp *Special) Size() geom.Vec2 {
	switch sp.Type {
	case events.SpecialBall:
		return BallSize
	case events.SpecialMissileSide:
		return MissileSideSize
	case events.SpecialMissileDown:
		return MissileDownSize
	default:
		return StarSize
	}
}

// System owns the airborne special and resolves its effects.
type System struct {
	Dice   *dice.Roller
	Audio  audio.Player
	Events *events.Queue
	Booms  *explosion.Set

	Active *Special
}

// Launch spawns the special a player intent asked for.
func (s *System) Launch(in *player.SpecialIntent) {
	sp := Special{Type: in.Type, Pos: in.Pos, Dir: in.Dir}

	switch in.Type {
	case events.SpecialBall:
		sp.Vel = geom.Vec2{X: 250, Y: -300}
		if in.Dir == maze.DirLeft {
			sp.Vel.X = -250
		}
		sp.Duration = BallDuration

	case events.SpecialMissileSide:
		sp.Vel = geom.Vec2{X: 200, Y: -200}
		if in.Dir == maze.DirLeft {
			sp.Vel.X = -200
		}

	case events.SpecialMissileDown:
		sp.Vel = geom.Vec2{Y: -200}
		sp.Dir = maze.DirNone

	case events.SpecialStar:
		sp.Vel = geom.Vec2{
			X: starSpeed * float64(s.Dice.Sign()),
			Y: starSpeed * float64(s.Dice.Sign()),
		}
		sp.Duration = StarDuration
	}

	s.Active = &sp
}

// Despawn removes the airborne special, re-arming the trigger.
func (s *System) Despawn(p *player.Player) {
	if s.Active != nil {
		s.Active = nil
		p.ShootingSpecial = false
	}
}

// Step advances the airborne special by one tick.
func (s *System) Step(dt float64, p *player.Player, m *maze.Maze, room *maze.Room) {
	if s.Active == nil {
		return
	}

	switch s.Active.Type {
	case events.SpecialBall:
		s.stepBall(dt, p, m, room)
	case events.SpecialMissileSide, events.SpecialMissileDown:
		s.stepMissile(dt, p, m, room)
	case events.SpecialStar:
		s.stepStar(dt, p, m, room)
	}
}

func (s *System) stepBall(dt float64, p *player.Player, m *maze.Maze, room *maze.Room) {
	sp := s.Active
	walls := room.WallBoxes()
	step := sp.Vel.Scale(dt)

	target := geom.Vec2{X: sp.Pos.X + step.X, Y: sp.Pos.Y}
	if hitsAny(geom.Box{Center: target, Size: BallSize}, walls) {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Vel.X *= -1
	} else {
		sp.Pos = target
	}

	target = geom.Vec2{X: sp.Pos.X, Y: sp.Pos.Y + step.Y}
	if hitsAny(geom.Box{Center: target, Size: BallSize}, walls) {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Vel.Y *= -1
	} else {
		sp.Pos = target
	}

	if sp.Pos.X < BallSize.X/2 {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Pos.X = BallSize.X / 2
		sp.Vel.X *= -1
	}
	if sp.Pos.X > maze.WindowW-BallSize.X/2 {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Pos.X = maze.WindowW - BallSize.X/2
		sp.Vel.X *= -1
	}
	if sp.Pos.Y > maze.FieldH-BallSize.Y/2 {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Pos.Y = maze.FieldH - BallSize.Y/2
		sp.Vel.Y *= -1
	}
	if sp.Pos.Y < BallSize.Y/2 {
		s.Audio.Play(audio.SoundBallBounce)
		sp.Pos.Y = BallSize.Y / 2
		sp.Vel.Y *= -1
	}

	s.killSweep(geom.Box{Center: sp.Pos, Size: BallSize}, m, room)

	sp.Duration--
	if sp.Duration == 0 {
		s.Despawn(p)
		return
	}
	if sp.Duration <= fadeBelow {
		sp.ColorIndex = (sp.ColorIndex + 1) % maze.NumItemColors
		sp.Vel.X -= sp.Vel.X * ballDecay
		sp.Vel.Y -= sp.Vel.Y * ballDecay
	}
}

func (s *System) stepMissile(dt float64, p *player.Player, m *maze.Maze, room *maze.Room) {
	sp := s.Active
	size := sp.Size()

	var force geom.Vec2
	if sp.Type == events.SpecialMissileSide {
		if sp.Vel.Y < -1 || sp.Vel.Y > 1 {
			force.Y += missileRiseFY
		}
		switch sp.Dir {
		case maze.DirLeft:
			force.X -= missileSideFX
		case maze.DirRight:
			force.X += missileSideFX
		}
	} else {
		force.Y += missileDownFY
	}
	sp.Vel = sp.Vel.Add(force.Scale(dt))

	target := sp.Pos.Add(sp.Vel.Scale(dt))
	if hitsAny(geom.Box{Center: target, Size: size}, room.WallBoxes()) {
		s.Despawn(p)
		return
	}

	if sp.Pos.X < BallSize.X/2 || sp.Pos.X > maze.WindowW-BallSize.X/2 ||
		sp.Pos.Y < BallSize.Y/2 || sp.Pos.Y > maze.FieldH-BallSize.Y/2 {
		s.Despawn(p)
		return
	}

	sp.Pos = target

	if _, collided := s.killSweep(geom.Box{Center: sp.Pos, Size: size}, m, room); collided {
		s.Despawn(p)
	}
}

func (s *System) stepStar(dt float64, p *player.Player, m *maze.Maze, room *maze.Room) {
	sp := s.Active
	walls := room.WallBoxes()

	if sp.soundDelay > 0 {
		sp.soundDelay--
	}
	bounce := func() {
		if sp.soundDelay == 0 {
			s.Audio.Play(audio.SoundBallBounce)
			sp.soundDelay = starSoundGap
		}
	}

	pull := p.Pos.Add(sp.Pos.Scale(-1))
	if pull.Length() > 0 {
		sp.Vel = sp.Vel.Add(pull.Normalize().Scale(starForce * dt))
	}

	step := sp.Vel.Scale(dt)

	target := geom.Vec2{X: sp.Pos.X + step.X, Y: sp.Pos.Y}
	if hitsAny(geom.Box{Center: target, Size: StarSize}, walls) {
		bounce()
		sp.Vel.X *= -0.5
	} else {
		sp.Pos = target
	}

	target = geom.Vec2{X: sp.Pos.X, Y: sp.Pos.Y + step.Y}
	if hitsAny(geom.Box{Center: target, Size: StarSize}, walls) {
		bounce()
		sp.Vel.Y *= -0.5
	} else {
		sp.Pos = target
	}

	if sp.Pos.X < StarSize.X/2 {
		bounce()
		sp.Pos.X = StarSize.X / 2
		sp.Vel.X *= -0.5
	}
	if sp.Pos.X > maze.WindowW-StarSize.X/2 {
		bounce()
		sp.Pos.X = maze.WindowW - StarSize.X/2
		sp.Vel.X *= -0.5
	}
	if sp.Pos.Y > maze.FieldH-StarSize.Y/2 {
		bounce()
		sp.Pos.Y = maze.FieldH - StarSize.Y/2
		sp.Vel.Y *= -0.5
	}
	if sp.Pos.Y < StarSize.Y/2 {
		bounce()
		sp.Pos.Y = StarSize.Y / 2
		sp.Vel.Y *= -0.5
	}

	s.killSweep(geom.Box{Center: sp.Pos, Size: StarSize}, m, room)

	sp.Duration--
	if sp.Duration == 0 {
		s.Despawn(p)
		return
	}
	if sp.Duration <= fadeBelow {
		sp.ColorIndex = (sp.ColorIndex + 1) % maze.NumItemColors
	}
}

// killSweep destroys every enemy the box overlaps. Specials do not chip
// health; any touch is lethal, including to carriers (which take their
// fellow with them) and bases.
func (s *System) killSweep(box geom.Box, m *maze.Maze, room *maze.Room) (somethingDied, collided bool) {
	boom := func(pos geom.Vec2) {
		s.Booms.SpawnBoom(pos)
		s.Audio.Play(audio.SoundBoom)
	}
	rider := func(e *maze.Enemy) geom.Vec2 {
		return geom.Vec2{X: e.Pos.X, Y: e.Pos.Y + maze.EnemyTile.Y}
	}

	for i := 0; i < len(room.EnemiesFrom10); i++ {
		e := &room.EnemiesFrom10[i]
		if e.Health <= 0 {
			continue
		}
		if !box.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			continue
		}
		collided = true
		e.Health = 0
		boom(e.Pos)
		m.Score += 100
		room.RemoveFrom10(e.EnemySeq)
		i--
		somethingDied = true
	}

	for i := range room.Enemies {
		e := &room.Enemies[i]
		if e.Health <= 0 {
			continue
		}

		if e.Type == 20 {
			fellowDied := false
			carrierDied := false

			if e.Fellow != nil {
				fellowSize := maze.EnemyTile
				if e.Fellow.Type == 7 {
					fellowSize = maze.Enemy07Size
				}
				fellowBox := geom.Box{
					Center: geom.Vec2{X: e.Pos.X, Y: e.Pos.Y + maze.EnemyTile.Y/2 + fellowSize.Y/2},
					Size:   fellowSize,
				}
				if box.Overlaps(fellowBox) {
					collided = true
					e.Fellow.Health = 0
					boom(rider(e))
					m.Score += 100
					fellowDied = true
					somethingDied = true
				}
			}

			if box.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
				collided = true
				e.Health = 0
				boom(e.Pos)
				m.Score += 100
				carrierDied = true
				somethingDied = true
			}

			if fellowDied {
				e.Health = 0
				boom(e.Pos)
			}
			if carrierDied && e.Fellow != nil {
				e.Fellow.Health = 0
				boom(rider(e))
			}
			continue
		}

		if box.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			collided = true
			e.Health = 0
			s.Booms.SpawnBoom(e.Pos)
			if e.Type == 0 {
				s.Booms.SpawnFlash()
				s.Audio.Play(audio.SoundBoomBase)
				m.Score += 1000
				m.Bases--
			} else {
				s.Audio.Play(audio.SoundBoom)
				m.Score += 100
			}
			somethingDied = true
		}
	}

	if somethingDied {
		s.Events.Push(events.ScoreChanged{Score: m.Score})
		s.Events.Push(events.BaseCountChanged{Bases: m.Bases})
	}
	return somethingDied, collided
}

func hitsAny(b geom.Box, walls []geom.Box) bool {
	for _, w := range walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}
