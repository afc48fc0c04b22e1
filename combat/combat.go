// Package combat resolves everything that deals damage: the player's
// cannon shot, enemy projectiles in flight, and direct contact between the
// ship and enemies. It mutates the maze records and the player state and
// reports score and base changes through the event queue.
package combat

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/behavior"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/explosion"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/player"
)

// CannonDamage is dealt per cannon hit; contact deals ContactDamage to
// both sides.
const (
	CannonDamage  = 10
	ContactDamage = 10
)

// KillScore and BaseScore are the points for a regular kill and for
// destroying a base.
const (
	KillScore = 100
	BaseScore = 1000
)

// CannonShot is the single cannon projectile. The player cannot fire again
// until it terminates.
type CannonShot struct {
	Pos geom.Vec2
	Vel geom.Vec2
}

// Size returns the cannon shot collision box size.
func (CannonShot) Size() geom.Vec2 {
	return geom.Vec2{X: player.CannonW, Y: player.CannonH}
}

// System owns the live projectiles and applies all damage rules.
type System struct {
	Audio    audio.Player
	Counters *audio.Counters
	Events   *events.Queue
	Booms    *explosion.Set

	EnemyShots []behavior.Shot
	Cannon     *CannonShot
}

// AddEnemyShots takes over the projectiles fired this tick.
func (s *System) AddEnemyShots(shots []behavior.Shot) {
	s.EnemyShots = append(s.EnemyShots, shots...)
}

// FireCannon spawns the cannon projectile for an intent returned by the
// player movement step.
func (s *System) FireCannon(in *player.CannonIntent) {
	s.Cannon = &CannonShot{Pos: in.Pos, Vel: in.Vel}
}

// Reset drops all live projectiles, used on room transitions and restarts.
func (s *System) Reset(p *player.Player) {
	s.EnemyShots = nil
	if s.Cannon != nil {
		s.Cannon = nil
		p.ShootingCannon = false
	}
}

func (s *System) boom(pos geom.Vec2) {
	s.Booms.SpawnBoom(pos)
	s.Audio.Play(audio.SoundBoom)
}

// creditKill plays the destruction effects for a killed enemy and applies
// the score. Bases additionally trigger the screen flash and decrement the
// base counter.
func (s *System) creditKill(m *maze.Maze, enemyType int, pos geom.Vec2) {
	s.Booms.SpawnBoom(pos)
	if enemyType == 0 {
		s.Booms.SpawnFlash()
		s.Audio.Play(audio.SoundBoomBase)
		m.Score += BaseScore
		m.Bases--
	} else {
		s.Audio.Play(audio.SoundBoom)
		m.Score += KillScore
	}
}

func fellowBox(carrierPos geom.Vec2, fellowType int) geom.Box {
	size := maze.EnemyTile
	if fellowType == 7 {
		size = maze.Enemy07Size
	}
	return geom.Box{
		Center: geom.Vec2{X: carrierPos.X, Y: carrierPos.Y + maze.EnemyTile.Y/2 + size.Y/2},
		Size:   size,
	}
}

func riderPos(carrierPos geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: carrierPos.X, Y: carrierPos.Y + maze.EnemyTile.Y}
}

// StepCannon advances the cannon shot one tick and resolves its hits. The
// shot dies on the first tick it touches anything; enemies take damage at
// the shot's target position before walls are considered.
func (s *System) StepCannon(dt float64, m *maze.Maze, p *player.Player, room *maze.Room) {
	if s.Cannon == nil {
		return
	}

	target := geom.Vec2{X: s.Cannon.Pos.X + s.Cannon.Vel.X*dt, Y: s.Cannon.Pos.Y}
	shotBox := geom.Box{Center: target, Size: s.Cannon.Size()}
	collided := false

	for i := range room.Enemies {
		e := &room.Enemies[i]
		if e.Health <= 0 {
			continue
		}

		if e.Type == 20 {
			fellowDied := false
			carrierDied := false

			if e.Fellow != nil {
				if shotBox.Overlaps(fellowBox(e.Pos, e.Fellow.Type)) {
					collided = true
					e.Fellow.Health -= CannonDamage
					if e.Fellow.Health <= 0 {
						s.boom(riderPos(e.Pos))
						m.Score += KillScore
						fellowDied = true
					} else {
						s.Audio.Play(audio.SoundEnemyDamage)
					}
				}
			}

			if !collided {
				if shotBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
					collided = true
					e.Health -= CannonDamage
					if e.Health <= 0 {
						s.boom(e.Pos)
						m.Score += KillScore
						carrierDied = true
					} else {
						s.Audio.Play(audio.SoundEnemyDamage)
					}
				}
			}

			// carrier and fellow die together, whichever goes first
			if fellowDied {
				e.Health = 0
				s.boom(e.Pos)
			}
			if carrierDied && e.Fellow != nil {
				e.Fellow.Health = 0
				s.boom(riderPos(e.Pos))
			}
			continue
		}

		if shotBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			collided = true
			e.Health -= CannonDamage
			if e.Health <= 0 {
				s.creditKill(m, e.Type, e.Pos)
			} else {
				s.Audio.Play(audio.SoundEnemyDamage)
			}
		}
	}

	for i := 0; i < len(room.EnemiesFrom10); i++ {
		e := &room.EnemiesFrom10[i]
		if e.Health <= 0 {
			continue
		}
		if !shotBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			continue
		}
		collided = true
		e.Health -= CannonDamage
		if e.Health <= 0 {
			s.boom(e.Pos)
			m.Score += KillScore
			room.RemoveFrom10(e.EnemySeq)
			i--
		} else {
			s.Audio.Play(audio.SoundEnemyDamage)
		}
	}

	if collided {
		s.Cannon = nil
		p.ShootingCannon = false
		s.Events.Push(events.ScoreChanged{Score: m.Score})
		s.Events.Push(events.BaseCountChanged{Bases: m.Bases})
		return
	}

	if hitsAny(shotBox, room.WallBoxes()) {
		s.Cannon = nil
		p.ShootingCannon = false
		return
	}

	s.Cannon.Pos = target
	if s.Cannon.Pos.X < -player.CannonW || s.Cannon.Pos.X > maze.WindowW+player.CannonW {
		s.Cannon = nil
		p.ShootingCannon = false
	}
}

// shotBooms lists the enemy types whose projectiles explode visibly.
func shotBooms(enemyType int) bool {
	switch enemyType {
	case 1, 5, 6, 8, 9:
		return true
	}
	return false
}

// StepEnemyShots advances every enemy projectile one tick. A projectile
// terminates on the player, on a wall, or outside the playfield; each
// termination releases its type's looped sound slot.
func (s *System) StepEnemyShots(dt float64, p *player.Player, walls []geom.Box) {
	playerBox := p.Box()
	live := s.EnemyShots[:0]

	for i := range s.EnemyShots {
		shot := s.EnemyShots[i]
		target := shot.Pos.Add(shot.Vel.Scale(dt))

		if (geom.Box{Center: target, Size: shot.Size}).Overlaps(playerBox) {
			s.Counters.ShotGone(shot.EnemyType, s.Audio)

			// a type-9 missile is unsurvivable
			if shot.EnemyType == 9 {
				p.Health = 0
			}

			if shotBooms(shot.EnemyType) {
				s.Booms.SpawnBoom(shot.Pos)
				s.Audio.Play(audio.SoundBoom)
			} else {
				s.Audio.Play(audio.SoundShipDamage)
			}

			p.Health -= 10
			continue
		}

		if hitsAny(geom.Box{Center: target, Size: shot.Size}, walls) {
			if shotBooms(shot.EnemyType) {
				s.Booms.SpawnBoom(shot.Pos)
				s.Audio.Play(audio.SoundBoom)
			}
			s.Counters.ShotGone(shot.EnemyType, s.Audio)
			continue
		}

		if shot.Pos.X < 0 || shot.Pos.X > maze.WindowW ||
			shot.Pos.Y < 0 || shot.Pos.Y > maze.FieldH {
			s.Counters.ShotGone(shot.EnemyType, s.Audio)
			continue
		}

		shot.Pos = target
		live = append(live, shot)
	}
	s.EnemyShots = live
}

// ContactPass applies mutual contact damage between the ship and every
// enemy it overlaps. The whole pass runs at most once per DamageDelay
// ticks; the damage loop sound plays while contact persists and stops on
// the first damage-free pass.
func (s *System) ContactPass(p *player.Player, m *maze.Maze, room *maze.Room) {
	if p.DamageCooldown > 0 {
		p.DamageCooldown--
		return
	}

	playerBox := p.Box()
	takingDamage := false
	dmgSoundStarted := false
	somethingDied := false

	startDamageLoop := func() {
		if !dmgSoundStarted && !s.Audio.Looping(audio.ChannelDamage) {
			s.Audio.PlayLoop(audio.ChannelDamage)
			dmgSoundStarted = true
		}
	}

	for i := 0; i < len(room.EnemiesFrom10); i++ {
		e := &room.EnemiesFrom10[i]
		if e.Health <= 0 {
			continue
		}
		if !playerBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			continue
		}
		takingDamage = true
		p.Health -= ContactDamage
		e.Health -= ContactDamage
		if e.Health <= 0 {
			s.boom(e.Pos)
			m.Score += KillScore
			room.RemoveFrom10(e.EnemySeq)
			i--
			somethingDied = true
		} else {
			startDamageLoop()
		}
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
				if playerBox.Overlaps(fellowBox(e.Pos, e.Fellow.Type)) {
					takingDamage = true
					p.Health -= ContactDamage
					e.Fellow.Health -= ContactDamage
					if e.Fellow.Health <= 0 {
						s.boom(riderPos(e.Pos))
						m.Score += KillScore
						fellowDied = true
						somethingDied = true
					} else {
						startDamageLoop()
					}
				}
			} else if e.FellowItem != nil && !e.FellowItem.Collected {
				itemBox := geom.Box{Center: riderPos(e.Pos), Size: maze.ItemSize}
				if playerBox.Overlaps(itemBox) {
					s.Audio.Play(audio.SoundGetItem)
					s.collectFellowItem(p, e.FellowItem)
					fellowDied = true
				}
			}

			if playerBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
				takingDamage = true
				p.Health -= ContactDamage
				e.Health -= ContactDamage
				if e.Health <= 0 {
					s.boom(e.Pos)
					m.Score += KillScore
					carrierDied = true
					somethingDied = true
				} else {
					startDamageLoop()
				}
			}

			if fellowDied {
				e.Health = 0
				s.boom(e.Pos)
			}
			if carrierDied && e.Fellow != nil {
				e.Fellow.Health = 0
				s.boom(riderPos(e.Pos))
			}
			continue
		}

		if playerBox.Overlaps(geom.Box{Center: e.Pos, Size: maze.EnemyTile}) {
			takingDamage = true
			p.Health -= ContactDamage
			e.Health -= ContactDamage
			if e.Health <= 0 {
				s.creditKill(m, e.Type, e.Pos)
				somethingDied = true
			} else {
				startDamageLoop()
			}
		}
	}

	if somethingDied {
		s.Events.Push(events.ScoreChanged{Score: m.Score})
		s.Events.Push(events.BaseCountChanged{Bases: m.Bases})
	}

	if !takingDamage {
		s.Audio.StopLoop(audio.ChannelDamage)
	}

	p.DamageCooldown = player.DamageDelay
}

// collectFellowItem applies a carried item's effect. Carried items are a
// weaker variant of the floor pickups: the ball grants only a small ammo
// stock and the star and surprise do nothing.
func (s *System) collectFellowItem(p *player.Player, it *maze.FellowItem) {
	switch it.Type {
	case 0:
		p.Ammo = player.AmmoMax
	case 1:
		p.Special = events.SpecialBall
		p.SpecialAmmo = 10
	case 2:
		p.Fuel = player.FuelMax
	case 3:
		p.Special = events.SpecialMissileDown
		p.SpecialAmmo = 50
	case 4:
		p.Special = events.SpecialMissileSide
		p.SpecialAmmo = 50
	case 5:
		p.Health = player.HealthMax
	case 6, 7:
		// the carried star and surprise are duds
	}

	s.Events.Push(events.SpecialChanged{Special: p.Special})
	s.Events.Push(events.SpecialAmmoChanged{Ammo: p.SpecialAmmo})
	it.Collected = true
}

func hitsAny(b geom.Box, walls []geom.Box) bool {
	for _, w := range walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}
