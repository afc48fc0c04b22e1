// Package behavior advances enemy records each tick: movement impulses,
// shooting gates, the type-10 spawner, and the type-20 carrier with its
// fellow. It mutates the room state in place and returns the projectiles
// fired so the combat layer can take them over.
package behavior

import (
	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
	"github.com/cobbes/jetstorm/physics"
)

// Spawner settings for type 10.
const (
	from10Cap      = 10
	from10MinType  = 11
	from10MaxType  = 17
	from10Health   = 10
	from10Cooldown = 500 // only type 13 shoots among the spawnables
)

// Per-type projectile sizes.
var shotSizes = map[int]geom.Vec2{
	1:  {X: 50, Y: 50},
	2:  {X: 18, Y: 18},
	3:  {X: 17, Y: 6},
	5:  {X: 40, Y: 50},
	6:  {X: 34, Y: 50},
	7:  {X: 18, Y: 21},
	8:  {X: 50, Y: 50},
	9:  {X: 50, Y: 35},
	13: {X: 17, Y: 6},
}

// ShotSize returns the projectile size fired by an enemy type.
func ShotSize(enemyType int) geom.Vec2 {
	return shotSizes[enemyType]
}

// Shot is a projectile fired by an enemy this tick.
type Shot struct {
	EnemyType int
	Pos       geom.Vec2
	Vel       geom.Vec2
	Size      geom.Vec2
}

// Stepper drives all enemy behavior for the current room.
type Stepper struct {
	Dice     *dice.Roller
	Audio    audio.Player
	Counters *audio.Counters
}

// Step advances every live enemy in the room by one tick and returns the
// shots fired. playerPos is the player's center in world coordinates.
func (s *Stepper) Step(dt float64, room *maze.Room, playerPos geom.Vec2) []Shot {
	walls := room.WallBoxes()
	var shots []Shot

	for i := range room.Enemies {
		e := &room.Enemies[i]
		if e.Health <= 0 {
			continue
		}
		shots = s.stepEnemy(dt, e, room, walls, playerPos, shots)
	}

	// Spawned enemies are only ever types 11..17; iterate a snapshot of
	// the indexes since nothing here appends to the slice.
	for i := range room.EnemiesFrom10 {
		e := &room.EnemiesFrom10[i]
		if e.Health <= 0 {
			continue
		}
		shots = s.stepEnemy(dt, e, room, walls, playerPos, shots)
	}

	return shots
}

func (s *Stepper) stepEnemy(dt float64, e *maze.Enemy, room *maze.Room, walls []geom.Box, playerPos geom.Vec2, shots []Shot) []Shot {
	switch e.Type {
	case 1:
		if shot := shoot01(&e.Cooldown, e.CooldownMax, e.Dir, e.Pos, playerPos.Y); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(1, s.Audio)
		}

	case 2:
		if shot := shoot02(&e.Cooldown, e.CooldownMax, e.Pos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy02Shot)
		}

	case 3:
		e.Dir = facing(e.Pos.X, playerPos.X)
		if shot := shoot03(&e.Cooldown, e.CooldownMax, e.Dir, e.Pos, playerPos.Y); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy03Shot)
		}

	case 5:
		if shot := shoot05(&e.Cooldown, e.CooldownMax, e.Pos, playerPos.X); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(5, s.Audio)
		}

	case 6:
		if shot := shoot06(&e.Cooldown, e.CooldownMax, e.Pos, playerPos.X); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(6, s.Audio)
		}

	case 7:
		if shot := shoot07(&e.Cooldown, e.CooldownMax, e.Pos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy07Shot)
		}

	case 8:
		if shot := shoot08(e.Dir, &e.Health, e.Pos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(8, s.Audio)
		}

	case 9:
		if shot := shoot09(&e.Health, e.Pos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy09Launch)
			s.Counters.ShotFired(9, s.Audio)
		}

	case 10:
		if e.Cooldown > 0 {
			e.Cooldown--
			break
		}
		e.Cooldown = e.CooldownMax
		s.spawnFrom10(room, e.RoomSeq, e.Pos)
		s.Audio.Play(audio.SoundEnemy10Spawn)

	case 11, 14, 17:
		s.roam(dt, e)
		s.track(dt, e, playerPos.Y)
		e.Pos, e.Vel = physics.Step(dt, e.Pos, e.Vel, e.Size(), walls)

	case 12, 18, 19:
		s.roam(dt, e)
		e.Pos, e.Vel = physics.Step(dt, e.Pos, e.Vel, e.Size(), walls)

	case 13:
		e.Dir = facing(e.Pos.X, playerPos.X)
		s.roam(dt, e)
		s.track(dt, e, playerPos.Y)
		e.Pos, e.Vel = physics.Step(dt, e.Pos, e.Vel, e.Size(), walls)
		if shot := shoot13(&e.Cooldown, e.CooldownMax, e.Dir, e.Pos, playerPos.Y); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy03Shot)
		}

	case 15, 16:
		// Constant diagonal drift set at spawn or load.
		e.Pos, e.Vel = physics.Step(dt, e.Pos, e.Vel, e.Size(), walls)

	case 20:
		shots = s.stepCarrier(dt, e, room, walls, playerPos, shots)
	}

	return shots
}

// roam adds a random impulse on both axes.
func (s *Stepper) roam(dt float64, e *maze.Enemy) {
	e.Vel = e.Vel.Add(geom.Vec2{
		X: s.Dice.Float(-1000, 1000),
		Y: s.Dice.Float(-1000, 1000),
	}.Scale(dt))
}

// track pulls the enemy vertically toward the player.
func (s *Stepper) track(dt float64, e *maze.Enemy, playerY float64) {
	e.Vel = e.Vel.Add(geom.Vec2{Y: playerY - e.Pos.Y}.Scale(dt))
}

func facing(enemyX, playerX float64) maze.Direction {
	if enemyX > playerX {
		return maze.DirLeft
	}
	return maze.DirRight
}

// stepCarrier moves a type-20 carrier and proxies its fellow's shooting
// from the riding position, one tile above the carrier.
func (s *Stepper) stepCarrier(dt float64, e *maze.Enemy, room *maze.Room, walls []geom.Box, playerPos geom.Vec2, shots []Shot) []Shot {
	s.roam(dt, e)

	var rider float64
	if e.Fellow != nil {
		if e.Fellow.Type == 7 {
			rider += maze.Enemy07Size.Y + 4
		} else {
			rider += maze.EnemyTile.Y
		}
	}
	if e.FellowItem != nil {
		rider += maze.ItemSize.Y
	}
	e.Pos, e.Vel = physics.StepCarrier(dt, e.Pos, e.Vel, rider, walls)

	if e.Fellow == nil {
		return shots
	}

	f := e.Fellow
	firePos := geom.Vec2{X: e.Pos.X, Y: e.Pos.Y + maze.EnemyTile.Y}

	switch f.Type {
	case 1:
		if shot := shoot01(&f.Cooldown, f.CooldownMax, f.Dir, firePos, playerPos.Y); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(1, s.Audio)
		}
	case 2:
		if shot := shoot02(&f.Cooldown, f.CooldownMax, firePos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy02Shot)
		}
	case 3:
		f.Dir = facing(e.Pos.X, playerPos.X)
		if shot := shoot03(&f.Cooldown, f.CooldownMax, f.Dir, firePos, playerPos.Y); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy03Shot)
		}
	case 5:
		if shot := shoot05(&f.Cooldown, f.CooldownMax, firePos, playerPos.X); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(5, s.Audio)
		}
	case 7:
		if shot := shoot07(&f.Cooldown, f.CooldownMax, firePos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy07Shot)
		}
	case 8:
		// The whole composite launches; the carrier dies with the shot.
		if shot := shoot08(f.Dir, &e.Health, firePos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Counters.ShotFired(8, s.Audio)
		}
	case 9:
		if shot := shoot09(&e.Health, firePos, playerPos); shot != nil {
			shots = append(shots, *shot)
			s.Audio.Play(audio.SoundEnemy09Launch)
			s.Counters.ShotFired(9, s.Audio)
		}
	case 10:
		if f.Cooldown > 0 {
			f.Cooldown--
			break
		}
		f.Cooldown = f.CooldownMax
		s.spawnFrom10(room, e.RoomSeq, firePos)
		s.Audio.Play(audio.SoundEnemy10Spawn)
	}

	return shots
}

// spawnFrom10 adds a random spawnable enemy at pos unless the room already
// holds the spawn cap. The spawn sound cue fires either way; only the
// record creation is capped.
func (s *Stepper) spawnFrom10(room *maze.Room, roomSeq int, pos geom.Vec2) {
	if len(room.EnemiesFrom10) >= from10Cap {
		return
	}

	id := s.Dice.Between(from10MinType, from10MaxType)

	var vel geom.Vec2
	if id == 15 || id == 16 {
		vel = geom.Vec2{
			X: 150 * float64(s.Dice.Sign()),
			Y: 150 * float64(s.Dice.Sign()),
		}
	}

	cooldownMax := maze.NoCooldown
	if id == 13 {
		cooldownMax = from10Cooldown
	}

	room.EnemiesFrom10 = append(room.EnemiesFrom10, maze.Enemy{
		Health:      from10Health,
		RoomSeq:     roomSeq,
		EnemySeq:    room.From10Seq,
		Type:        id,
		ColorIndex:  s.Dice.IntN(maze.NumEnemyColors),
		Pos:         pos,
		Vel:         vel,
		CooldownMax: cooldownMax,
		IsFrom10:    true,
	})
	room.From10Seq++
}

// shoot01 fires horizontally along the facing while the player is within
// the 50-unit band centered on the shooter. The cooldown only runs while
// the band gate holds.
func shoot01(cd *int, max int, dir maze.Direction, pos geom.Vec2, playerY float64) *Shot {
	if playerY <= pos.Y-25 || playerY >= pos.Y+25 {
		return nil
	}
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	shot := Shot{EnemyType: 1, Size: ShotSize(1), Pos: pos}
	if dir == maze.DirLeft {
		shot.Vel = geom.Vec2{X: -300}
		shot.Pos.X -= 10
	} else {
		shot.Vel = geom.Vec2{X: 300}
		shot.Pos.X += 10
	}
	return &shot
}

// shoot02 lobs a slow aimed shot at the player. No positional gate.
func shoot02(cd *int, max int, pos, playerPos geom.Vec2) *Shot {
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	vel := playerPos.Add(pos.Scale(-1)).Normalize().Scale(200)
	return &Shot{
		EnemyType: 2,
		Size:      ShotSize(2),
		Pos:       geom.Vec2{X: pos.X, Y: pos.Y + 10},
		Vel:       vel,
	}
}

func shoot03(cd *int, max int, dir maze.Direction, pos geom.Vec2, playerY float64) *Shot {
	if playerY <= pos.Y-25 || playerY >= pos.Y+25 {
		return nil
	}
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	shot := Shot{EnemyType: 3, Size: ShotSize(3), Pos: geom.Vec2{X: pos.X, Y: pos.Y + 4}}
	if dir == maze.DirLeft {
		shot.Vel = geom.Vec2{X: -300}
		shot.Pos.X -= 15
	} else {
		shot.Vel = geom.Vec2{X: 300}
		shot.Pos.X += 15
	}
	return &shot
}

// shoot05 fires straight up while the player is horizontally overhead.
func shoot05(cd *int, max int, pos geom.Vec2, playerX float64) *Shot {
	if playerX <= pos.X-25 || playerX >= pos.X+25 {
		return nil
	}
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	return &Shot{
		EnemyType: 5,
		Size:      ShotSize(5),
		Pos:       geom.Vec2{X: pos.X, Y: pos.Y + 25},
		Vel:       geom.Vec2{Y: 300},
	}
}

// shoot06 drops a shot straight down while the player is below.
func shoot06(cd *int, max int, pos geom.Vec2, playerX float64) *Shot {
	if playerX <= pos.X-25 || playerX >= pos.X+25 {
		return nil
	}
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	return &Shot{
		EnemyType: 6,
		Size:      ShotSize(6),
		Pos:       geom.Vec2{X: pos.X, Y: pos.Y - 25},
		Vel:       geom.Vec2{Y: -200},
	}
}

func shoot07(cd *int, max int, pos, playerPos geom.Vec2) *Shot {
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	vel := playerPos.Add(pos.Scale(-1)).Normalize().Scale(200)
	return &Shot{
		EnemyType: 7,
		Size:      ShotSize(7),
		Pos:       geom.Vec2{X: pos.X, Y: pos.Y + 10},
		Vel:       vel,
	}
}

// shoot08 is the kamikaze diagonal missile. It launches when the player
// sits on the 45-degree corridor on the facing side; the shooter itself is
// consumed by the launch.
func shoot08(dir maze.Direction, health *int, pos, playerPos geom.Vec2) *Shot {
	dx := abs(playerPos.X - pos.X)
	dy := abs(playerPos.Y - pos.Y)
	if abs(dx-dy) >= 12.5 {
		return nil
	}

	if dir == maze.DirLeft && playerPos.X < pos.X {
		*health = 0
		return &Shot{EnemyType: 8, Size: ShotSize(8), Pos: pos, Vel: geom.Vec2{X: -140, Y: 140}}
	}
	if dir == maze.DirRight && playerPos.X > pos.X {
		*health = 0
		return &Shot{EnemyType: 8, Size: ShotSize(8), Pos: pos, Vel: geom.Vec2{X: 140, Y: 140}}
	}
	return nil
}

// shoot09 is the homing-band kamikaze: it launches toward the player's
// side as soon as the player enters its horizontal band, consuming the
// shooter.
func shoot09(health *int, pos, playerPos geom.Vec2) *Shot {
	if playerPos.Y <= pos.Y-25 || playerPos.Y >= pos.Y+25 {
		return nil
	}
	*health = 0

	vel := geom.Vec2{X: 200}
	if playerPos.X < pos.X {
		vel.X = -200
	}
	return &Shot{EnemyType: 9, Size: ShotSize(9), Pos: pos, Vel: vel}
}

func shoot13(cd *int, max int, dir maze.Direction, pos geom.Vec2, playerY float64) *Shot {
	if playerY <= pos.Y-25 || playerY >= pos.Y+25 {
		return nil
	}
	if *cd > 0 {
		*cd--
		return nil
	}
	*cd = max

	shot := Shot{EnemyType: 13, Size: ShotSize(13), Pos: geom.Vec2{X: pos.X, Y: pos.Y + 8}}
	if dir == maze.DirLeft {
		shot.Vel = geom.Vec2{X: -300}
		shot.Pos.X -= 12
	} else {
		shot.Vel = geom.Vec2{X: 300}
		shot.Pos.X += 12
	}
	return &shot
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
