package behavior

import (
	"math/rand"
	"testing"

	"github.com/cobbes/jetstorm/audio"
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
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

func newStepper(log *soundLog) *Stepper {
	return &Stepper{
		Dice:     dice.NewRoller(rand.New(rand.NewSource(1))),
		Audio:    log,
		Counters: audio.NewCounters(),
	}
}

func shooter(enemyType, subtype int) maze.Enemy {
	health, _ := maze.EnemyHealth(enemyType)
	return maze.Enemy{
		Health:      health,
		Type:        enemyType,
		Subtype:     subtype,
		Pos:         geom.Vec2{X: 400, Y: 250},
		CooldownMax: maze.EnemyCooldown(enemyType),
		Dir:         maze.EnemyDir(enemyType, subtype),
	}
}

func TestShooterBandGate(t *testing.T) {
	s := newStepper(&soundLog{})
	room := &maze.Room{Enemies: []maze.Enemy{shooter(1, 1)}}

	// Player far below: no shot and no cooldown movement.
	room.Enemies[0].Cooldown = 100
	shots := s.Step(dt, room, geom.Vec2{X: 600, Y: 50})
	if len(shots) != 0 {
		t.Fatal("Expected no shot outside the band")
	}
	if room.Enemies[0].Cooldown != 100 {
		t.Errorf("Expected cooldown frozen outside the band, got %d", room.Enemies[0].Cooldown)
	}

	// In the band the cooldown runs down, one tick per step.
	shots = s.Step(dt, room, geom.Vec2{X: 600, Y: 250})
	if len(shots) != 0 {
		t.Fatal("Expected no shot while cooling down")
	}
	if room.Enemies[0].Cooldown != 99 {
		t.Errorf("Expected cooldown 99, got %d", room.Enemies[0].Cooldown)
	}

	// At zero it fires and resets.
	room.Enemies[0].Cooldown = 0
	shots = s.Step(dt, room, geom.Vec2{X: 600, Y: 250})
	if len(shots) != 1 {
		t.Fatal("Expected a shot at zero cooldown")
	}
	if room.Enemies[0].Cooldown != 500 {
		t.Errorf("Expected cooldown reset to 500, got %d", room.Enemies[0].Cooldown)
	}

	shot := shots[0]
	if shot.EnemyType != 1 {
		t.Errorf("Expected type 1 shot, got %d", shot.EnemyType)
	}
	if shot.Vel.X != 300 || shot.Pos.X != 410 {
		t.Errorf("Expected rightward muzzle at +10, got vel %v pos %v", shot.Vel.X, shot.Pos.X)
	}
}

func TestShooterFacingFollowsPlayer(t *testing.T) {
	s := newStepper(&soundLog{})
	room := &maze.Room{Enemies: []maze.Enemy{shooter(3, 0)}}
	room.Enemies[0].Cooldown = 0

	shots := s.Step(dt, room, geom.Vec2{X: 100, Y: 250})
	if room.Enemies[0].Dir != maze.DirLeft {
		t.Error("Expected facing to flip toward the player")
	}
	if len(shots) != 1 || shots[0].Vel.X != -300 {
		t.Fatalf("Expected leftward shot, got %+v", shots)
	}
	if shots[0].Pos.X != 400-15 || shots[0].Pos.Y != 254 {
		t.Errorf("Expected muzzle at (385, 254), got (%v, %v)", shots[0].Pos.X, shots[0].Pos.Y)
	}
}

func TestAimedShotNormalized(t *testing.T) {
	log := &soundLog{}
	s := newStepper(log)
	room := &maze.Room{Enemies: []maze.Enemy{shooter(2, 0)}}
	room.Enemies[0].Cooldown = 0

	// Player straight right: the aimed shot flies at exactly 200.
	shots := s.Step(dt, room, geom.Vec2{X: 700, Y: 250})
	if len(shots) != 1 {
		t.Fatal("Expected a shot")
	}
	if shots[0].Vel.X != 200 || shots[0].Vel.Y != 0 {
		t.Errorf("Expected velocity (200, 0), got (%v, %v)", shots[0].Vel.X, shots[0].Vel.Y)
	}
	if shots[0].Pos.Y != 260 {
		t.Errorf("Expected muzzle 10 above center, got %v", shots[0].Pos.Y)
	}
	if log.count(audio.SoundEnemy02Shot) != 1 {
		t.Error("Expected the type 2 shot sound")
	}
}

func TestKamikazeDiagonal(t *testing.T) {
	s := newStepper(&soundLog{})
	room := &maze.Room{Enemies: []maze.Enemy{shooter(8, 1)}}

	// Player up-right on the 45 degree corridor.
	shots := s.Step(dt, room, geom.Vec2{X: 500, Y: 350})
	if len(shots) != 1 {
		t.Fatal("Expected a kamikaze launch")
	}
	if shots[0].Vel.X != 140 || shots[0].Vel.Y != 140 {
		t.Errorf("Expected velocity (140, 140), got %+v", shots[0].Vel)
	}
	if room.Enemies[0].Health != 0 {
		t.Error("Expected the launcher consumed")
	}

	// Facing left, the same geometry does not trigger.
	room.Enemies = []maze.Enemy{shooter(8, 0)}
	shots = s.Step(dt, room, geom.Vec2{X: 500, Y: 350})
	if len(shots) != 0 {
		t.Error("Expected no launch against the facing")
	}
}

func TestKamikazeBand(t *testing.T) {
	log := &soundLog{}
	s := newStepper(log)
	room := &maze.Room{Enemies: []maze.Enemy{shooter(9, 0)}}

	shots := s.Step(dt, room, geom.Vec2{X: 100, Y: 260})
	if len(shots) != 1 {
		t.Fatal("Expected a launch inside the band")
	}
	if shots[0].Vel.X != -200 {
		t.Errorf("Expected launch toward the player, got %v", shots[0].Vel.X)
	}
	if room.Enemies[0].Health != 0 {
		t.Error("Expected the launcher consumed")
	}
	if log.count(audio.SoundEnemy09Launch) != 1 {
		t.Error("Expected the launch sound")
	}
}

func TestSpawner(t *testing.T) {
	log := &soundLog{}
	s := newStepper(log)
	spawner := shooter(10, 0)
	spawner.Cooldown = 0
	spawner.RoomSeq = 7
	room := &maze.Room{Enemies: []maze.Enemy{spawner}}

	s.Step(dt, room, geom.Vec2{X: 100, Y: 100})

	if len(room.EnemiesFrom10) != 1 {
		t.Fatalf("Expected 1 spawned enemy, got %d", len(room.EnemiesFrom10))
	}
	e := room.EnemiesFrom10[0]
	if e.Type < 11 || e.Type > 17 {
		t.Errorf("Expected spawned type in 11..17, got %d", e.Type)
	}
	if e.Health != 10 {
		t.Errorf("Expected health 10, got %d", e.Health)
	}
	if !e.IsFrom10 || e.EnemySeq != 0 || e.RoomSeq != 7 {
		t.Errorf("Unexpected spawn record %+v", e)
	}
	// The spawn steps once in the same tick, so allow a small drift.
	if dx := e.Pos.X - room.Enemies[0].Pos.X; dx < -5 || dx > 5 {
		t.Errorf("Expected spawn near the spawner, X off by %v", dx)
	}
	if dy := e.Pos.Y - room.Enemies[0].Pos.Y; dy < -5 || dy > 5 {
		t.Errorf("Expected spawn near the spawner, Y off by %v", dy)
	}
	if room.Enemies[0].Cooldown != room.Enemies[0].CooldownMax {
		t.Errorf("Expected spawner cooldown rearmed, got %d", room.Enemies[0].Cooldown)
	}
	if room.From10Seq != 1 {
		t.Errorf("Expected sequence advanced to 1, got %d", room.From10Seq)
	}
	if log.count(audio.SoundEnemy10Spawn) != 1 {
		t.Error("Expected the spawn sound")
	}
}

func TestSpawnerCap(t *testing.T) {
	log := &soundLog{}
	s := newStepper(log)
	spawner := shooter(10, 0)
	spawner.Cooldown = 0
	room := &maze.Room{Enemies: []maze.Enemy{spawner}}
	for i := 0; i < 10; i++ {
		room.EnemiesFrom10 = append(room.EnemiesFrom10, maze.Enemy{Health: 10, Type: 11, EnemySeq: i, IsFrom10: true})
	}
	room.From10Seq = 10

	s.Step(dt, room, geom.Vec2{X: 700, Y: 450})

	if len(room.EnemiesFrom10) != 10 {
		t.Errorf("Expected spawn cap held at 10, got %d", len(room.EnemiesFrom10))
	}
	// The cue still plays; only the record creation is capped.
	if log.count(audio.SoundEnemy10Spawn) != 1 {
		t.Error("Expected the spawn sound even at the cap")
	}
}

func TestCarrierFellowFiresFromRidingPosition(t *testing.T) {
	s := newStepper(&soundLog{})
	fh, _ := maze.EnemyHealth(3)
	carrier := shooter(20, 0)
	carrier.Fellow = &maze.FellowEnemy{
		Health:      fh,
		Type:        3,
		CooldownMax: maze.EnemyCooldown(3),
	}
	room := &maze.Room{Enemies: []maze.Enemy{carrier}}

	// The fellow's band is centered one tile above the carrier.
	shots := s.Step(dt, room, geom.Vec2{X: 700, Y: room.Enemies[0].Pos.Y + 50})
	if len(shots) != 1 {
		t.Fatalf("Expected the fellow to fire, got %d shots", len(shots))
	}
	if shots[0].EnemyType != 3 {
		t.Errorf("Expected a type 3 shot, got %d", shots[0].EnemyType)
	}
	wantY := room.Enemies[0].Pos.Y + 50 + 4
	if shots[0].Pos.Y != wantY {
		t.Errorf("Expected muzzle Y %v, got %v", wantY, shots[0].Pos.Y)
	}
}

func TestCarrierKamikazeFellowConsumesCarrier(t *testing.T) {
	s := newStepper(&soundLog{})
	fh, _ := maze.EnemyHealth(9)
	carrier := shooter(20, 0)
	carrier.Fellow = &maze.FellowEnemy{Health: fh, Type: 9, CooldownMax: maze.NoCooldown}
	room := &maze.Room{Enemies: []maze.Enemy{carrier}}

	shots := s.Step(dt, room, geom.Vec2{X: 100, Y: room.Enemies[0].Pos.Y + 50})
	if len(shots) != 1 {
		t.Fatal("Expected the fellow to launch")
	}
	if room.Enemies[0].Health != 0 {
		t.Error("Expected the carrier consumed by the launch")
	}
}

func TestDeadEnemiesDoNotAct(t *testing.T) {
	s := newStepper(&soundLog{})
	e := shooter(1, 1)
	e.Health = 0
	e.Cooldown = 0
	room := &maze.Room{Enemies: []maze.Enemy{e}}

	shots := s.Step(dt, room, geom.Vec2{X: 600, Y: 250})
	if len(shots) != 0 {
		t.Error("Expected no shots from a dead enemy")
	}
}

func TestShotSizes(t *testing.T) {
	cases := map[int]geom.Vec2{
		1:  {X: 50, Y: 50},
		3:  {X: 17, Y: 6},
		9:  {X: 50, Y: 35},
		13: {X: 17, Y: 6},
	}
	for enemyType, want := range cases {
		if got := ShotSize(enemyType); got != want {
			t.Errorf("ShotSize(%d) = %+v, want %+v", enemyType, got, want)
		}
	}
}
