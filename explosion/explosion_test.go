package explosion

import (
	"math/rand"
	"testing"

	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/geom"
)

const dt = 1.0 / 60.0

func newSet() *Set {
	return NewSet(dice.NewRoller(rand.New(rand.NewSource(1))))
}

func TestSpawnBoomScattersFragments(t *testing.T) {
	s := newSet()
	s.SpawnBoom(geom.Vec2{X: 400, Y: 250})

	if len(s.Booms) != 1 {
		t.Fatalf("Expected 1 boom, got %d", len(s.Booms))
	}
	if len(s.Fragments) != 8 {
		t.Fatalf("Expected 8 fragments, got %d", len(s.Fragments))
	}

	// One fragment per octant: four diagonals, four straight.
	diagonal := 0
	for _, f := range s.Fragments {
		if f.Vel.X != 0 && f.Vel.Y != 0 {
			diagonal++
		}
	}
	if diagonal != 4 {
		t.Errorf("Expected 4 diagonal fragments, got %d", diagonal)
	}
}

func TestBoomAnimatesAndDies(t *testing.T) {
	s := newSet()
	s.SpawnBoom(geom.Vec2{X: 400, Y: 250})

	// 0.08s per frame at 60 ticks per second is just under 5 ticks.
	for i := 0; i < 5; i++ {
		s.stepBooms(dt)
	}
	if len(s.Booms) != 1 || s.Booms[0].Frame != 1 {
		t.Fatalf("Expected frame 1, got %+v", s.Booms)
	}

	for i := 0; i < 30; i++ {
		s.stepBooms(dt)
	}
	if len(s.Booms) != 0 {
		t.Errorf("Expected the boom finished, got %d left", len(s.Booms))
	}
}

func TestFragmentsFall(t *testing.T) {
	s := newSet()
	s.SpawnBoom(geom.Vec2{X: 400, Y: 250})

	var before float64
	for _, f := range s.Fragments {
		before += f.Vel.Y
	}
	s.stepFragments(dt, nil)
	var after float64
	for _, f := range s.Fragments {
		after += f.Vel.Y
	}
	if after >= before {
		t.Errorf("Expected gravity to pull fragments down, sum %v -> %v", before, after)
	}
}

func TestFragmentDiesOnWall(t *testing.T) {
	s := newSet()
	s.Fragments = []Fragment{{
		Pos: geom.Vec2{X: 400, Y: 250},
		Vel: geom.Vec2{X: 200},
	}}
	walls := []geom.Box{{Center: geom.Vec2{X: 400, Y: 250}, Size: geom.Vec2{X: 49, Y: 49}}}

	s.stepFragments(dt, walls)

	if len(s.Fragments) != 0 {
		t.Error("Expected the fragment gone on the wall")
	}
}

func TestFragmentDiesOffScreen(t *testing.T) {
	s := newSet()
	s.Fragments = []Fragment{{
		Pos: geom.Vec2{X: -20, Y: 250},
		Vel: geom.Vec2{X: -600},
	}}

	s.stepFragments(dt, nil)

	if len(s.Fragments) != 0 {
		t.Error("Expected the stray fragment dropped")
	}
}

func TestFlashSequence(t *testing.T) {
	s := newSet()
	if s.BackgroundColor() != BackgroundBlack {
		t.Fatal("Expected a black background at rest")
	}

	s.SpawnFlash()

	// One full 0.1s stage per step.
	s.stepFlash(0.1)
	if s.BackgroundColor() != BackgroundWhite {
		t.Errorf("Expected white, got %v", s.BackgroundColor())
	}
	s.stepFlash(0.1)
	s.stepFlash(0.1)
	if s.BackgroundColor() != BackgroundYellow {
		t.Errorf("Expected yellow, got %v", s.BackgroundColor())
	}
	s.stepFlash(0.1)
	s.stepFlash(0.1)
	if s.BackgroundColor() != BackgroundBlack {
		t.Errorf("Expected black at the end, got %v", s.BackgroundColor())
	}

	// The flash is spent; further ticks keep black.
	s.stepFlash(0.1)
	if s.BackgroundColor() != BackgroundBlack {
		t.Error("Expected the flash finished")
	}
}

func TestClear(t *testing.T) {
	s := newSet()
	s.SpawnBoom(geom.Vec2{X: 400, Y: 250})
	s.SpawnFlash()
	s.stepFlash(0.1)

	s.Clear()

	if len(s.Booms) != 0 || len(s.Fragments) != 0 {
		t.Error("Expected all effects dropped")
	}
	if s.BackgroundColor() != BackgroundBlack {
		t.Error("Expected the background reset")
	}
}
