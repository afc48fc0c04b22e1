// Package explosion manages the short-lived visual debris of combat:
// boom animations, the fragment showers they scatter, and the full-screen
// flash a destroyed base triggers.
package explosion

import (
	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
)

const (
	BoomFrames    = 6
	boomFrameTime = 0.08

	FragmentSize     = 25.0
	FragmentFrames   = 5
	fragmentCooldown = 200

	flashStepTime = 0.1

	gravityY = -60.0
)

// Background is the playfield clear color, driven by an active flash.
type Background int

const (
	BackgroundBlack Background = iota
	BackgroundWhite
	BackgroundYellow
)

// Boom is one explosion animation.
type Boom struct {
	Pos   geom.Vec2
	Frame int
	timer float64
}

// Fragment is one piece of debris flung out by a boom. It falls under
// amplified gravity and dies on the first wall it touches.
type Fragment struct {
	Pos      geom.Vec2
	Vel      geom.Vec2
	Frame    int
	cooldown int
}

type flash struct {
	counter int
	timer   float64
}

// Set owns all live explosion effects.
type Set struct {
	Dice      *dice.Roller
	Booms     []Boom
	Fragments []Fragment

	flash *flash
	bg    Background
}

// NewSet creates an empty effect set.
func NewSet(d *dice.Roller) *Set {
	return &Set{Dice: d}
}

// SpawnBoom starts a boom animation at pos and scatters eight fragments,
// one per octant: corners get both axes, edges a single axis.
func (s *Set) SpawnBoom(pos geom.Vec2) {
	s.Booms = append(s.Booms, Boom{Pos: pos})

	out := func(lo, hi float64) float64 { return s.Dice.Float(lo, hi) }
	vels := []geom.Vec2{
		{X: out(-200, -150), Y: out(150, 200)},
		{Y: out(150, 200)},
		{X: out(150, 200), Y: out(150, 200)},
		{X: out(-200, -150)},
		{X: out(150, 200)},
		{X: out(-200, -150), Y: out(-200, -150)},
		{Y: out(-200, -150)},
		{X: out(150, 200), Y: out(-200, -150)},
	}
	for _, v := range vels {
		s.Fragments = append(s.Fragments, Fragment{Pos: pos, Vel: v, cooldown: fragmentCooldown})
	}
}

// SpawnFlash starts the base-destruction screen flash.
func (s *Set) SpawnFlash() {
	s.flash = &flash{}
}

// BackgroundColor returns the clear color the current flash state calls for.
func (s *Set) BackgroundColor() Background {
	return s.bg
}

// Clear drops every live effect and resets the background.
func (s *Set) Clear() {
	s.Booms = nil
	s.Fragments = nil
	s.flash = nil
	s.bg = BackgroundBlack
}

// Step advances all effects by one tick.
func (s *Set) Step(dt float64, walls []geom.Box) {
	s.stepBooms(dt)
	s.stepFragments(dt, walls)
	s.stepFlash(dt)
}

func (s *Set) stepBooms(dt float64) {
	live := s.Booms[:0]
	for i := range s.Booms {
		b := s.Booms[i]
		b.timer += dt
		if b.timer >= boomFrameTime {
			b.timer -= boomFrameTime
			b.Frame++
		}
		if b.Frame < BoomFrames {
			live = append(live, b)
		}
	}
	s.Booms = live
}

func (s *Set) stepFragments(dt float64, walls []geom.Box) {
	size := geom.Vec2{X: FragmentSize, Y: FragmentSize}
	live := s.Fragments[:0]

	for i := range s.Fragments {
		f := s.Fragments[i]

		if f.cooldown > 0 {
			f.cooldown--
		} else {
			f.cooldown = fragmentCooldown
			f.Frame = s.Dice.IntN(FragmentFrames)
		}

		f.Vel.Y += gravityY * dt * s.Dice.Float(3, 10)

		target := f.Pos.Add(f.Vel.Scale(dt))
		if hitsAny(geom.Box{Center: target, Size: size}, walls) {
			continue
		}
		f.Pos = target

		if f.Pos.X < -FragmentSize || f.Pos.X > maze.WindowW+FragmentSize ||
			f.Pos.Y < -FragmentSize || f.Pos.Y > maze.WindowH+FragmentSize {
			continue
		}
		live = append(live, f)
	}
	s.Fragments = live
}

func (s *Set) stepFlash(dt float64) {
	if s.flash == nil {
		return
	}
	s.flash.timer += dt
	if s.flash.timer < flashStepTime {
		return
	}
	s.flash.timer -= flashStepTime

	switch s.flash.counter {
	case 0:
		s.bg = BackgroundWhite
	case 2:
		s.bg = BackgroundYellow
	case 4:
		s.bg = BackgroundBlack
		s.flash = nil
		return
	}
	s.flash.counter++
}

func hitsAny(b geom.Box, walls []geom.Box) bool {
	for _, w := range walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}
