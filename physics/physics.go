// Package physics integrates per-tick movement against a room's wall set.
// Collision is resolved one axis at a time: the X displacement is tried
// alone and rejected (with a velocity bounce) if it would overlap a wall,
// then the Y displacement independently. This lets a diagonal mover slide
// along a wall instead of stopping dead at a corner.
package physics

import (
	"github.com/cobbes/jetstorm/geom"
	"github.com/cobbes/jetstorm/maze"
)

// MaxSpeed caps velocity per axis, in world units per second.
const MaxSpeed = 400.0

// Bounce factors applied to the blocked axis's velocity on a rejected move.
const (
	BounceFull   = -1.0  // free enemies reverse outright
	BouncePlayer = -0.25 // the player hits walls with heavy damping
)

// ClampVelocity limits a velocity to ±MaxSpeed per axis.
func ClampVelocity(v geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: geom.Clamp(v.X, -MaxSpeed, MaxSpeed),
		Y: geom.Clamp(v.Y, -MaxSpeed, MaxSpeed),
	}
}

func hitsAny(b geom.Box, walls []geom.Box) bool {
	for _, w := range walls {
		if b.Overlaps(w) {
			return true
		}
	}
	return false
}

// Slide advances pos by vel*dt with axis-separated wall collision, applying
// bounce to the velocity of any blocked axis. It does not clamp to the
// screen edges; the caller decides whether an edge is a bounce (enemies)
// or a room transition (player).
func Slide(dt float64, pos, vel geom.Vec2, size geom.Vec2, walls []geom.Box, bounce float64) (geom.Vec2, geom.Vec2) {
	vel = ClampVelocity(vel)
	step := vel.Scale(dt)

	target := geom.Vec2{X: pos.X + step.X, Y: pos.Y}
	if hitsAny(geom.Box{Center: target, Size: size}, walls) {
		vel.X *= bounce
	} else {
		pos = target
	}

	target = geom.Vec2{X: pos.X, Y: pos.Y + step.Y}
	if hitsAny(geom.Box{Center: target, Size: size}, walls) {
		vel.Y *= bounce
	} else {
		pos = target
	}

	return pos, vel
}

// ClampToField keeps a body inside the playfield, reversing the velocity of
// any axis that got clamped.
func ClampToField(pos, vel geom.Vec2, size geom.Vec2) (geom.Vec2, geom.Vec2) {
	if pos.X < size.X/2 {
		pos.X = size.X / 2
		vel.X *= -1
	}
	if pos.X > maze.WindowW-size.X/2 {
		pos.X = maze.WindowW - size.X/2
		vel.X *= -1
	}
	if pos.Y > maze.FieldH-size.Y/2 {
		pos.Y = maze.FieldH - size.Y/2
		vel.Y *= -1
	}
	if pos.Y < size.Y/2 {
		pos.Y = size.Y / 2
		vel.Y *= -1
	}
	return pos, vel
}

// Step moves a free enemy: axis-separated wall collision with a full
// bounce, then playfield edge clamping.
func Step(dt float64, pos, vel geom.Vec2, size geom.Vec2, walls []geom.Box) (geom.Vec2, geom.Vec2) {
	pos, vel = Slide(dt, pos, vel, size, walls, BounceFull)
	return ClampToField(pos, vel, size)
}

// CarrierProbe returns the collision box a carrier occupies together with
// its rider: the carrier footprint extended upward by the rider's height.
// The probe is anchored so the carrier's own center stays the transform
// anchor; only the collision test uses the taller box.
func CarrierProbe(pos geom.Vec2, riderHeight float64) geom.Box {
	size := geom.Vec2{X: maze.EnemyTile.X, Y: maze.EnemyTile.Y + riderHeight}
	return geom.Box{
		Center: geom.Vec2{X: pos.X, Y: pos.Y - maze.EnemyTile.Y/2 + size.Y/2},
		Size:   size,
	}
}

// StepCarrier moves a type-20 carrier. The wall tests and the top edge use
// the extended probe box covering the rider; the bottom edge still rests
// the carrier's own tile on the floor.
func StepCarrier(dt float64, pos, vel geom.Vec2, riderHeight float64, walls []geom.Box) (geom.Vec2, geom.Vec2) {
	vel = ClampVelocity(vel)
	step := vel.Scale(dt)
	size := geom.Vec2{X: maze.EnemyTile.X, Y: maze.EnemyTile.Y + riderHeight}

	target := geom.Vec2{X: pos.X + step.X, Y: pos.Y}
	probe := CarrierProbe(target, riderHeight)
	if hitsAny(probe, walls) {
		vel.X *= -1
	} else {
		pos = target
	}

	target = geom.Vec2{X: pos.X, Y: pos.Y + step.Y}
	probe = CarrierProbe(target, riderHeight)
	if hitsAny(probe, walls) {
		vel.Y *= -1
	} else {
		pos = target
	}

	if pos.X < size.X/2 {
		pos.X = size.X / 2
		vel.X *= -1
	}
	if pos.X > maze.WindowW-size.X/2 {
		pos.X = maze.WindowW - size.X/2
		vel.X *= -1
	}

	top := pos.Y - maze.EnemyTile.Y/2 + size.Y/2
	if top > maze.FieldH-size.Y/2 {
		pos.Y = maze.FieldH - size.Y/2 - maze.EnemyTile.Y/2
		vel.Y *= -1
	}
	if top < size.Y/2 {
		pos.Y = maze.EnemyTile.Y / 2
		vel.Y *= -1
	}

	return pos, vel
}
