// Package geom provides the small set of 2D primitives shared by the
// simulation: vectors and center-anchored axis-aligned boxes.
package geom

import "math"

// Vec2 is a 2D vector. Positions are world coordinates with the origin at
// the bottom-left of the playfield and y increasing upward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Box is an axis-aligned box anchored at its center.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Overlaps reports whether the two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X)*2 < b.Size.X+o.Size.X &&
		math.Abs(b.Center.Y-o.Center.Y)*2 < b.Size.Y+o.Size.Y
}

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
