package geometry

import "math"

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float64        { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated by +90 degrees.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(o Vec2) float64 { return o.Sub(v).Length() }

// DistanceSquared returns the squared Euclidean distance between two points.
func (v Vec2) DistanceSquared(o Vec2) float64 { return o.Sub(v).LengthSquared() }

// IsZero reports whether v is too short to carry a direction.
func (v Vec2) IsZero() bool { return v.LengthSquared() <= Epsilon*Epsilon }

// Normalize returns the unit vector along v. The boolean is false when v has no
// usable direction; the returned vector is then the zero vector.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Length()
	if l <= Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Rotate rotates v counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	if angle == 0 {
		return v
	}
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Reflect mirrors v across the line whose unit normal is n: v - 2(v·n)n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Epsilon is the length under which a vector is treated as degenerate.
const Epsilon = 1e-9
