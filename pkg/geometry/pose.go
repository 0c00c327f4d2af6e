package geometry

import "math"

// Pose is a rigid 2D transform: rotation (radians, counter-clockwise) followed by
// translation.
type Pose struct {
	Position Vec2
	Rotation float64
}

// At returns a pose at p with zero rotation.
func At(p Vec2) Pose { return Pose{Position: p} }

// Apply transforms a local-space point into world space.
func (p Pose) Apply(local Vec2) Vec2 {
	return p.Position.Add(local.Rotate(p.Rotation))
}

// Forward returns the unit local +Y axis in world space.
func (p Pose) Forward() Vec2 {
	return Vec2{0, 1}.Rotate(p.Rotation)
}

// Translate returns p moved by d.
func (p Pose) Translate(d Vec2) Pose {
	p.Position = p.Position.Add(d)
	return p
}

// Rotate returns p turned by angle radians, normalised to (-Pi, Pi].
func (p Pose) Rotate(angle float64) Pose {
	r := math.Remainder(p.Rotation+angle, 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	p.Rotation = r
	return p
}
